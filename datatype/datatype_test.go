package datatype_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-bsb/bsb/datatype"
)

func TestSettingRoundTrip(t *testing.T) {
	dt := datatype.Setting(2)
	flag := uint8(1)
	tv, err := datatype.New(dt, &flag, datatype.NewSetting(2))
	require.NoError(t, err)

	payload, err := tv.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, payload)

	decoded, err := datatype.Decode(payload, dt)
	require.NoError(t, err)
	require.Equal(t, tv.Value(), decoded.Value())
}

func TestSettingExceedsMax(t *testing.T) {
	dt := datatype.Setting(2)
	flag := uint8(0)
	_, err := datatype.New(dt, &flag, datatype.NewSetting(3))
	require.ErrorContains(t, err, "invalid_setting")
}

func TestSettingDecodeInvalid(t *testing.T) {
	dt := datatype.Setting(2)
	_, err := datatype.Decode([]byte{0, 3}, dt)
	require.ErrorContains(t, err, "invalid_setting")
}

func TestNumberRoundTrip(t *testing.T) {
	dt := datatype.Number()
	payload := []byte{0, 0x01, 0x2c} // flag, 300 big-endian
	tv, err := datatype.Decode(payload, dt)
	require.NoError(t, err)
	n, ok := tv.Value().Number()
	require.True(t, ok)
	require.Equal(t, uint16(300), n)

	out, err := tv.Encode()
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestFloatRoundTrip(t *testing.T) {
	dt := datatype.Float(10)
	tv, err := datatype.Decode([]byte{0, 0, 15}, dt)
	require.NoError(t, err)
	f, ok := tv.Value().Float()
	require.True(t, ok)
	require.InDelta(t, 1.5, f, 0.0001)

	out, err := tv.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 15}, out)
}

func TestFloatEncodeRoundsHalfToEven(t *testing.T) {
	dt := datatype.Float(10)
	flag := uint8(0)
	// 0.25 * 10 = 2.5, ties-to-even rounds to 2, not 3.
	tv, err := datatype.New(dt, &flag, datatype.NewFloat(0.25))
	require.NoError(t, err)
	out, err := tv.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 2}, out)
}

func TestFloatEncodeMissingFlag(t *testing.T) {
	dt := datatype.Float(10)
	tv, err := datatype.New(dt, nil, datatype.NewFloat(1))
	require.NoError(t, err)
	_, err = tv.Encode()
	require.ErrorContains(t, err, "missing_flag")
}

func TestDateTimeRoundTrip(t *testing.T) {
	dt := datatype.DateTime()
	// flag, year-1900, month, day, dow, hour, minute, second, tz — this
	// is the ground-truth vector for 2024-11-11T09:36:57.
	payload := []byte{0, 124, 11, 11, 1, 9, 36, 57, 0}
	tv, err := datatype.Decode(payload, dt)
	require.NoError(t, err)
	ts, ok := tv.Value().DateTime()
	require.True(t, ok)
	require.Equal(t, 2024, ts.Year())
	require.Equal(t, time.November, ts.Month())
	require.Equal(t, 11, ts.Day())
	require.Equal(t, 9, ts.Hour())
	require.Equal(t, 36, ts.Minute())
	require.Equal(t, 57, ts.Second())

	out, err := tv.Encode()
	require.NoError(t, err)
	// dow at index 4 is recomputed from the time, not trusted off the
	// wire, so compare everything except that one byte.
	require.Equal(t, payload[0:4], out[0:4])
	require.Equal(t, payload[5:9], out[5:9])
}

func TestDateTimeInvalidCalendar(t *testing.T) {
	dt := datatype.DateTime()
	payload := []byte{0, 124, 13, 0, 40, 25, 61, 61, 0}
	_, err := datatype.Decode(payload, dt)
	require.ErrorContains(t, err, "invalid_date_time")
}

func TestScheduleRoundTripWithTerminator(t *testing.T) {
	dt := datatype.Schedule()
	payload := []byte{
		6, 0, 22, 0,
		0x18 | 0x80, 0, 0x18, 0,
	}
	tv, err := datatype.Decode(payload, dt)
	require.NoError(t, err)
	ranges, ok := tv.Value().Schedule()
	require.True(t, ok)
	require.Len(t, ranges, 1)
	require.Equal(t, datatype.Range{StartHour: 6, StartMinute: 0, EndHour: 22, EndMinute: 0}, ranges[0])

	out, err := tv.Encode()
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestScheduleResidueBytesInvalid(t *testing.T) {
	dt := datatype.Schedule()
	payload := []byte{6, 0, 22, 0, 0x18 | 0x80, 0, 0x18, 0, 1, 2}
	_, err := datatype.Decode(payload, dt)
	require.ErrorContains(t, err, "invalid_schedule")
}

func TestParseAndFormatSchedule(t *testing.T) {
	dt := datatype.Schedule()
	v, err := datatype.ParseValue("6:0-22:0,23:30-24:0", dt)
	require.NoError(t, err)
	ranges, _ := v.Schedule()
	require.Len(t, ranges, 2)
	require.Equal(t, "6:0-22:0,23:30-24:0", v.String())
}

func TestParseScheduleOutOfBounds(t *testing.T) {
	dt := datatype.Schedule()
	_, err := datatype.ParseValue("6:0-25:0", dt)
	require.ErrorContains(t, err, "invalid_schedule")
}

func TestDefaultForDatatype(t *testing.T) {
	require.Equal(t, datatype.NewSetting(0), datatype.DefaultForDatatype(datatype.Setting(5)))
	sched := datatype.DefaultForDatatype(datatype.Schedule())
	ranges, ok := sched.Schedule()
	require.True(t, ok)
	require.Len(t, ranges, 1)
}
