package datatype

import (
	"time"

	"github.com/go-bsb/bsb/bsberr"
)

// decodeDateTime reads the 8-byte calendar body of a DateTime payload:
// [year-1900, month, day, dow, hour, minute, second, tz]. dow is read
// off the wire but never checked against the computed weekday — it is
// derived state, not part of the invariant — and the tz byte is ignored
// entirely.
func decodeDateTime(b []byte) (time.Time, error) {
	year := 1900 + int(b[0])
	month := time.Month(b[1])
	day := int(b[2])
	hour := int(b[4])
	minute := int(b[5])
	second := int(b[6])

	t := time.Date(year, month, day, hour, minute, second, 0, time.Local)
	if t.Year() != year || t.Month() != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, bsberr.New(bsberr.KindInvalidDateTime)
	}
	return t, nil
}

// encodeDateTime is the inverse of decodeDateTime: it lays out the
// 8-byte calendar body, computing dow (Monday = 1 .. Sunday = 7) from
// the time rather than trusting any externally supplied value.
func encodeDateTime(t time.Time) [8]byte {
	dow := (int(t.Weekday())+6)%7 + 1 // time.Sunday == 0 -> want Monday == 1
	return [8]byte{
		byte(t.Year() - 1900),
		byte(t.Month()),
		byte(t.Day()),
		byte(dow),
		byte(t.Hour()),
		byte(t.Minute()),
		byte(t.Second()),
		0,
	}
}
