package fieldvalue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-bsb/bsb/field"
	"github.com/go-bsb/bsb/fieldvalue"
)

func TestDecodeKnownField(t *testing.T) {
	fv, err := fieldvalue.Decode(0x053d19f0, []byte{0, 0, 15})
	require.NoError(t, err)
	require.Equal(t, uint32(0x053d19f0), fv.FieldID())
	require.Equal(t, "water_pressure: 1.5", fv.String())

	path, err := fv.Path()
	require.NoError(t, err)
	require.Equal(t, "system/water_pressure", path)
}

func TestDecodeUnknownFieldErrors(t *testing.T) {
	_, err := fieldvalue.Decode(0xdeadbeef, []byte{0, 0, 0})
	require.ErrorContains(t, err, "invalid_field")
}

func TestDecodeInvalidSetting(t *testing.T) {
	// operating_mode is Setting(2); payload value 3 exceeds it.
	_, err := fieldvalue.Decode(0x0d3d092a, []byte{0, 3})
	require.ErrorContains(t, err, "invalid_setting")
}

func TestFromTextRoundTrip(t *testing.T) {
	fv, err := fieldvalue.FromText("water_pressure: 1.5")
	require.NoError(t, err)
	require.Equal(t, uint32(0x053d19f0), fv.FieldID())

	payload, err := fv.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 15}, payload)
}

func TestFromTextUnknownName(t *testing.T) {
	_, err := fieldvalue.FromText("does_not_exist: 1")
	require.ErrorContains(t, err, "invalid_field")
}

func TestFromTextMalformed(t *testing.T) {
	_, err := fieldvalue.FromText("no-colon-here")
	require.ErrorContains(t, err, "invalid_field_value")
}

func TestToNamed(t *testing.T) {
	fv, err := fieldvalue.Decode(0x053d19f0, []byte{0, 0, 15})
	require.NoError(t, err)
	nv, err := fv.ToNamed()
	require.NoError(t, err)
	require.Equal(t, "water_pressure", nv.Name)
	require.Equal(t, "1.5", nv.Value)
}

func TestDefaultFor(t *testing.T) {
	f, err := field.MustByID(0x053d19f0)
	require.NoError(t, err)
	fv := fieldvalue.DefaultFor(f)
	require.Equal(t, f.ID, fv.FieldID())
}
