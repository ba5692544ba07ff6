package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-bsb/bsb/datatype"
	"github.com/go-bsb/bsb/field"
)

func TestByID(t *testing.T) {
	f, ok := field.ByID(0x053d19f0)
	require.True(t, ok)
	require.Equal(t, "water_pressure", f.Name)
	require.Equal(t, datatype.TagFloat, f.Datatype.Tag())
	require.Equal(t, uint8(10), f.Datatype.Divisor())
	require.Equal(t, "system/water_pressure", f.Path)
}

func TestByName(t *testing.T) {
	f, ok := field.ByName("warmwater_temperature")
	require.True(t, ok)
	require.Equal(t, uint32(0x313d052f), f.ID)
	require.Equal(t, 8701, f.ProgNr)
	require.Equal(t, "temperature/warmwater", f.Path)
}

func TestByIDUnknown(t *testing.T) {
	_, ok := field.ByID(0xdeadbeef)
	require.False(t, ok)

	_, err := field.MustByID(0xdeadbeef)
	require.ErrorContains(t, err, "invalid_field")
}

func TestByNameUnknown(t *testing.T) {
	_, err := field.MustByName("no_such_field")
	require.ErrorContains(t, err, "invalid_field")
}

func TestAllReturnsEveryRow(t *testing.T) {
	all := field.All()
	require.NotEmpty(t, all)
	_, ok := field.ByID(0x0d3d092a)
	require.True(t, ok)
	require.Len(t, all, 25) // one per row of testdata/fields.csv
}
