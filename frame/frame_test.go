package frame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-bsb/bsb/frame"
)

func TestSerializeNewFrame(t *testing.T) {
	f := frame.New(1, 2, frame.PacketSet, 4, []byte{5})
	got := f.Serialize()
	want := []byte{220, 130, 1, 12, 3, 0, 0, 0, 4, 5, 219, 42}
	require.Equal(t, want, got)
}

func TestSerializeNewSet(t *testing.T) {
	f := frame.NewSet(0, 66, 87884342, []byte{1, 0})
	got := f.Serialize()
	want := []byte{220, 194, 0, 13, 3, 61, 5, 2, 54, 1, 0, 70, 13}
	require.Equal(t, want, got)
}

func TestParseGetRequest(t *testing.T) {
	in := []byte{220, 194, 0, 11, 6, 61, 5, 25, 240, 36, 62}
	res := frame.Parse(in)
	require.True(t, res.Ok)
	require.Empty(t, res.Rest)
	require.Equal(t, byte(0), res.Frame.Destination)
	require.Equal(t, byte(66), res.Frame.Source)
	require.Equal(t, frame.PacketGet, res.Frame.PacketType)
	require.Equal(t, uint32(87890416), res.Frame.FieldID)
	require.Empty(t, res.Frame.Payload)
}

func TestParseRet(t *testing.T) {
	in := []byte{220, 128, 66, 14, 7, 5, 61, 25, 240, 0, 0, 15, 29, 116}
	res := frame.Parse(in)
	require.True(t, res.Ok)
	require.Equal(t, byte(66), res.Frame.Destination)
	require.Equal(t, byte(0), res.Frame.Source)
	require.Equal(t, frame.PacketRet, res.Frame.PacketType)
	require.Equal(t, uint32(87890416), res.Frame.FieldID)
	require.Equal(t, []byte{0, 0, 15}, res.Frame.Payload)
}

func TestRoundTrip(t *testing.T) {
	f := frame.NewSet(9, 66, 87884342, []byte{1, 0})
	wire := f.Serialize()
	res := frame.Parse(wire)
	require.True(t, res.Ok)
	require.Empty(t, res.Rest)
	require.Equal(t, f, res.Frame)
}

func TestParseResyncsPastGarbage(t *testing.T) {
	in := append([]byte{0xff, 0x00, 0x01}, []byte{220, 194, 0, 11, 6, 61, 5, 25, 240, 36, 62}...)
	res := frame.Parse(in)
	require.True(t, res.Ok)
	require.Equal(t, uint32(87890416), res.Frame.FieldID)
}

func TestParseTwoFramesBackToBack(t *testing.T) {
	one := []byte{220, 194, 0, 11, 6, 61, 5, 25, 240, 36, 62}
	two := []byte{220, 128, 66, 14, 7, 5, 61, 25, 240, 0, 0, 15, 29, 116}
	in := append(append([]byte{}, one...), two...)

	res := frame.Parse(in)
	require.True(t, res.Ok)
	require.Equal(t, frame.PacketGet, res.Frame.PacketType)

	res2 := frame.Parse(res.Rest)
	require.True(t, res2.Ok)
	require.Equal(t, frame.PacketRet, res2.Frame.PacketType)
	require.Empty(t, res2.Rest)
}

func TestParseInvalidLengthTooLow(t *testing.T) {
	in := []byte{220, 0, 0, 10, 0, 0, 0, 0, 0, 0, 0}
	res := frame.Parse(in)
	require.True(t, res.Failure)
	require.ErrorContains(t, res.Err, "invalid_length")
}

func TestParseInvalidLengthTooHigh(t *testing.T) {
	in := make([]byte, 12)
	in[0] = 220
	in[3] = 70
	res := frame.Parse(in)
	require.True(t, res.Failure)
}

func TestParseChecksumError(t *testing.T) {
	in := []byte{220, 194, 0, 11, 6, 61, 5, 25, 240, 0, 0}
	res := frame.Parse(in)
	require.True(t, res.Failure)
	require.ErrorContains(t, res.Err, "checksum_error")
}

func TestParseIncompleteAwaitsMoreBytes(t *testing.T) {
	in := []byte{220, 194, 0, 11, 6}
	res := frame.Parse(in)
	require.True(t, res.Incomplete)
}

func TestParseIncompleteNoSOF(t *testing.T) {
	res := frame.Parse([]byte{1, 2, 3})
	require.True(t, res.Incomplete)
}

func TestTryDecodeUnknownFieldReturnsNil(t *testing.T) {
	f := frame.New(0, 1, frame.PacketRet, 0xffffffff, []byte{0, 0, 0})
	require.Nil(t, f.TryDecode())
}

func TestTryDecodeKnownField(t *testing.T) {
	f := frame.New(0, 66, frame.PacketRet, 87890416, []byte{0, 0, 15})
	fv := f.TryDecode()
	require.NotNil(t, fv)
	require.Equal(t, uint32(87890416), fv.FieldID())
}

func TestParse_FailureDoesNotAutoResync(t *testing.T) {
	// A checksum failure reports Rest starting one byte past SOF — it
	// does not search ahead to the next SOF on the caller's behalf.
	in := []byte{220, 194, 0, 11, 6, 61, 5, 25, 240, 0, 0}
	res := frame.Parse(in)
	require.True(t, res.Failure)
	require.Equal(t, in[1:], res.Rest)
}

func TestPacketTypeFromByte(t *testing.T) {
	pt, ok := frame.PacketTypeFromByte(6)
	require.True(t, ok)
	require.Equal(t, frame.PacketGet, pt)

	_, ok = frame.PacketTypeFromByte(200)
	require.False(t, ok)
}
