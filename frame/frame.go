// Package frame implements the BSB wire frame: a half-duplex serial
// envelope of destination/source addresses, a packet type, a field id
// and a payload, closed off with a CRC-16/XMODEM trailer.
package frame

import (
	"github.com/go-bsb/bsb/bsberr"
	"github.com/go-bsb/bsb/fieldvalue"
	"github.com/go-bsb/bsb/internal/xmodem"
)

// SOF is the start-of-frame byte every BSB frame begins with.
const SOF = 0xDC

// minLength and maxLength bound the header-length byte: a frame with an
// empty payload is 11 bytes (everything but the payload), and maxLength
// is an exclusive bound, so the longest accepted frame is 69 bytes.
const (
	minLength = 11
	maxLength = 70
)

// PacketType is the closed set of BSB packet kinds.
type PacketType uint8

const (
	PacketUnknown0 PacketType = 0
	PacketUnknown1 PacketType = 1
	PacketInfo     PacketType = 2
	PacketSet      PacketType = 3
	PacketAck      PacketType = 4
	PacketNack     PacketType = 5
	PacketGet      PacketType = 6
	PacketRet      PacketType = 7
	PacketError    PacketType = 8
)

func (p PacketType) String() string {
	switch p {
	case PacketUnknown0:
		return "Unknown0"
	case PacketUnknown1:
		return "Unknown1"
	case PacketInfo:
		return "Info"
	case PacketSet:
		return "Set"
	case PacketAck:
		return "Ack"
	case PacketNack:
		return "Nack"
	case PacketGet:
		return "Get"
	case PacketRet:
		return "Ret"
	case PacketError:
		return "Error"
	default:
		return "Unknown"
	}
}

// PacketTypeFromByte is a checked conversion from the wire byte to a
// PacketType, rejecting values outside the closed set instead of
// silently widening them.
func PacketTypeFromByte(b byte) (PacketType, bool) {
	switch PacketType(b) {
	case PacketUnknown0, PacketUnknown1, PacketInfo, PacketSet, PacketAck,
		PacketNack, PacketGet, PacketRet, PacketError:
		return PacketType(b), true
	default:
		return 0, false
	}
}

// Frame is one decoded BSB wire frame.
type Frame struct {
	Destination byte
	Source      byte
	PacketType  PacketType
	FieldID     uint32
	Payload     []byte
}

// New constructs a Frame with an arbitrary packet type.
func New(destination, source byte, packetType PacketType, fieldID uint32, payload []byte) Frame {
	body := make([]byte, len(payload))
	copy(body, payload)
	return Frame{Destination: destination, Source: source, PacketType: packetType, FieldID: fieldID, Payload: body}
}

// NewGet constructs a Get-request Frame (empty payload, the field is
// only being requested).
func NewGet(destination, source byte, fieldID uint32) Frame {
	return New(destination, source, PacketGet, fieldID, nil)
}

// NewSet constructs a Set-request Frame carrying an already-encoded
// payload.
func NewSet(destination, source byte, fieldID uint32, payload []byte) Frame {
	return New(destination, source, PacketSet, fieldID, payload)
}

// TryDecode resolves Frame's field id in the registry and decodes its
// payload, returning nil (not an error) when the field id is unknown —
// an unrecognised field on the wire is routine, not exceptional.
func (f Frame) TryDecode() *fieldvalue.FieldValue {
	fv, err := fieldvalue.Decode(f.FieldID, f.Payload)
	if err != nil {
		return nil
	}
	return &fv
}

// needsFieldIDSwap reports whether packetType's field id is carried on
// the wire in swapped byte order. Only Set and Get requests swap; every
// other packet type carries the field id in natural big-endian order.
func needsFieldIDSwap(pt PacketType) bool {
	return pt == PacketSet || pt == PacketGet
}

// swapFieldID toggles the field id's two most significant bytes,
// matching the wire quirk verified against the worked examples: byte 0
// and byte 1 (counting the MSB as byte 0) trade places, bytes 2 and 3
// stay put (0x053D19F0 travels as 3D 05 19 F0).
func swapFieldID(id uint32) uint32 {
	return (id & 0x0000ffff) | ((id >> 8) & 0x00ff0000) | ((id << 8) & 0xff000000)
}

// Serialize writes f's wire form: SOF, source^0x80, destination, header
// length, packet type, field id (swapped for Set/Get), payload, and a
// trailing CRC-16/XMODEM over everything before the trailer.
func (f Frame) Serialize() []byte {
	headerLen := byte(minLength + len(f.Payload))

	out := make([]byte, 0, int(headerLen)+2)
	out = append(out, SOF)
	out = append(out, f.Source^0x80)
	out = append(out, f.Destination)
	out = append(out, headerLen)
	out = append(out, byte(f.PacketType))

	fieldID := f.FieldID
	if needsFieldIDSwap(f.PacketType) {
		fieldID = swapFieldID(fieldID)
	}
	out = append(out, byte(fieldID>>24), byte(fieldID>>16), byte(fieldID>>8), byte(fieldID))
	out = append(out, f.Payload...)

	crc := xmodem.Checksum(out)
	out = append(out, byte(crc>>8), byte(crc))
	return out
}

// ParseErrorKind classifies why a Parse attempt failed.
type ParseErrorKind uint8

const (
	ErrInvalidLength ParseErrorKind = iota
	ErrChecksumError
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrInvalidLength:
		return "invalid_length"
	case ErrChecksumError:
		return "checksum_error"
	default:
		return "unknown"
	}
}

// ParseResult is the outcome of one Parse call: exactly one of Ok,
// Incomplete or Failure is true, mirroring the streaming parser's
// three-way result instead of collapsing "not enough bytes yet" into
// an error.
type ParseResult struct {
	// Ok reports whether a complete, valid frame was decoded.
	Ok bool
	// Frame is populated when Ok is true.
	Frame Frame
	// Incomplete reports that input held no SOF byte at all, or a
	// candidate frame start but not yet enough bytes to know whether it
	// is valid.
	Incomplete bool
	// Failure reports a definite parse error (bad length or checksum)
	// at the frame beginning at the first SOF seen.
	Failure bool
	// Rest is the unconsumed remainder of input: bytes after the
	// decoded frame on Ok, or the bytes starting one past the failing
	// SOF on Failure. Callers that want resync can implement it
	// themselves: call Parse again on Failure's Rest, which re-runs the
	// same SOF search.
	Rest []byte
	// BrokenData is the malformed frame bytes consumed by a Failure,
	// for diagnostics.
	BrokenData []byte
	// Err describes a Failure.
	Err error
}

// Parse scans input for a frame. It resyncs past leading garbage to
// the first SOF byte (returning Incomplete if there is none), then:
//   - if too little input remains to know the header length, or to
//     know the full frame once the length is known, returns Incomplete;
//   - if the header length is outside [11, 70) or the CRC trailer
//     doesn't match, returns Failure with the malformed bytes and a
//     structured bsberr.Error of Kind InvalidLength/ChecksumError;
//   - otherwise returns Ok with the decoded Frame and the remaining
//     input.
func Parse(input []byte) ParseResult {
	sof := indexOf(input, SOF)
	if sof < 0 {
		return ParseResult{Incomplete: true, Rest: nil}
	}
	buf := input[sof:]

	if len(buf) < 4 {
		return ParseResult{Incomplete: true, Rest: buf}
	}
	headerLen := int(buf[3])
	if headerLen < minLength || headerLen >= maxLength {
		return ParseResult{
			Failure:    true,
			Rest:       buf[1:],
			BrokenData: buf[:1],
			Err:        &bsberr.Error{Kind: bsberr.KindInvalidLength, Got: headerLen},
		}
	}

	// headerLen is the total frame length including the trailing CRC
	// (minLength=11 when payload is empty: 9 header bytes + 2 CRC bytes).
	total := headerLen
	if len(buf) < total {
		return ParseResult{Incomplete: true, Rest: buf}
	}

	message := buf[:total]
	crcAt := headerLen - 2
	gotCRC := uint16(message[crcAt])<<8 | uint16(message[crcAt+1])
	wantCRC := xmodem.Checksum(message[:crcAt])
	if gotCRC != wantCRC {
		return ParseResult{
			Failure:    true,
			Rest:       buf[1:],
			BrokenData: message,
			Err:        &bsberr.Error{Kind: bsberr.KindChecksumError, Got: int(gotCRC), Want: int(wantCRC)},
		}
	}

	source := message[1] ^ 0x80
	destination := message[2]
	pt := PacketType(message[4])
	fieldID := uint32(message[5])<<24 | uint32(message[6])<<16 | uint32(message[7])<<8 | uint32(message[8])
	if needsFieldIDSwap(pt) {
		fieldID = swapFieldID(fieldID)
	}
	payload := message[9:crcAt]
	payloadCopy := make([]byte, len(payload))
	copy(payloadCopy, payload)

	return ParseResult{
		Ok: true,
		Frame: Frame{
			Destination: destination,
			Source:      source,
			PacketType:  pt,
			FieldID:     fieldID,
			Payload:     payloadCopy,
		},
		Rest: buf[total:],
	}
}

func indexOf(b []byte, target byte) int {
	for i, c := range b {
		if c == target {
			return i
		}
	}
	return -1
}
