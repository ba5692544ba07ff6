// Package bsberr defines the closed error taxonomy shared by every BSB
// codec package. Every failure the codec can surface is one of the Kind
// values below, carrying only structured fields — never a free-form
// message — so a caller can switch on Kind instead of matching strings.
package bsberr

import "fmt"

// Kind identifies a failure surfaced by the frame, datatype or field
// codecs. The set is closed: callers may safely switch over it.
type Kind uint8

const (
	_ Kind = iota

	// Frame layer.

	// KindInvalidLength means a frame's length byte was outside [11, 70).
	KindInvalidLength
	// KindChecksumError means the CRC-16/XMODEM trailer did not match.
	KindChecksumError

	// Value layer.

	// KindInvalidPayloadLength means a payload was shorter than its
	// datatype requires.
	KindInvalidPayloadLength
	// KindInvalidSetting means a Setting value exceeded its registered max.
	KindInvalidSetting
	// KindInvalidSchedule means a Schedule payload or text form violated
	// the range invariant or was not a multiple of 4 bytes.
	KindInvalidSchedule
	// KindInvalidDateTime means a DateTime payload or text form did not
	// name a calendar-valid date/time.
	KindInvalidDateTime
	// KindDatatypeMismatch means a Value's tag did not match a Datatype.
	KindDatatypeMismatch
	// KindParseInt means a text value failed integer parsing.
	KindParseInt
	// KindParseFloat means a text value failed float parsing.
	KindParseFloat
	// KindParseDateTime means a text value failed the DateTime layout.
	KindParseDateTime
	// KindMissingFlag means an encode call needed a flag byte and none
	// was supplied.
	KindMissingFlag

	// Field layer.

	// KindInvalidField means a field id or name did not resolve in the
	// registry.
	KindInvalidField
	// KindInvalidFieldValue means a "name: value" string could not be
	// split on its ':' (an unknown name is KindInvalidField).
	KindInvalidFieldValue
)

// String names a Kind; it is not used for error matching.
func (k Kind) String() string {
	switch k {
	case KindInvalidLength:
		return "invalid_length"
	case KindChecksumError:
		return "checksum_error"
	case KindInvalidPayloadLength:
		return "invalid_payload_length"
	case KindInvalidSetting:
		return "invalid_setting"
	case KindInvalidSchedule:
		return "invalid_schedule"
	case KindInvalidDateTime:
		return "invalid_date_time"
	case KindDatatypeMismatch:
		return "datatype_mismatch"
	case KindParseInt:
		return "parse_int"
	case KindParseFloat:
		return "parse_float"
	case KindParseDateTime:
		return "parse_date_time"
	case KindMissingFlag:
		return "missing_flag"
	case KindInvalidField:
		return "invalid_field"
	case KindInvalidFieldValue:
		return "invalid_field_value"
	default:
		return "unknown"
	}
}

// Error is the single error type returned across every BSB codec package
// boundary. FieldID/Name/Got/Want/Wrapped are filled in as applicable to
// the Kind; unused fields are left zero.
type Error struct {
	Kind Kind

	// FieldID/Name identify the field involved, when applicable.
	FieldID uint32
	Name    string

	// Got/Want describe a bound violation (e.g. a Setting value vs max,
	// a payload length vs the minimum required).
	Got  int
	Want int

	// Wrapped carries a lower-level standard-library error (e.g. from
	// strconv or time) for ParseInt/ParseFloat/ParseDateTime.
	Wrapped error
}

// New constructs an Error of the given Kind with no extra fields.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap constructs an Error of the given Kind wrapping a lower-level error.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Wrapped: err}
}

func (e *Error) Error() string {
	switch {
	case e.Wrapped != nil:
		return fmt.Sprintf("bsb: %s: %v", e.Kind, e.Wrapped)
	case e.Name != "":
		return fmt.Sprintf("bsb: %s: %s", e.Kind, e.Name)
	case e.FieldID != 0:
		return fmt.Sprintf("bsb: %s: field 0x%08x", e.Kind, e.FieldID)
	case e.Want != 0 || e.Got != 0:
		return fmt.Sprintf("bsb: %s: got %d, want %d", e.Kind, e.Got, e.Want)
	default:
		return fmt.Sprintf("bsb: %s", e.Kind)
	}
}

// Unwrap exposes the wrapped standard-library error, if any, for errors.As.
func (e *Error) Unwrap() error { return e.Wrapped }

// Is reports whether target has the same Kind, so callers can use
// errors.Is(err, bsberr.New(bsberr.KindInvalidLength)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
