package datatype

import (
	"math"

	"github.com/go-bsb/bsb/bsberr"
)

// scheduleTerminator is the fixed 4-byte chunk that closes a Schedule
// payload on the wire: start hour 24 with the high bit set, end 24:00.
var scheduleTerminator = [4]byte{0x18 | 0x80, 0x00, 0x18, 0x00}

// TypedValue pairs a Value with the Datatype it was read (or will be
// written) under, plus the optional flag byte that every datatype but
// Schedule carries on the wire. Constructing one always validates the
// Value against the Datatype; there is no way to hold a mismatched pair.
type TypedValue struct {
	datatype Datatype
	flag     uint8
	hasFlag  bool
	value    Value
}

// New validates v against dt and pairs them. flag may be nil for
// Schedule, which carries none; it is required for every other tag,
// enforced at Encode time rather than here since a decoded TypedValue
// with no further write intent doesn't need one validated up front.
func New(dt Datatype, flag *uint8, v Value) (TypedValue, error) {
	if err := v.Validate(dt); err != nil {
		return TypedValue{}, err
	}
	tv := TypedValue{datatype: dt, value: v}
	if flag != nil {
		tv.flag = *flag
		tv.hasFlag = true
	}
	return tv, nil
}

// Datatype reports the datatype this value was validated against.
func (tv TypedValue) Datatype() Datatype { return tv.datatype }

// Value reports the underlying value.
func (tv TypedValue) Value() Value { return tv.value }

// Flag reports the flag byte and whether one is present.
func (tv TypedValue) Flag() (uint8, bool) { return tv.flag, tv.hasFlag }

// String renders the value in BSB text form.
func (tv TypedValue) String() string { return tv.value.String() }

// Decode reads a wire payload under dt, producing a validated TypedValue.
// The byte layouts below are the BSB wire format for each datatype; see
// the per-case comments for the exact field order.
func Decode(payload []byte, dt Datatype) (TypedValue, error) {
	switch dt.tag {
	case TagSetting:
		// [flag, value]
		if len(payload) < 2 {
			return TypedValue{}, &bsberr.Error{Kind: bsberr.KindInvalidPayloadLength, Got: len(payload), Want: 2}
		}
		flag := payload[0]
		v := payload[1]
		if v > dt.max {
			return TypedValue{}, &bsberr.Error{Kind: bsberr.KindInvalidSetting, Got: int(v), Want: int(dt.max)}
		}
		return TypedValue{datatype: dt, flag: flag, hasFlag: true, value: NewSetting(v)}, nil

	case TagNumber:
		// [flag, hi, lo], big-endian u16.
		if len(payload) < 3 {
			return TypedValue{}, &bsberr.Error{Kind: bsberr.KindInvalidPayloadLength, Got: len(payload), Want: 3}
		}
		flag := payload[0]
		n := uint16(payload[1])<<8 | uint16(payload[2])
		return TypedValue{datatype: dt, flag: flag, hasFlag: true, value: NewNumber(n)}, nil

	case TagFloat:
		// [flag, hi, lo], signed big-endian i16, divided by dt.divisor.
		if len(payload) < 3 {
			return TypedValue{}, &bsberr.Error{Kind: bsberr.KindInvalidPayloadLength, Got: len(payload), Want: 3}
		}
		flag := payload[0]
		raw := int16(uint16(payload[1])<<8 | uint16(payload[2]))
		f := float32(raw) / float32(dt.divisor)
		return TypedValue{datatype: dt, flag: flag, hasFlag: true, value: NewFloat(f)}, nil

	case TagDateTime:
		// [flag, year-1900, month, day, dow, hour, minute, second, tz]
		if len(payload) < 9 {
			return TypedValue{}, &bsberr.Error{Kind: bsberr.KindInvalidPayloadLength, Got: len(payload), Want: 9}
		}
		flag := payload[0]
		t, err := decodeDateTime(payload[1:9])
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{datatype: dt, flag: flag, hasFlag: true, value: NewDateTime(t)}, nil

	case TagSchedule:
		ranges, err := decodeSchedule(payload)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{datatype: dt, value: NewSchedule(ranges)}, nil

	default:
		return TypedValue{}, bsberr.New(bsberr.KindDatatypeMismatch)
	}
}

// Encode writes tv's wire payload, the exact inverse of Decode for the
// same Datatype.
func (tv TypedValue) Encode() ([]byte, error) {
	if tv.datatype.tag != TagSchedule && !tv.hasFlag {
		return nil, bsberr.New(bsberr.KindMissingFlag)
	}
	switch tv.datatype.tag {
	case TagSetting:
		v, _ := tv.value.Setting()
		return []byte{tv.flag, v}, nil

	case TagNumber:
		n, _ := tv.value.Number()
		return []byte{tv.flag, byte(n >> 8), byte(n)}, nil

	case TagFloat:
		f, _ := tv.value.Float()
		raw := int16(math.RoundToEven(float64(f) * float64(tv.datatype.divisor)))
		u := uint16(raw)
		return []byte{tv.flag, byte(u >> 8), byte(u)}, nil

	case TagDateTime:
		t, _ := tv.value.DateTime()
		body := encodeDateTime(t)
		out := make([]byte, 0, 9)
		out = append(out, tv.flag)
		out = append(out, body[:]...)
		return out, nil

	case TagSchedule:
		ranges, _ := tv.value.Schedule()
		out := make([]byte, 0, 4*(len(ranges)+1))
		for _, r := range ranges {
			out = append(out, r.StartHour, r.StartMinute, r.EndHour, r.EndMinute)
		}
		out = append(out, scheduleTerminator[:]...)
		return out, nil

	default:
		return nil, bsberr.New(bsberr.KindDatatypeMismatch)
	}
}

// DefaultTypedValue returns the default TypedValue for dt: the zero
// Value for dt paired with a zero flag (present for every tag but
// Schedule, matching Decode/Encode's flag requirement).
func DefaultTypedValue(dt Datatype) TypedValue {
	v := DefaultForDatatype(dt)
	if dt.tag == TagSchedule {
		return TypedValue{datatype: dt, value: v}
	}
	var zero uint8
	return TypedValue{datatype: dt, flag: zero, hasFlag: true, value: v}
}

// decodeSchedule reads 4-byte range chunks until one has its start-hour
// high bit set (the terminator) or input runs out. Anything left over
// once a terminator chunk is consumed, or a final chunk count that
// isn't a whole number of 4-byte groups, is InvalidSchedule.
func decodeSchedule(payload []byte) ([]Range, error) {
	var ranges []Range
	i := 0
	terminated := false
	for i+4 <= len(payload) {
		chunk := payload[i : i+4]
		if chunk[0]&0x80 != 0 {
			i += 4
			terminated = true
			break
		}
		r := Range{StartHour: chunk[0], StartMinute: chunk[1], EndHour: chunk[2], EndMinute: chunk[3]}
		if !r.Valid() {
			return nil, bsberr.New(bsberr.KindInvalidSchedule)
		}
		ranges = append(ranges, r)
		i += 4
	}
	if !terminated || i != len(payload) {
		return nil, bsberr.New(bsberr.KindInvalidSchedule)
	}
	return ranges, nil
}
