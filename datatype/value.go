package datatype

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-bsb/bsb/bsberr"
)

// textLayout is the DateTime text form: YYYY-MM-DDTHH:MM:SS.
const textLayout = "2006-01-02T15:04:05"

// Range is one daily time range of a Schedule value.
type Range struct {
	StartHour, StartMinute uint8
	EndHour, EndMinute     uint8
}

// Valid reports whether the range respects the BSB bound invariant:
// hours <= 24, minutes <= 59.
func (r Range) Valid() bool {
	return r.StartHour <= 24 && r.EndHour <= 24 && r.StartMinute <= 59 && r.EndMinute <= 59
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.StartHour, r.StartMinute, r.EndHour, r.EndMinute)
}

// Value is a tag parallel to Datatype, carrying the actual datapoint.
// The zero Value is a Setting holding 0; always construct through one
// of the New* functions.
type Value struct {
	tag      Tag
	setting  uint8
	number   uint16
	float    float32
	dt       time.Time
	schedule []Range
}

// NewSetting constructs a Setting value. Bound checking against a
// Datatype's max happens in New (via Validate), not here.
func NewSetting(v uint8) Value { return Value{tag: TagSetting, setting: v} }

// NewNumber constructs a Number value.
func NewNumber(v uint16) Value { return Value{tag: TagNumber, number: v} }

// NewFloat constructs a Float value.
func NewFloat(v float32) Value { return Value{tag: TagFloat, float: v} }

// NewDateTime constructs a DateTime value.
func NewDateTime(t time.Time) Value { return Value{tag: TagDateTime, dt: t} }

// NewSchedule constructs a Schedule value. Ranges are kept in order; the
// slice is copied so later mutation by the caller cannot reach back in.
func NewSchedule(ranges []Range) Value {
	cp := make([]Range, len(ranges))
	copy(cp, ranges)
	return Value{tag: TagSchedule, schedule: cp}
}

// Tag reports which member of the union this Value holds.
func (v Value) Tag() Tag { return v.tag }

// Setting returns the Setting payload and whether v holds one.
func (v Value) Setting() (uint8, bool) { return v.setting, v.tag == TagSetting }

// Number returns the Number payload and whether v holds one.
func (v Value) Number() (uint16, bool) { return v.number, v.tag == TagNumber }

// Float returns the Float payload and whether v holds one.
func (v Value) Float() (float32, bool) { return v.float, v.tag == TagFloat }

// DateTime returns the DateTime payload and whether v holds one.
func (v Value) DateTime() (time.Time, bool) { return v.dt, v.tag == TagDateTime }

// Schedule returns the Schedule payload and whether v holds one. The
// returned slice is a copy.
func (v Value) Schedule() ([]Range, bool) {
	if v.tag != TagSchedule {
		return nil, false
	}
	cp := make([]Range, len(v.schedule))
	copy(cp, v.schedule)
	return cp, true
}

// matchesDatatype reports whether v's tag agrees with dt's tag. It does
// not check bounds (Setting max, Schedule range validity) — callers that
// need the full invariant use Validate.
func (v Value) matchesDatatype(dt Datatype) bool { return v.tag == dt.tag }

// Validate enforces the full TypedValue invariant for v against dt:
// tag agreement plus bound checks (Setting <= max, Schedule ranges valid).
func (v Value) Validate(dt Datatype) error {
	if !v.matchesDatatype(dt) {
		return bsberr.New(bsberr.KindDatatypeMismatch)
	}
	switch dt.tag {
	case TagSetting:
		if v.setting > dt.max {
			return &bsberr.Error{Kind: bsberr.KindInvalidSetting, Got: int(v.setting), Want: int(dt.max)}
		}
	case TagSchedule:
		for _, r := range v.schedule {
			if !r.Valid() {
				return bsberr.New(bsberr.KindInvalidSchedule)
			}
		}
	}
	return nil
}

// String renders v in BSB text form. It does not know the Datatype, so
// Float renders with Go's shortest round-tripping representation and
// DateTime/Schedule use their text-form directly.
func (v Value) String() string {
	switch v.tag {
	case TagSetting:
		return strconv.FormatUint(uint64(v.setting), 10)
	case TagNumber:
		return strconv.FormatUint(uint64(v.number), 10)
	case TagFloat:
		return strconv.FormatFloat(float64(v.float), 'f', -1, 32)
	case TagDateTime:
		return v.dt.Format(textLayout)
	case TagSchedule:
		parts := make([]string, len(v.schedule))
		for i, r := range v.schedule {
			parts[i] = r.String()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// ParseValue parses s into a Value under the given Datatype — the
// inverse of Value.String for that datatype.
func ParseValue(s string, dt Datatype) (Value, error) {
	switch dt.tag {
	case TagSetting:
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return Value{}, bsberr.Wrap(bsberr.KindParseInt, err)
		}
		v := uint8(n)
		if v > dt.max {
			return Value{}, &bsberr.Error{Kind: bsberr.KindInvalidSetting, Got: int(v), Want: int(dt.max)}
		}
		return NewSetting(v), nil
	case TagNumber:
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return Value{}, bsberr.Wrap(bsberr.KindParseInt, err)
		}
		return NewNumber(uint16(n)), nil
	case TagFloat:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, bsberr.Wrap(bsberr.KindParseFloat, err)
		}
		return NewFloat(float32(f)), nil
	case TagDateTime:
		t, err := time.ParseInLocation(textLayout, s, time.Local)
		if err != nil {
			return Value{}, bsberr.Wrap(bsberr.KindParseDateTime, err)
		}
		return NewDateTime(t), nil
	case TagSchedule:
		ranges, err := parseSchedule(s)
		if err != nil {
			return Value{}, err
		}
		return NewSchedule(ranges), nil
	default:
		return Value{}, bsberr.New(bsberr.KindDatatypeMismatch)
	}
}

// parseSchedule parses "sh:sm-eh:em,sh:sm-eh:em,..." into Ranges,
// validating each range's bounds.
func parseSchedule(s string) ([]Range, error) {
	var ranges []Range
	for _, part := range strings.Split(s, ",") {
		sh, rest, ok := strings.Cut(part, ":")
		if !ok {
			return nil, bsberr.New(bsberr.KindInvalidSchedule)
		}
		sm, rest, ok := strings.Cut(rest, "-")
		if !ok {
			return nil, bsberr.New(bsberr.KindInvalidSchedule)
		}
		eh, em, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, bsberr.New(bsberr.KindInvalidSchedule)
		}
		r, err := parseRange(sh, sm, eh, em)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseRange(sh, sm, eh, em string) (Range, error) {
	shN, err := strconv.ParseUint(sh, 10, 8)
	if err != nil {
		return Range{}, bsberr.Wrap(bsberr.KindParseInt, err)
	}
	smN, err := strconv.ParseUint(sm, 10, 8)
	if err != nil {
		return Range{}, bsberr.Wrap(bsberr.KindParseInt, err)
	}
	ehN, err := strconv.ParseUint(eh, 10, 8)
	if err != nil {
		return Range{}, bsberr.Wrap(bsberr.KindParseInt, err)
	}
	emN, err := strconv.ParseUint(em, 10, 8)
	if err != nil {
		return Range{}, bsberr.Wrap(bsberr.KindParseInt, err)
	}
	r := Range{StartHour: uint8(shN), StartMinute: uint8(smN), EndHour: uint8(ehN), EndMinute: uint8(emN)}
	if !r.Valid() {
		return Range{}, bsberr.New(bsberr.KindInvalidSchedule)
	}
	return r, nil
}

// DefaultForDatatype returns the zero value for dt: 0 for Setting/Number,
// 0.0 for Float, the Unix epoch in local time for DateTime, and a single
// zero range (not an empty list) for Schedule.
func DefaultForDatatype(dt Datatype) Value {
	switch dt.tag {
	case TagSetting:
		return NewSetting(0)
	case TagNumber:
		return NewNumber(0)
	case TagFloat:
		return NewFloat(0)
	case TagDateTime:
		return NewDateTime(time.Unix(0, 0).Local())
	case TagSchedule:
		return NewSchedule([]Range{{}})
	default:
		return Value{}
	}
}
