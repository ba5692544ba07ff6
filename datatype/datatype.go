// Package datatype implements the BSB typed value domain: the closed set
// of wire datatypes (Setting, Number, Float, DateTime, Schedule), the
// parallel Value union, and the TypedValue that pairs a Value with the
// Datatype it must agree with. Binary payload encode/decode, text
// format/parse, and default-value construction all live here.
package datatype

import "fmt"

// Tag identifies which member of the Datatype/Value union is in play.
type Tag uint8

const (
	// TagSetting is a bounded enumeration, valid range 0..=Max.
	TagSetting Tag = iota
	// TagNumber is an unsigned 16-bit integer.
	TagNumber
	// TagFloat is a signed 16-bit integer on the wire, divided by a factor.
	TagFloat
	// TagDateTime is a broken-down local calendar time, second resolution.
	TagDateTime
	// TagSchedule is an ordered list of daily time ranges.
	TagSchedule
)

func (t Tag) String() string {
	switch t {
	case TagSetting:
		return "Setting"
	case TagNumber:
		return "Number"
	case TagFloat:
		return "Float"
	case TagDateTime:
		return "DateTime"
	case TagSchedule:
		return "Schedule"
	default:
		return "Unknown"
	}
}

// Datatype is a tag drawn from the closed BSB datatype set. Setting and
// Float carry a parameter (the max setting / division factor); Number,
// DateTime and Schedule carry none.
type Datatype struct {
	tag     Tag
	max     uint8 // TagSetting only
	divisor uint8 // TagFloat only
}

// Setting returns the Setting(max) datatype.
func Setting(max uint8) Datatype { return Datatype{tag: TagSetting, max: max} }

// Number returns the Number datatype.
func Number() Datatype { return Datatype{tag: TagNumber} }

// Float returns the Float(divisor) datatype.
func Float(divisor uint8) Datatype { return Datatype{tag: TagFloat, divisor: divisor} }

// DateTime returns the DateTime datatype.
func DateTime() Datatype { return Datatype{tag: TagDateTime} }

// Schedule returns the Schedule datatype.
func Schedule() Datatype { return Datatype{tag: TagSchedule} }

// Tag reports which datatype this is.
func (d Datatype) Tag() Tag { return d.tag }

// Max is the valid upper bound for a Setting datatype. Zero for other tags.
func (d Datatype) Max() uint8 { return d.max }

// Divisor is the division factor for a Float datatype. Zero for other tags.
func (d Datatype) Divisor() uint8 { return d.divisor }

// String renders the datatype the way the field registry CSV spells it,
// e.g. "Float(10)", "Setting(2)", "Number".
func (d Datatype) String() string {
	switch d.tag {
	case TagSetting:
		return fmt.Sprintf("Setting(%d)", d.max)
	case TagFloat:
		return fmt.Sprintf("Float(%d)", d.divisor)
	default:
		return d.tag.String()
	}
}
