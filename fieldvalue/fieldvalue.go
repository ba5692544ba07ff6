// Package fieldvalue implements FieldValue, the pairing of a registered
// field id with the typed value read from (or destined for) it, plus
// the human-facing NamedValue projection.
package fieldvalue

import (
	"fmt"
	"strings"

	"github.com/go-bsb/bsb/bsberr"
	"github.com/go-bsb/bsb/datatype"
	"github.com/go-bsb/bsb/field"
)

// FieldValue pairs a registered field id with a TypedValue that has
// already been checked against that field's Datatype.
type FieldValue struct {
	fieldID    uint32
	typedValue datatype.TypedValue
}

// New validates v against the field registered under fieldID and pairs
// them.
func New(fieldID uint32, v datatype.TypedValue) (FieldValue, error) {
	f, err := field.MustByID(fieldID)
	if err != nil {
		return FieldValue{}, err
	}
	if v.Datatype().Tag() != f.Datatype.Tag() {
		return FieldValue{}, bsberr.New(bsberr.KindDatatypeMismatch)
	}
	return FieldValue{fieldID: fieldID, typedValue: v}, nil
}

// Decode resolves fieldID in the registry and decodes payload under its
// Datatype.
func Decode(fieldID uint32, payload []byte) (FieldValue, error) {
	f, err := field.MustByID(fieldID)
	if err != nil {
		return FieldValue{}, err
	}
	tv, err := datatype.Decode(payload, f.Datatype)
	if err != nil {
		return FieldValue{}, err
	}
	return FieldValue{fieldID: fieldID, typedValue: tv}, nil
}

// FieldID reports the wire field id.
func (fv FieldValue) FieldID() uint32 { return fv.fieldID }

// TypedValue reports the paired value.
func (fv FieldValue) TypedValue() datatype.TypedValue { return fv.typedValue }

// Field resolves the registry entry this value belongs to.
func (fv FieldValue) Field() (field.Field, error) { return field.MustByID(fv.fieldID) }

// Path returns the registered field's path.
func (fv FieldValue) Path() (string, error) {
	f, err := fv.Field()
	if err != nil {
		return "", err
	}
	return f.Path, nil
}

// Encode writes the TypedValue's wire payload.
func (fv FieldValue) Encode() ([]byte, error) { return fv.typedValue.Encode() }

// String renders fv in "name: value" text form. It falls back to the
// bare hex id if the field is somehow not registered.
func (fv FieldValue) String() string {
	f, err := fv.Field()
	if err != nil {
		return fmt.Sprintf("0x%08x: %s", fv.fieldID, fv.typedValue.String())
	}
	return fmt.Sprintf("%s: %s", f.Name, fv.typedValue.String())
}

// FromText parses "name: value" by resolving name in the registry and
// parsing value under that field's Datatype.
func FromText(s string) (FieldValue, error) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return FieldValue{}, bsberr.New(bsberr.KindInvalidFieldValue)
	}
	name = strings.TrimSpace(name)
	text := strings.TrimSpace(rest)

	f, err := field.MustByName(name)
	if err != nil {
		return FieldValue{}, err
	}
	val, err := datatype.ParseValue(text, f.Datatype)
	if err != nil {
		return FieldValue{}, err
	}
	// Text-form values carry no wire flag; Schedule ignores it, every
	// other datatype gets the conventional zero flag so the result is
	// immediately encodable.
	zero := uint8(0)
	tv, err := datatype.New(f.Datatype, &zero, val)
	if err != nil {
		return FieldValue{}, err
	}
	return FieldValue{fieldID: f.ID, typedValue: tv}, nil
}

// DefaultFor returns the default FieldValue for a registered field.
func DefaultFor(f field.Field) FieldValue {
	return FieldValue{fieldID: f.ID, typedValue: datatype.DefaultTypedValue(f.Datatype)}
}

// NamedValue is the plain, registry-independent text projection of a
// FieldValue — a field name paired with its value already rendered to
// text, suitable for logging or serialisation without re-touching the
// registry.
type NamedValue struct {
	Name  string
	Value string
}

// String renders nv in "name: value" text form.
func (nv NamedValue) String() string { return fmt.Sprintf("%s: %s", nv.Name, nv.Value) }

// ToNamed projects fv to a NamedValue, resolving its field name.
func (fv FieldValue) ToNamed() (NamedValue, error) {
	f, err := fv.Field()
	if err != nil {
		return NamedValue{}, err
	}
	return NamedValue{Name: f.Name, Value: fv.typedValue.String()}, nil
}
