// Package field implements the BSB field registry: the closed,
// build-time-generated table mapping a field id to its name, controller
// program number, datatype and path, and the lookups built on top of it.
package field

import (
	"github.com/go-bsb/bsb/bsberr"
	"github.com/go-bsb/bsb/datatype"
	"github.com/go-bsb/bsb/field/internal/fielddb"
)

// Field describes one entry in the BSB field registry.
type Field struct {
	ID       uint32
	Name     string
	ProgNr   int
	Datatype datatype.Datatype
	Path     string
}

// ByID looks up a field by its wire id.
func ByID(id uint32) (Field, bool) {
	f, ok := fielddb.Table[id]
	if !ok {
		return Field{}, false
	}
	return fromRow(f), true
}

// ByName looks up a field by its registry name. The table is small
// enough that a linear scan is the straightforward, correct choice
// (no secondary name index is generated).
func ByName(name string) (Field, bool) {
	for _, f := range fielddb.Table {
		if f.Name == name {
			return fromRow(f), true
		}
	}
	return Field{}, false
}

// MustByID looks up a field by id, returning a structured error instead
// of a boolean when it is unknown.
func MustByID(id uint32) (Field, error) {
	f, ok := ByID(id)
	if !ok {
		return Field{}, &bsberr.Error{Kind: bsberr.KindInvalidField, FieldID: id}
	}
	return f, nil
}

// MustByName looks up a field by name, returning a structured error
// instead of a boolean when it is unknown.
func MustByName(name string) (Field, error) {
	f, ok := ByName(name)
	if !ok {
		return Field{}, &bsberr.Error{Kind: bsberr.KindInvalidField, Name: name}
	}
	return f, nil
}

// All returns every registered field, in no particular order.
func All() []Field {
	out := make([]Field, 0, len(fielddb.Table))
	for _, f := range fielddb.Table {
		out = append(out, fromRow(f))
	}
	return out
}

func fromRow(r fielddb.Row) Field {
	return Field{
		ID:       r.ID,
		Name:     r.Name,
		ProgNr:   r.ProgNr,
		Datatype: r.Datatype,
		Path:     r.Path,
	}
}
