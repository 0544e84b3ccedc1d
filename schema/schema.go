// Package schema defines the read-only property lookup the record codec
// consumes to resolve header property-id references to a name and declared
// type (spec §3 "Schema" entity, §6 "Schema interface (consumed)").
//
// A Schema is borrowed for the duration of a single decode call and must
// outlive it; the core never retains or mutates it.
package schema

import "github.com/recordwire/codec/vtype"

// Property describes a schema-registered field: its declared name and wire
// type tag, addressable by a non-negative global property id.
type Property struct {
	Name string
	Type vtype.Tag
}

// Schema is a read-only global-property-id -> Property lookup.
//
// Implementations must be safe for concurrent reads; the core never writes
// through this interface.
type Schema interface {
	// Property returns the (name, declared type) pair registered for id.
	// ok is false if id is not present in the schema; the caller must treat
	// this as a decode error (errs.ErrUnknownProperty), never a silent skip.
	Property(id int32) (Property, bool)
}

// NameIndex is an optional capability a Schema may additionally implement
// to support encode-time property-reference compression: looking up a
// property id by the field's declared name rather than the reverse. The
// core never requires it; an encoder without it simply always emits
// named-field header entries.
type NameIndex interface {
	// PropertyByName returns the (id, Property) pair registered for name,
	// or ok=false if no property is registered under that name.
	PropertyByName(name string) (int32, Property, bool)
}

// MapSchema is a simple, immutable Schema backed by a map literal. It is the
// typical way callers supply a schema snapshot to a decode call.
type MapSchema map[int32]Property

var (
	_ Schema    = MapSchema(nil)
	_ NameIndex = MapSchema(nil)
)

// Property implements Schema.
func (s MapSchema) Property(id int32) (Property, bool) {
	p, ok := s[id]
	return p, ok
}

// PropertyByName implements NameIndex by linear scan. MapSchema is meant
// for small, mostly-static schemas; callers with large schemas needing
// repeated name lookups should supply their own NameIndex implementation
// backed by a reverse map.
func (s MapSchema) PropertyByName(name string) (int32, Property, bool) {
	for id, p := range s {
		if p.Name == name {
			return id, p, true
		}
	}

	return 0, Property{}, false
}
