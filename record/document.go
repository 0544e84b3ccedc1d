package record

// Document is a record: an optional class name and a field mapping from
// string keys to typed values (spec §3 "Document"). A nil Fields entry
// denotes a null field.
type Document struct {
	// Class is the document's class name. nil means absent (spec
	// Invariant 2: a non-empty string or absent, never present-but-empty
	// unless the caller explicitly sets an empty string).
	Class *string
	Fields ValueMap
}

// NewDocument creates an empty document with no class.
func NewDocument() Document {
	return Document{Fields: ValueMap{}}
}

// WithClass sets the document's class name and returns d for chaining.
func (d Document) WithClass(name string) Document {
	d.Class = &name
	return d
}

// Set assigns a non-null field value.
func (d Document) Set(name string, v Value) Document {
	if d.Fields == nil {
		d.Fields = ValueMap{}
	}
	vv := v
	d.Fields[name] = &vv

	return d
}

// SetNull assigns a null field value.
func (d Document) SetNull(name string) Document {
	if d.Fields == nil {
		d.Fields = ValueMap{}
	}
	d.Fields[name] = nil

	return d
}

// Equal reports whether two documents have the same class and fields.
// Field value comparison follows Equal's unordered-collection rules; map
// key order is never compared (spec Non-goals: source map-key order is not
// preserved across encode/decode).
func (d Document) Equal(other Document) bool {
	if (d.Class == nil) != (other.Class == nil) {
		return false
	}
	if d.Class != nil && *d.Class != *other.Class {
		return false
	}

	if len(d.Fields) != len(other.Fields) {
		return false
	}

	for k, v := range d.Fields {
		ov, ok := other.Fields[k]
		if !ok {
			return false
		}
		if (v == nil) != (ov == nil) {
			return false
		}
		if v != nil && !Equal(*v, *ov) {
			return false
		}
	}

	return true
}
