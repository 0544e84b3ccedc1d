package record

import "github.com/recordwire/codec/vtype"

// Value is a single typed value from the closed universe of spec §3. The
// zero Value is not meaningful; use one of the constructors.
type Value struct {
	tag  vtype.Tag
	data any
}

// Tag returns the value's wire type tag.
func (v Value) Tag() vtype.Tag {
	return v.tag
}

// Raw returns the underlying Go value. Prefer As[T] or the typed
// accessors below for type-safe access.
func (v Value) Raw() any {
	return v.data
}

// As extracts v's payload as T, reporting whether the underlying data was
// actually of that type.
func As[T any](v Value) (T, bool) {
	t, ok := v.data.(T)
	return t, ok
}

// ValueMap is a string-keyed map of values used by both Document fields
// and the embedded-map value kind. A nil entry denotes a null value (spec
// Invariant 4: a null field has header offset zero and contributes no data
// body; the same null discipline applies to embedded-map entries).
type ValueMap map[string]*Value

func newValue(tag vtype.Tag, data any) Value {
	return Value{tag: tag, data: data}
}

// BoolValue constructs a boolean value (tag 0).
func BoolValue(b bool) Value { return newValue(vtype.TagBoolean, b) }

// IntValue constructs a 32-bit semantic int value (tag 1).
func IntValue(i int32) Value { return newValue(vtype.TagInt, i) }

// ShortValue constructs a short value (tag 2).
func ShortValue(i int16) Value { return newValue(vtype.TagShort, i) }

// LongValue constructs a long value (tag 3).
func LongValue(i int64) Value { return newValue(vtype.TagLong, i) }

// FloatValue constructs a 4-byte float value (tag 4). Native floating point
// values default to double on encode (spec §9); use FloatValue explicitly
// to request the narrower 4-byte form.
func FloatValue(f float32) Value { return newValue(vtype.TagFloat, f) }

// DoubleValue constructs an 8-byte double value (tag 5).
func DoubleValue(f float64) Value { return newValue(vtype.TagDouble, f) }

// StringValue constructs a string value (tag 7).
func StringValue(s string) Value { return newValue(vtype.TagString, s) }

// BinaryValue constructs a binary value (tag 8).
func BinaryValue(b []byte) Value { return newValue(vtype.TagBinary, b) }

// AsBool returns v's boolean payload.
func (v Value) AsBool() (bool, bool) { return As[bool](v) }

// AsInt returns v's int payload.
func (v Value) AsInt() (int32, bool) { return As[int32](v) }

// AsShort returns v's short payload.
func (v Value) AsShort() (int16, bool) { return As[int16](v) }

// AsLong returns v's long payload.
func (v Value) AsLong() (int64, bool) { return As[int64](v) }

// AsFloat returns v's float payload.
func (v Value) AsFloat() (float32, bool) { return As[float32](v) }

// AsDouble returns v's double payload.
func (v Value) AsDouble() (float64, bool) { return As[float64](v) }

// AsString returns v's string payload.
func (v Value) AsString() (string, bool) { return As[string](v) }

// AsBinary returns v's binary payload.
func (v Value) AsBinary() ([]byte, bool) { return As[[]byte](v) }
