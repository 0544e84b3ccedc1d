package record

import (
	"github.com/recordwire/codec/types"
	"github.com/recordwire/codec/vtype"
)

// DateTimeValue constructs a datetime value (tag 6).
func DateTimeValue(dt types.DateTime) Value { return newValue(vtype.TagDateTime, dt) }

// DateValue constructs a date value (tag 22).
func DateValue(d types.Date) Value { return newValue(vtype.TagDate, d) }

// DecimalValue constructs a decimal value (tag 19).
func DecimalValue(d types.Decimal) Value { return newValue(vtype.TagDecimal, d) }

// LinkValue constructs a link value (tag 13).
func LinkValue(r types.RID) Value { return newValue(vtype.TagLink, r) }

// LinkListValue constructs a link-list value (tag 14).
func LinkListValue(l types.LinkList) Value { return newValue(vtype.TagLinkList, l) }

// LinkSetValue constructs a link-set value (tag 15).
func LinkSetValue(s *types.LinkSet) Value { return newValue(vtype.TagLinkSet, s) }

// LinkMapValue constructs a link-map value (tag 16).
func LinkMapValue(m types.LinkMap) Value { return newValue(vtype.TagLinkMap, m) }

// LinkBagValue constructs a link-bag value (tag 17). Only the embedded form
// is representable; the tree form is rejected at decode time, not modeled
// as a Go value (spec Non-goals, Invariant 8).
func LinkBagValue(b types.LinkBag) Value { return newValue(vtype.TagLinkBag, b) }

// EmbeddedDocumentValue constructs an embedded document value (tag 9).
func EmbeddedDocumentValue(d Document) Value { return newValue(vtype.TagEmbeddedDocument, d) }

// EmbeddedListValue constructs an embedded list value (tag 10), an ordered
// sequence of heterogeneous values.
func EmbeddedListValue(vs []Value) Value { return newValue(vtype.TagEmbeddedList, vs) }

// EmbeddedSetValue constructs an embedded set value (tag 11), an unordered
// collection of heterogeneous values.
func EmbeddedSetValue(s *ValueSet) Value { return newValue(vtype.TagEmbeddedSet, s) }

// EmbeddedMapValue constructs an embedded map value (tag 12), a
// string-keyed map of heterogeneous values where individual entries may be
// null.
func EmbeddedMapValue(m ValueMap) Value { return newValue(vtype.TagEmbeddedMap, m) }

// AsDateTime returns v's datetime payload.
func (v Value) AsDateTime() (types.DateTime, bool) { return As[types.DateTime](v) }

// AsDate returns v's date payload.
func (v Value) AsDate() (types.Date, bool) { return As[types.Date](v) }

// AsDecimal returns v's decimal payload.
func (v Value) AsDecimal() (types.Decimal, bool) { return As[types.Decimal](v) }

// AsLink returns v's link (RID) payload.
func (v Value) AsLink() (types.RID, bool) { return As[types.RID](v) }

// AsLinkList returns v's link-list payload.
func (v Value) AsLinkList() (types.LinkList, bool) { return As[types.LinkList](v) }

// AsLinkSet returns v's link-set payload.
func (v Value) AsLinkSet() (*types.LinkSet, bool) { return As[*types.LinkSet](v) }

// AsLinkMap returns v's link-map payload.
func (v Value) AsLinkMap() (types.LinkMap, bool) { return As[types.LinkMap](v) }

// AsLinkBag returns v's link-bag payload.
func (v Value) AsLinkBag() (types.LinkBag, bool) { return As[types.LinkBag](v) }

// AsEmbeddedDocument returns v's embedded document payload.
func (v Value) AsEmbeddedDocument() (Document, bool) { return As[Document](v) }

// AsEmbeddedList returns v's embedded list payload.
func (v Value) AsEmbeddedList() ([]Value, bool) { return As[[]Value](v) }

// AsEmbeddedSet returns v's embedded set payload.
func (v Value) AsEmbeddedSet() (*ValueSet, bool) { return As[*ValueSet](v) }

// AsEmbeddedMap returns v's embedded map payload.
func (v Value) AsEmbeddedMap() (ValueMap, bool) { return As[ValueMap](v) }
