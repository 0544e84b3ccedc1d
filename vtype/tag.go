// Package vtype defines Tag, the single-byte type tag that identifies each
// kind in the record format's closed typed-value universe (spec §3/§4.3).
//
// Tag is kept in its own leaf package so that both the schema package
// (which references a property's declared type) and the record package
// (which dispatches encode/decode on it) can depend on it without a
// circular import.
package vtype

// Tag is the single-byte discriminator for a value's kind on the wire.
type Tag uint8

// The canonical tag set, exactly as specified in spec §4.3. Tags 18, 20,
// and 21 are deliberately absent from the defined set.
const (
	TagBoolean           Tag = 0
	TagInt               Tag = 1
	TagShort             Tag = 2
	TagLong              Tag = 3
	TagFloat             Tag = 4
	TagDouble            Tag = 5
	TagDateTime          Tag = 6
	TagString            Tag = 7
	TagBinary            Tag = 8
	TagEmbeddedDocument  Tag = 9
	TagEmbeddedList      Tag = 10
	TagEmbeddedSet       Tag = 11
	TagEmbeddedMap       Tag = 12
	TagLink              Tag = 13
	TagLinkList          Tag = 14
	TagLinkSet           Tag = 15
	TagLinkMap           Tag = 16
	TagLinkBag           Tag = 17
	TagDecimal           Tag = 19
	TagDate              Tag = 22
	TagAny               Tag = 23
)

// IsDefined reports whether t is one of the tags in the closed universe.
func (t Tag) IsDefined() bool {
	switch t {
	case TagBoolean, TagInt, TagShort, TagLong, TagFloat, TagDouble, TagDateTime,
		TagString, TagBinary, TagEmbeddedDocument, TagEmbeddedList, TagEmbeddedSet,
		TagEmbeddedMap, TagLink, TagLinkList, TagLinkSet, TagLinkMap, TagLinkBag,
		TagDecimal, TagDate, TagAny:
		return true
	default:
		return false
	}
}

// String renders a human-readable tag name, returning "unknown" for tags
// outside the defined set.
func (t Tag) String() string {
	switch t {
	case TagBoolean:
		return "boolean"
	case TagInt:
		return "int"
	case TagShort:
		return "short"
	case TagLong:
		return "long"
	case TagFloat:
		return "float"
	case TagDouble:
		return "double"
	case TagDateTime:
		return "datetime"
	case TagString:
		return "string"
	case TagBinary:
		return "binary"
	case TagEmbeddedDocument:
		return "embedded_document"
	case TagEmbeddedList:
		return "embedded_list"
	case TagEmbeddedSet:
		return "embedded_set"
	case TagEmbeddedMap:
		return "embedded_map"
	case TagLink:
		return "link"
	case TagLinkList:
		return "link_list"
	case TagLinkSet:
		return "link_set"
	case TagLinkMap:
		return "link_map"
	case TagLinkBag:
		return "link_bag"
	case TagDecimal:
		return "decimal"
	case TagDate:
		return "date"
	case TagAny:
		return "any"
	default:
		return "unknown"
	}
}
