// Package record implements the value and document codecs of the record
// wire format: the closed tagged-value universe, the two-pass document
// header/data layout, and their mutual recursion through the
// embedded-document and embedded-collection value kinds.
//
// # Overview
//
// Two codecs live here, layered on top of each other:
//
//   - Value: a single tagged value -- a one-byte type tag followed by a
//     body whose shape the tag determines. Scalars (boolean, numbers,
//     strings, dates) have fixed or length-prefixed bodies. Links, link
//     collections, and decimals have their own fixed layouts. Embedded
//     documents and embedded lists/sets/maps recurse back into the value
//     and document codecs.
//   - Document: an optional class name plus a field map, encoded as a
//     class prefix, a header of (name-or-property-reference, offset, type)
//     entries terminated by a zero-length marker, and a trailing data
//     region the header's offsets point into.
//
// Value and Document are kept in one package because the format recurses
// between them -- an embedded document is a value, and a document field is
// a value that may itself be an embedded document or collection -- and Go
// has no way to split mutually recursive types across packages without one
// importing the other.
//
// # Two-pass encoding
//
// Both EncodeDocument and the embedded-map value body use the same
// two-pass shape (embedded lists and sets carry no offsets; their elements
// are written inline in order): write the header with zero-valued offset
// placeholders, write the data bodies in header order while recording each
// one's actual position, then patch the placeholders in a second pass.
// This lets decode seek directly to any field's body without scanning the
// ones before it, at the cost of the encoder needing to know where a value
// will land before it writes the value.
//
//	doc := record.NewDocument().
//	    WithClass("Person").
//	    Set("name", record.StringValue("Ada")).
//	    Set("age", record.IntValue(36))
//
//	encoded, err := record.EncodeDocument(doc)
//	// encoded[0] is the version byte; the class prefix, header, and data
//	// regions follow.
//
//	decoded, err := record.DecodeDocument(encoded, nil)
//	// nil schema: fine here since Set used named fields, not property
//	// references.
//
// # Property references
//
// A header entry can name a field directly or reference a schema-registered
// property id, trading a few bytes of negative-ZigZag id for the field's
// full name. Decoding a property reference requires a schema.Schema;
// encoding one requires a schema.NameIndex (see WithPropertySchema):
//
//	encoded, err := record.EncodeDocument(doc, record.WithPropertySchema(sch))
//	decoded, err := record.DecodeDocument(encoded, sch)
//
// # Standalone values
//
// EncodeValue/DecodeValue encode a single tagged value outside any document
// frame -- useful for tests, or for embedded contexts that already hold a
// value in isolation. DecodeType skips the leading tag byte for callers
// that already know it (a document header entry, an embedded-map value
// slot):
//
//	buf := pool.GetRecordBuffer()
//	defer pool.PutRecordBuffer(buf)
//	_ = record.EncodeValue(buf, record.DoubleValue(3.14159))
//
// # Recursion limit
//
// Embedded documents and embedded collections recurse into the same
// encode/decode paths. WithMaxDepth bounds that recursion (default 64);
// exceeding it returns errs.ErrRecursionLimitExceeded rather than
// overflowing the Go stack on adversarial or corrupted input.
package record
