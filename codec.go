// Package codec is the record serialization core: a byte-exact codec for a
// closed universe of typed values and the documents built from them,
// plus a distinct, simpler term codec for RPC framing.
//
// The package is a thin convenience facade over record (value and document
// codecs), envelope (RPC term codec), vtype (the type-tag enum), and
// schema (the read-only property lookup decode consumes). Most callers
// only need this package; record/envelope/vtype/schema are exported
// separately for callers building their own framing on top of the same
// primitives.
package codec

import (
	"github.com/recordwire/codec/envelope"
	"github.com/recordwire/codec/internal/pool"
	"github.com/recordwire/codec/record"
	"github.com/recordwire/codec/schema"
	"github.com/recordwire/codec/vtype"
)

// Re-exported core types, so callers need only import this package for
// the common path.
type (
	Document = record.Document
	Value    = record.Value
	Tag      = vtype.Tag
	Schema   = schema.Schema
	Term     = envelope.Term
)

// EncodeOption configures EncodeDocument and EncodeValue.
type EncodeOption = record.EncodeOption

// DecodeOption configures DecodeDocument and DecodeType.
type DecodeOption = record.DecodeOption

// EncodeDocument encodes doc as a top-level record (spec §6
// "encode_document"): a version byte followed by the class prefix,
// header, and data regions.
func EncodeDocument(doc Document, opts ...EncodeOption) ([]byte, error) {
	return record.EncodeDocument(doc, opts...)
}

// DecodeDocument decodes a top-level record produced by EncodeDocument
// (spec §6 "decode_document"). sch resolves property-reference header
// entries and may be nil if the record is known to use named-field
// entries only.
func DecodeDocument(data []byte, sch Schema, opts ...DecodeOption) (Document, error) {
	return record.DecodeDocument(data, sch, opts...)
}

// EncodeValue encodes v as a standalone tagged value (spec §6
// "encode_value"): used outside a document frame, e.g. by tests or
// embedded contexts that already hold a value in isolation.
func EncodeValue(v Value, opts ...EncodeOption) ([]byte, error) {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	if err := record.EncodeValue(buf, v, opts...); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeType parses one value of the given tag from the start of data and
// returns the unconsumed tail (spec §6 "decode_type").
func DecodeType(data []byte, tag Tag, opts ...DecodeOption) (Value, []byte, error) {
	return record.DecodeType(data, tag, opts...)
}

// EncodeTerm encodes an envelope term for the RPC framing layer (spec §6
// "encode_term"), independent of the document/value codec above.
func EncodeTerm(t Term) ([]byte, error) {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	if err := envelope.EncodeTerm(buf, t); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeTerm parses one envelope term matching shape from the start of
// data (spec §6 "decode_term"), returning the term and the number of
// bytes consumed.
func DecodeTerm(data []byte, shape envelope.Shape) (Term, int, error) {
	return envelope.DecodeTerm(data, shape)
}
