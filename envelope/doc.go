// Package envelope implements the RPC-framing term codec: a distinct,
// simpler codec from the record value/document codecs in the record
// package, used to serialize request/response arguments for the transport
// layer.
//
// # Why a separate codec
//
// The record package's value codec is self-describing: every encoded value
// starts with its own type tag, so a decoder can recover the shape of
// arbitrary, previously unseen data. An envelope term carries no such tag.
// Its shape comes from the RPC method signature instead -- the caller
// already knows, from the API it's calling, that argument three is a
// string and argument four is a list of ints. Trying to reuse the
// self-describing value codec here would mean paying a tag byte per
// argument for information the caller already has.
//
// # Shape-driven decoding
//
// Because terms aren't self-describing, DecodeTerm takes an explicit Shape
// describing what to expect, rather than inferring it from the bytes:
//
//	term := envelope.ListTerm(envelope.StringTerm("q"), envelope.IntTerm(7))
//	buf := pool.GetRecordBuffer()
//	defer pool.PutRecordBuffer(buf)
//	err := envelope.EncodeTerm(buf, term)
//
//	shape := envelope.Shape{Kind: envelope.KindList, Items: []envelope.Shape{
//	    {Kind: envelope.KindString},
//	    {Kind: envelope.KindInt},
//	}}
//	decoded, n, err := envelope.DecodeTerm(buf.Bytes(), shape)
//
// # Absent values
//
// KindString and KindBytes terms use a plain 4-byte length prefix, with a
// -1 sentinel standing in for "no value" in place of the real length.
// DecodeTerm handles that sentinel transparently: decoding a KindString or
// KindBytes shape against an absent-marked term yields a Term{Kind:
// KindAbsent} rather than an error, so callers don't need to special-case
// nullable arguments against a separate shape.
//
// # Raw terms
//
// KindRaw copies bytes verbatim with no length prefix at all -- the caller
// must already know the exact byte count from context external to the
// encoding (for example, a fixed-width argument slot). This is the one term
// kind Shape cannot validate on decode; DecodeTerm trusts Shape.Length.
package envelope
