package envelope

import (
	"fmt"

	"github.com/recordwire/codec/errs"
	"github.com/recordwire/codec/internal/pool"
	"github.com/recordwire/codec/primitive"
)

// Kind identifies an envelope term's wire shape (spec §4.5 table).
type Kind uint8

const (
	KindBoolean Kind = iota
	KindAbsent
	KindShort
	KindInt
	KindLong
	KindPlainInt
	KindString
	KindBytes
	KindRaw
	KindList
)

// absentLength is the sentinel 4-byte length value that marks a null
// string/bytes term in place of its real length prefix.
const absentLength = -1

// Term is one encoded or decoded envelope value. Only the fields relevant
// to Kind are meaningful; the zero value of the others is ignored.
type Term struct {
	Kind  Kind
	Bool  bool
	Int   int64  // holds the short/int/long/plain-int payload, width per Kind
	Text  string // KindString payload
	Bytes []byte // KindBytes/KindRaw payload
	Items []Term // KindList payload
}

// Shape describes the expected structure of a term to be decoded. Encode
// needs no equivalent -- the Term itself carries its own Kind -- but
// decode cannot infer a heterogeneous term's shape from its bytes alone,
// since the wire format carries no tag.
type Shape struct {
	Kind Kind
	// Length is the exact byte length to consume for KindRaw, which has no
	// length prefix on the wire.
	Length int
	// Items describes each element's shape for KindList, in order.
	Items []Shape
}

// BoolTerm, AbsentTerm, ShortTerm, IntTerm, LongTerm, PlainIntTerm,
// StringTerm, BytesTerm, RawTerm, and ListTerm are convenience
// constructors for the Term variants.
func BoolTerm(b bool) Term        { return Term{Kind: KindBoolean, Bool: b} }
func AbsentTerm() Term            { return Term{Kind: KindAbsent} }
func ShortTerm(v int16) Term      { return Term{Kind: KindShort, Int: int64(v)} }
func IntTerm(v int32) Term        { return Term{Kind: KindInt, Int: int64(v)} }
func LongTerm(v int64) Term       { return Term{Kind: KindLong, Int: v} }
func PlainIntTerm(v int32) Term   { return Term{Kind: KindPlainInt, Int: int64(v)} }
func StringTerm(s string) Term    { return Term{Kind: KindString, Text: s} }
func BytesTerm(b []byte) Term     { return Term{Kind: KindBytes, Bytes: b} }
func RawTerm(b []byte) Term       { return Term{Kind: KindRaw, Bytes: b} }
func ListTerm(items ...Term) Term { return Term{Kind: KindList, Items: items} }

// EncodeTerm appends t's wire encoding to buf.
func EncodeTerm(buf *pool.ByteBuffer, t Term) error {
	switch t.Kind {
	case KindBoolean:
		buf.B = primitive.PutBool(buf.B, t.Bool)
	case KindAbsent:
		buf.B = primitive.PutInt(buf.B, absentLength)
	case KindShort:
		buf.B = primitive.PutShort(buf.B, int16(t.Int)) //nolint:gosec
	case KindInt, KindPlainInt:
		buf.B = primitive.PutInt(buf.B, int32(t.Int)) //nolint:gosec
	case KindLong:
		buf.B = primitive.PutLong(buf.B, t.Int)
	case KindString:
		buf.B = appendLengthPrefixed(buf.B, []byte(t.Text))
	case KindBytes:
		buf.B = appendLengthPrefixed(buf.B, t.Bytes)
	case KindRaw:
		buf.MustWrite(t.Bytes)
	case KindList:
		for _, item := range t.Items {
			if err := EncodeTerm(buf, item); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: envelope term kind %d", errs.ErrUnknownType, t.Kind)
	}

	return nil
}

// DecodeTerm reads one term matching shape from the start of data,
// returning the term and the number of bytes consumed.
func DecodeTerm(data []byte, shape Shape) (Term, int, error) {
	switch shape.Kind {
	case KindBoolean:
		b, err := primitive.Bool(data)
		if err != nil {
			return Term{}, 0, err
		}
		return BoolTerm(b), 1, nil
	case KindAbsent:
		n, err := primitive.Int(data)
		if err != nil {
			return Term{}, 0, err
		}
		if n != absentLength {
			return Term{}, 0, fmt.Errorf("%w: expected absent marker, got length %d", errs.ErrTruncatedInput, n)
		}
		return AbsentTerm(), 4, nil
	case KindShort:
		v, err := primitive.Short(data)
		if err != nil {
			return Term{}, 0, err
		}
		return ShortTerm(v), 2, nil
	case KindInt:
		v, err := primitive.Int(data)
		if err != nil {
			return Term{}, 0, err
		}
		return IntTerm(v), 4, nil
	case KindPlainInt:
		v, err := primitive.Int(data)
		if err != nil {
			return Term{}, 0, err
		}
		return PlainIntTerm(v), 4, nil
	case KindLong:
		v, err := primitive.Long(data)
		if err != nil {
			return Term{}, 0, err
		}
		return LongTerm(v), 8, nil
	case KindString:
		b, n, absent, err := decodeLengthPrefixed(data)
		if err != nil {
			return Term{}, 0, err
		}
		if absent {
			return AbsentTerm(), n, nil
		}
		return StringTerm(string(b)), n, nil
	case KindBytes:
		b, n, absent, err := decodeLengthPrefixed(data)
		if err != nil {
			return Term{}, 0, err
		}
		if absent {
			return AbsentTerm(), n, nil
		}
		return BytesTerm(b), n, nil
	case KindRaw:
		if shape.Length < 0 || shape.Length > len(data) {
			return Term{}, 0, fmt.Errorf("%w: expected %d raw bytes", errs.ErrTruncatedInput, shape.Length)
		}
		return RawTerm(data[:shape.Length]), shape.Length, nil
	case KindList:
		return decodeList(data, shape.Items)
	default:
		return Term{}, 0, fmt.Errorf("%w: envelope term kind %d", errs.ErrUnknownType, shape.Kind)
	}
}

func decodeList(data []byte, shapes []Shape) (Term, int, error) {
	items := make([]Term, 0, len(shapes))
	n := 0

	for _, s := range shapes {
		t, tn, err := DecodeTerm(data[n:], s)
		if err != nil {
			return Term{}, 0, err
		}

		items = append(items, t)
		n += tn
	}

	return ListTerm(items...), n, nil
}

// appendLengthPrefixed appends a plain 4-byte big-endian length followed by
// b, the envelope's string/bytes encoding (spec §4.5) -- unlike the record
// codec's primitive.PutBytes, the length here is a plain int, not a
// ZigZag-varint.
func appendLengthPrefixed(buf []byte, b []byte) []byte {
	buf = primitive.PutInt(buf, int32(len(b))) //nolint:gosec
	return append(buf, b...)
}

// decodeLengthPrefixed reads a plain 4-byte length prefix and its body.
// absent reports whether the length was the -1 sentinel, in which case no
// body follows and b is nil.
func decodeLengthPrefixed(data []byte) (b []byte, consumed int, absent bool, err error) {
	length, err := primitive.Int(data)
	if err != nil {
		return nil, 0, false, err
	}

	if length == absentLength {
		return nil, 4, true, nil
	}

	if length < 0 {
		return nil, 0, false, fmt.Errorf("%w: negative length %d", errs.ErrTruncatedInput, length)
	}

	end := 4 + int(length)
	if end > len(data) {
		return nil, 0, false, fmt.Errorf("%w: expected %d bytes", errs.ErrTruncatedInput, length)
	}

	return data[4:end], end, false, nil
}
