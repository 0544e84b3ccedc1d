package record

import (
	"fmt"
	"sort"

	"github.com/recordwire/codec/errs"
	"github.com/recordwire/codec/internal/pool"
	"github.com/recordwire/codec/primitive"
	"github.com/recordwire/codec/types"
	"github.com/recordwire/codec/varint"
	"github.com/recordwire/codec/vtype"
)

// EncodeValue appends v's tag byte and body to buf (spec §4.3).
func EncodeValue(buf *pool.ByteBuffer, v Value, opts ...EncodeOption) error {
	cfg, err := newEncodeConfig(opts...)
	if err != nil {
		return err
	}

	return encodeValue(buf, v, cfg, 0)
}

// DecodeValue reads a tagged value from the start of data, returning the
// decoded value and the remaining unconsumed bytes.
func DecodeValue(data []byte, opts ...DecodeOption) (Value, []byte, error) {
	cfg, err := newDecodeConfig(opts...)
	if err != nil {
		return Value{}, nil, err
	}

	v, n, err := decodeValue(data, cfg, 0)
	if err != nil {
		return Value{}, nil, err
	}

	return v, data[n:], nil
}

// DecodeType parses one value body of the given tag from the start of
// data, without expecting a leading tag byte -- the caller already knows
// the tag, e.g. from a document header entry or an embedded-map value
// slot. It returns the decoded value and the unconsumed tail.
func DecodeType(data []byte, tag vtype.Tag, opts ...DecodeOption) (Value, []byte, error) {
	cfg, err := newDecodeConfig(opts...)
	if err != nil {
		return Value{}, nil, err
	}

	v, n, err := decodeBody(tag, data, cfg, 0)
	if err != nil {
		return Value{}, nil, err
	}

	return v, data[n:], nil
}

func encodeValue(buf *pool.ByteBuffer, v Value, cfg *EncodeConfig, depth int) error {
	buf.MustWriteByte(byte(v.tag))
	return encodeBody(buf, v, cfg, depth)
}

func decodeValue(data []byte, cfg *DecodeConfig, depth int) (Value, int, error) {
	if len(data) < 1 {
		return Value{}, 0, fmt.Errorf("%w: expected 1 byte for type tag", errs.ErrTruncatedInput)
	}

	tag := vtype.Tag(data[0])
	v, n, err := decodeBody(tag, data[1:], cfg, depth)
	if err != nil {
		return Value{}, 0, err
	}

	return v, n + 1, nil
}

// encodeBody writes v's body, without its leading tag byte. Used directly
// by the document codec, where the type tag lives in the header entry
// rather than alongside the body.
func encodeBody(buf *pool.ByteBuffer, v Value, cfg *EncodeConfig, depth int) error {
	switch v.tag {
	case vtype.TagBoolean:
		b, _ := v.AsBool()
		buf.B = primitive.PutBool(buf.B, b)
	case vtype.TagInt:
		i, _ := v.AsInt()
		buf.B = varint.AppendZigZag64(buf.B, int64(i))
	case vtype.TagShort:
		i, _ := v.AsShort()
		buf.B = varint.AppendZigZag64(buf.B, int64(i))
	case vtype.TagLong:
		i, _ := v.AsLong()
		buf.B = varint.AppendZigZag64(buf.B, i)
	case vtype.TagFloat:
		f, _ := v.AsFloat()
		buf.B = primitive.PutFloat32(buf.B, f)
	case vtype.TagDouble:
		f, _ := v.AsDouble()
		buf.B = primitive.PutFloat64(buf.B, f)
	case vtype.TagDateTime:
		dt, _ := v.AsDateTime()
		buf.B = varint.AppendZigZag64(buf.B, dt.UnixMilli())
	case vtype.TagDate:
		d, _ := v.AsDate()
		buf.B = varint.AppendZigZag64(buf.B, d.EpochDays())
	case vtype.TagString:
		s, _ := v.AsString()
		buf.B = primitive.PutString(buf.B, s)
	case vtype.TagBinary:
		b, _ := v.AsBinary()
		buf.B = primitive.PutBytes(buf.B, b)
	case vtype.TagLink:
		r, _ := v.AsLink()
		encodeLinkBody(buf, r)
	case vtype.TagLinkList:
		l, _ := v.AsLinkList()
		buf.B = varint.AppendZigZag64(buf.B, int64(len(l)))
		for _, r := range l {
			encodeLinkBody(buf, r)
		}
	case vtype.TagLinkSet:
		s, _ := v.AsLinkSet()
		rids := s.Slice()
		buf.B = varint.AppendZigZag64(buf.B, int64(len(rids)))
		for _, r := range rids {
			encodeLinkBody(buf, r)
		}
	case vtype.TagLinkMap:
		m, _ := v.AsLinkMap()
		return encodeLinkMapBody(buf, m, cfg)
	case vtype.TagLinkBag:
		l, _ := v.AsLinkBag()
		encodeLinkBagBody(buf, l)
	case vtype.TagDecimal:
		d, _ := v.AsDecimal()
		encodeDecimalBody(buf, d)
	case vtype.TagEmbeddedDocument:
		d, _ := v.AsEmbeddedDocument()
		if depth+1 > cfg.maxDepth {
			return errs.ErrRecursionLimitExceeded
		}
		return encodeDocumentBody(buf, d, cfg, depth+1)
	case vtype.TagEmbeddedList:
		vs, _ := v.AsEmbeddedList()
		return encodeEmbeddedSequenceBody(buf, vs, cfg, depth)
	case vtype.TagEmbeddedSet:
		s, _ := v.AsEmbeddedSet()
		return encodeEmbeddedSequenceBody(buf, s.Slice(), cfg, depth)
	case vtype.TagEmbeddedMap:
		m, _ := v.AsEmbeddedMap()
		return encodeEmbeddedMapBody(buf, m, cfg, depth)
	default:
		return fmt.Errorf("%w: %d", errs.ErrUnknownType, v.tag)
	}

	return nil
}

// decodeBody reads a value's body for the given tag, returning the decoded
// value and the number of bytes consumed.
func decodeBody(tag vtype.Tag, data []byte, cfg *DecodeConfig, depth int) (Value, int, error) {
	switch tag {
	case vtype.TagBoolean:
		b, err := primitive.Bool(data)
		if err != nil {
			return Value{}, 0, err
		}
		return BoolValue(b), 1, nil
	case vtype.TagInt:
		i, n, err := varint.ZigZag64(data)
		if err != nil {
			return Value{}, 0, err
		}
		return IntValue(int32(i)), n, nil //nolint:gosec
	case vtype.TagShort:
		i, n, err := varint.ZigZag64(data)
		if err != nil {
			return Value{}, 0, err
		}
		return ShortValue(int16(i)), n, nil //nolint:gosec
	case vtype.TagLong:
		i, n, err := varint.ZigZag64(data)
		if err != nil {
			return Value{}, 0, err
		}
		return LongValue(i), n, nil
	case vtype.TagFloat:
		f, err := primitive.Float32(data)
		if err != nil {
			return Value{}, 0, err
		}
		return FloatValue(f), 4, nil
	case vtype.TagDouble:
		f, err := primitive.Float64(data)
		if err != nil {
			return Value{}, 0, err
		}
		return DoubleValue(f), 8, nil
	case vtype.TagDateTime:
		ms, n, err := varint.ZigZag64(data)
		if err != nil {
			return Value{}, 0, err
		}
		return DateTimeValue(types.DateTimeFromUnixMilli(ms)), n, nil
	case vtype.TagDate:
		days, n, err := varint.ZigZag64(data)
		if err != nil {
			return Value{}, 0, err
		}
		return DateValue(types.DateFromEpochDays(days)), n, nil
	case vtype.TagString:
		s, n, err := primitive.String(data)
		if err != nil {
			return Value{}, 0, err
		}
		return StringValue(s), n, nil
	case vtype.TagBinary:
		b, n, err := primitive.Bytes(data)
		if err != nil {
			return Value{}, 0, err
		}
		return BinaryValue(b), n, nil
	case vtype.TagLink:
		r, n, err := decodeLinkBody(data)
		if err != nil {
			return Value{}, 0, err
		}
		return LinkValue(r), n, nil
	case vtype.TagLinkList:
		return decodeLinkListBody(data)
	case vtype.TagLinkSet:
		return decodeLinkSetBody(data)
	case vtype.TagLinkMap:
		return decodeLinkMapBody(data)
	case vtype.TagLinkBag:
		return decodeLinkBagBody(data)
	case vtype.TagDecimal:
		return decodeDecimalBody(data)
	case vtype.TagEmbeddedDocument:
		if depth+1 > cfg.maxDepth {
			return Value{}, 0, errs.ErrRecursionLimitExceeded
		}
		d, n, err := decodeDocumentBody(data, nil, cfg, depth+1)
		if err != nil {
			return Value{}, 0, err
		}
		return EmbeddedDocumentValue(d), n, nil
	case vtype.TagEmbeddedList:
		vs, n, err := decodeEmbeddedSequenceBody(data, cfg, depth)
		if err != nil {
			return Value{}, 0, err
		}
		return EmbeddedListValue(vs), n, nil
	case vtype.TagEmbeddedSet:
		vs, n, err := decodeEmbeddedSequenceBody(data, cfg, depth)
		if err != nil {
			return Value{}, 0, err
		}
		return EmbeddedSetValue(ValueSetOf(vs)), n, nil
	case vtype.TagEmbeddedMap:
		m, n, err := decodeEmbeddedMapBody(data, cfg, depth)
		if err != nil {
			return Value{}, 0, err
		}
		return EmbeddedMapValue(m), n, nil
	default:
		return Value{}, 0, fmt.Errorf("%w: %d", errs.ErrUnknownType, tag)
	}
}

func encodeLinkBody(buf *pool.ByteBuffer, r types.RID) {
	buf.B = varint.AppendZigZag64(buf.B, int64(r.ClusterID))
	buf.B = varint.AppendZigZag64(buf.B, int64(r.Position)) //nolint:gosec
}

func decodeLinkBody(data []byte) (types.RID, int, error) {
	cluster, n1, err := varint.ZigZag64(data)
	if err != nil {
		return types.RID{}, 0, err
	}

	pos, n2, err := varint.ZigZag64(data[n1:])
	if err != nil {
		return types.RID{}, 0, err
	}

	return types.RID{ClusterID: uint16(cluster), Position: uint64(pos)}, n1 + n2, nil //nolint:gosec
}

func decodeLinkListBody(data []byte) (Value, int, error) {
	count, n, err := varint.ZigZag64(data)
	if err != nil {
		return Value{}, 0, err
	}

	out := make(types.LinkList, 0, count)
	for i := int64(0); i < count; i++ {
		r, rn, err := decodeLinkBody(data[n:])
		if err != nil {
			return Value{}, 0, err
		}
		out = append(out, r)
		n += rn
	}

	return LinkListValue(out), n, nil
}

func decodeLinkSetBody(data []byte) (Value, int, error) {
	count, n, err := varint.ZigZag64(data)
	if err != nil {
		return Value{}, 0, err
	}

	out := types.NewLinkSet()
	for i := int64(0); i < count; i++ {
		r, rn, err := decodeLinkBody(data[n:])
		if err != nil {
			return Value{}, 0, err
		}
		out.Add(r)
		n += rn
	}

	return LinkSetValue(out), n, nil
}

// encodeLinkMapBody writes the link-map body (spec §4.3.3): count, then
// (key tag=7, key string, link body) per entry -- no offsets, since links
// are fixed-size-per-element.
func encodeLinkMapBody(buf *pool.ByteBuffer, m types.LinkMap, cfg *EncodeConfig) error {
	keys := sortedLinkMapKeys(m, cfg)

	buf.B = varint.AppendZigZag64(buf.B, int64(len(keys)))
	for _, k := range keys {
		buf.MustWriteByte(byte(vtype.TagString))
		buf.B = primitive.PutString(buf.B, k)
		encodeLinkBody(buf, m[k])
	}

	return nil
}

func sortedLinkMapKeys(m types.LinkMap, cfg *EncodeConfig) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if cfg.sortedKeys {
		sort.Strings(keys)
	}

	return keys
}

func decodeLinkMapBody(data []byte) (Value, int, error) {
	count, n, err := varint.ZigZag64(data)
	if err != nil {
		return Value{}, 0, err
	}

	out := make(types.LinkMap, count)
	for i := int64(0); i < count; i++ {
		if n >= len(data) {
			return Value{}, 0, errs.ErrTruncatedInput
		}
		n++ // key type tag, always string (7); not re-validated on decode

		key, kn, err := primitive.String(data[n:])
		if err != nil {
			return Value{}, 0, err
		}
		n += kn

		r, rn, err := decodeLinkBody(data[n:])
		if err != nil {
			return Value{}, 0, err
		}
		n += rn

		out[key] = r
	}

	return LinkMapValue(out), n, nil
}

// encodeLinkBagBody writes the embedded-form link bag (spec §4.3.4): a
// 0x01 discriminator, a 4-byte size, then N fixed-width RIDs (2-byte
// cluster_id + 8-byte position, not the varint form free-standing links
// use).
func encodeLinkBagBody(buf *pool.ByteBuffer, l types.LinkBag) {
	buf.MustWriteByte(0x01)
	buf.B = primitive.PutUint32(buf.B, uint32(len(l))) //nolint:gosec

	for _, r := range l {
		buf.B = primitive.PutShort(buf.B, int16(r.ClusterID)) //nolint:gosec
		buf.B = primitive.PutLong(buf.B, int64(r.Position))    //nolint:gosec
	}
}

func decodeLinkBagBody(data []byte) (Value, int, error) {
	if len(data) < 1 {
		return Value{}, 0, fmt.Errorf("%w: expected 1 byte for link bag discriminator", errs.ErrTruncatedInput)
	}

	if data[0] != 0x01 {
		return Value{}, 0, fmt.Errorf("%w: discriminator 0x%02x", errs.ErrTreeLinkBagUnsupported, data[0])
	}

	size, err := primitive.Uint32(data[1:])
	if err != nil {
		return Value{}, 0, err
	}

	n := 5
	out := make(types.LinkBag, 0, size)
	for i := uint32(0); i < size; i++ {
		cluster, err := primitive.Short(data[n:])
		if err != nil {
			return Value{}, 0, err
		}
		n += 2

		pos, err := primitive.Long(data[n:])
		if err != nil {
			return Value{}, 0, err
		}
		n += 8

		out = append(out, types.RID{ClusterID: uint16(cluster), Position: uint64(pos)}) //nolint:gosec
	}

	return LinkBagValue(out), n, nil
}

// encodeDecimalBody writes the decimal body (spec §4.3.5): 4-byte scale,
// 4-byte magnitude length, then the two's-complement magnitude bytes.
func encodeDecimalBody(buf *pool.ByteBuffer, d types.Decimal) {
	m := bigIntToTwosComplement(d.Unscaled)

	buf.B = primitive.PutInt(buf.B, d.Scale)
	buf.B = primitive.PutInt(buf.B, int32(len(m))) //nolint:gosec
	buf.MustWrite(m)
}

func decodeDecimalBody(data []byte) (Value, int, error) {
	scale, err := primitive.Int(data)
	if err != nil {
		return Value{}, 0, err
	}

	length, err := primitive.Int(data[4:])
	if err != nil {
		return Value{}, 0, err
	}
	if length < 0 {
		return Value{}, 0, fmt.Errorf("%w: negative decimal magnitude length", errs.ErrTruncatedInput)
	}

	start := 8
	end := start + int(length)
	if end > len(data) {
		return Value{}, 0, fmt.Errorf("%w: expected %d bytes for decimal magnitude", errs.ErrTruncatedInput, length)
	}

	unscaled := bigIntFromTwosComplement(data[start:end])
	d, err := types.NewDecimal(unscaled, scale)
	if err != nil {
		return Value{}, 0, err
	}

	return DecimalValue(d), end, nil
}

// encodeEmbeddedSequenceBody writes the shared body of embedded list/set
// (spec §4.3.1): ZigZag count, the uniform element-type tag (the core
// always emits TagAny and is tolerant of any tag on decode), then each
// element as a full tagged value.
func encodeEmbeddedSequenceBody(buf *pool.ByteBuffer, vs []Value, cfg *EncodeConfig, depth int) error {
	if depth+1 > cfg.maxDepth {
		return errs.ErrRecursionLimitExceeded
	}

	buf.B = varint.AppendZigZag64(buf.B, int64(len(vs)))
	buf.MustWriteByte(byte(vtype.TagAny))

	for _, v := range vs {
		if err := encodeValue(buf, v, cfg, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func decodeEmbeddedSequenceBody(data []byte, cfg *DecodeConfig, depth int) ([]Value, int, error) {
	if depth+1 > cfg.maxDepth {
		return nil, 0, errs.ErrRecursionLimitExceeded
	}

	count, n, err := varint.ZigZag64(data)
	if err != nil {
		return nil, 0, err
	}

	if n >= len(data) {
		return nil, 0, errs.ErrTruncatedInput
	}
	n++ // uniform element-type tag; decode is tolerant of its value

	out := make([]Value, 0, count)
	for i := int64(0); i < count; i++ {
		v, vn, err := decodeValue(data[n:], cfg, depth+1)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
		n += vn
	}

	return out, n, nil
}

// embeddedMapEntry holds one header entry while encoding an embedded map,
// before its value body has been written and its offset placeholder
// patched.
type embeddedMapEntry struct {
	key          string
	value        *Value
	placeholder  int
}

// encodeEmbeddedMapBody writes the embedded-map body (spec §4.3.2): ZigZag
// count; per entry (key tag=7, key string, 4-byte absolute offset from the
// start of this map's body, 1-byte value type tag, 0 for null); then the
// non-null value bodies in entry order. Offsets are relative to the first
// byte of the map's own body (its count varint), not the enclosing record.
func encodeEmbeddedMapBody(buf *pool.ByteBuffer, m ValueMap, cfg *EncodeConfig, depth int) error {
	if depth+1 > cfg.maxDepth {
		return errs.ErrRecursionLimitExceeded
	}

	mapStart := buf.Len()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if cfg.sortedKeys {
		sort.Strings(keys)
	}

	buf.B = varint.AppendZigZag64(buf.B, int64(len(keys)))

	entries := make([]embeddedMapEntry, 0, len(keys))
	for _, k := range keys {
		buf.MustWriteByte(byte(vtype.TagString))
		buf.B = primitive.PutString(buf.B, k)

		v := m[k]
		placeholder := buf.Len()
		buf.B = primitive.PutUint32(buf.B, 0)

		tag := byte(0)
		if v != nil {
			tag = byte(v.tag)
		}
		buf.MustWriteByte(tag)

		entries = append(entries, embeddedMapEntry{key: k, value: v, placeholder: placeholder})
	}

	for _, e := range entries {
		if e.value == nil {
			continue
		}

		offset := buf.Len() - mapStart
		if err := encodeBody(buf, *e.value, cfg, depth+1); err != nil {
			return err
		}

		patchUint32(buf, e.placeholder, uint32(offset)) //nolint:gosec
	}

	return nil
}

func decodeEmbeddedMapBody(data []byte, cfg *DecodeConfig, depth int) (ValueMap, int, error) {
	if depth+1 > cfg.maxDepth {
		return nil, 0, errs.ErrRecursionLimitExceeded
	}

	count, n, err := varint.ZigZag64(data)
	if err != nil {
		return nil, 0, err
	}

	type pendingEntry struct {
		key    string
		offset uint32
		tag    vtype.Tag
	}

	entries := make([]pendingEntry, 0, count)
	for i := int64(0); i < count; i++ {
		if n >= len(data) {
			return nil, 0, errs.ErrTruncatedInput
		}
		n++ // key type tag, always string (7)

		key, kn, err := primitive.String(data[n:])
		if err != nil {
			return nil, 0, err
		}
		n += kn

		offset, err := primitive.Uint32(data[n:])
		if err != nil {
			return nil, 0, err
		}
		n += 4

		if n >= len(data) {
			return nil, 0, errs.ErrTruncatedInput
		}
		tag := vtype.Tag(data[n])
		n++

		entries = append(entries, pendingEntry{key: key, offset: offset, tag: tag})
	}

	out := make(ValueMap, len(entries))
	headerEnd := n

	for _, e := range entries {
		if e.offset == 0 {
			out[e.key] = nil
			continue
		}

		start := int(e.offset)
		if start >= len(data) {
			return nil, 0, errs.ErrOffsetOutOfRange
		}

		v, vn, err := decodeBody(e.tag, data[start:], cfg, depth+1)
		if err != nil {
			return nil, 0, err
		}

		vv := v
		out[e.key] = &vv

		if end := start + vn; end > n {
			n = end
		}
	}

	if n < headerEnd {
		n = headerEnd
	}

	return out, n, nil
}

// patchUint32 overwrites the 4-byte big-endian field at buf.B[at:at+4]
// with v, used to fill in offset placeholders after the data region has
// been emitted.
func patchUint32(buf *pool.ByteBuffer, at int, v uint32) {
	encoded := primitive.PutUint32(nil, v)
	copy(buf.B[at:at+4], encoded)
}
