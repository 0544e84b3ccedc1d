package record

import (
	"fmt"
	"sort"

	"github.com/recordwire/codec/errs"
	"github.com/recordwire/codec/internal/pool"
	"github.com/recordwire/codec/primitive"
	"github.com/recordwire/codec/schema"
	"github.com/recordwire/codec/varint"
	"github.com/recordwire/codec/vtype"
)

// recordVersion is the only record format version this codec understands
// (spec §4.4; other versions are a Non-goal).
const recordVersion = 0x00

// EncodeDocument encodes d as a top-level record: a version byte followed
// by the class prefix, header, and data regions of spec §4.4.
func EncodeDocument(d Document, opts ...EncodeOption) ([]byte, error) {
	cfg, err := newEncodeConfig(opts...)
	if err != nil {
		return nil, err
	}

	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	buf.MustWriteByte(recordVersion)

	if err := encodeDocumentBody(buf, d, cfg, 0); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeDocument decodes a top-level record produced by EncodeDocument.
// sch resolves property-reference header entries; it may be nil if the
// caller knows the document was encoded with named-field entries only.
func DecodeDocument(data []byte, sch schema.Schema, opts ...DecodeOption) (Document, error) {
	cfg, err := newDecodeConfig(opts...)
	if err != nil {
		return Document{}, err
	}

	if len(data) < 1 {
		return Document{}, fmt.Errorf("%w: expected 1 byte for version", errs.ErrTruncatedInput)
	}

	if data[0] != recordVersion {
		return Document{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedRecordVersion, data[0])
	}

	d, _, err := decodeDocumentBody(data[1:], sch, cfg, 0)
	return d, err
}

// headerEntry is one resolved header entry, named-field or property
// reference alike, ready for body placement in either direction.
type headerEntry struct {
	name        string
	tag         vtype.Tag
	value       *Value // encode only; nil for null fields
	placeholder int    // encode only: position of the 4-byte offset field
	offset      uint32 // decode only: the offset read from the wire
}

// encodeDocumentBody writes d's class prefix, header, and data regions,
// without a leading version byte. recordStart (buf.Len() at entry) is the
// zero-point offsets are measured from: the first byte after the version
// byte for a top-level document, the embedded body start for a nested one.
func encodeDocumentBody(buf *pool.ByteBuffer, d Document, cfg *EncodeConfig, depth int) error {
	recordStart := buf.Len()

	encodeClassPrefix(buf, d.Class)

	names := make([]string, 0, len(d.Fields))
	for name := range d.Fields {
		names = append(names, name)
	}
	if cfg.sortedKeys {
		sort.Strings(names)
	}

	entries := make([]headerEntry, 0, len(names))
	for _, name := range names {
		v := d.Fields[name]

		tag := vtype.Tag(0)
		if v != nil {
			tag = v.tag
		}

		if propID, _, ok := lookupProperty(cfg, name); ok {
			buf.B = varint.AppendZigZag64(buf.B, -(int64(propID) + 1))
			placeholder := buf.Len()
			buf.B = primitive.PutUint32(buf.B, 0)
			entries = append(entries, headerEntry{name: name, tag: tag, value: v, placeholder: placeholder})
			continue
		}

		if name == "" {
			return errEmptyFieldName
		}

		buf.B = varint.AppendZigZag64(buf.B, int64(len(name)))
		buf.MustWrite([]byte(name))
		placeholder := buf.Len()
		buf.B = primitive.PutUint32(buf.B, 0)
		buf.MustWriteByte(byte(tag))

		entries = append(entries, headerEntry{name: name, tag: tag, value: v, placeholder: placeholder})
	}

	buf.B = varint.AppendZigZag64(buf.B, 0) // header terminator

	for _, e := range entries {
		if e.value == nil {
			continue
		}

		offset := buf.Len() - recordStart
		if err := encodeBody(buf, *e.value, cfg, depth+1); err != nil {
			return err
		}

		patchUint32(buf, e.placeholder, uint32(offset)) //nolint:gosec
	}

	return nil
}

// lookupProperty reports whether name has a registered property under the
// encoder's configured schema, enabling a property-reference header entry.
func lookupProperty(cfg *EncodeConfig, name string) (int32, schema.Property, bool) {
	if cfg.propertySchema == nil {
		return 0, schema.Property{}, false
	}

	return cfg.propertySchema.PropertyByName(name)
}

// encodeClassPrefix writes the ZigZag-varint length-prefixed class name,
// or a single 0x01 byte (ZigZag of -1) when class is absent.
func encodeClassPrefix(buf *pool.ByteBuffer, class *string) {
	if class == nil {
		buf.B = varint.AppendZigZag64(buf.B, -1)
		return
	}

	buf.B = primitive.PutString(buf.B, *class)
}

// decodeDocumentBody parses the class prefix, header, and data regions
// starting at data[0], returning the decoded document and the number of
// bytes consumed.
func decodeDocumentBody(data []byte, sch schema.Schema, cfg *DecodeConfig, depth int) (Document, int, error) {
	n := 0

	class, cn, err := decodeClassPrefix(data)
	if err != nil {
		return Document{}, 0, err
	}
	n += cn

	entries := make([]headerEntry, 0)
	for {
		length, ln, err := varint.ZigZag64(data[n:])
		if err != nil {
			return Document{}, 0, err
		}
		n += ln

		if length == 0 {
			break
		}

		if length > 0 {
			nameLen := int(length)
			if n+nameLen > len(data) {
				return Document{}, 0, fmt.Errorf("%w: expected %d bytes for field name", errs.ErrTruncatedInput, nameLen)
			}
			name := string(data[n : n+nameLen])
			n += nameLen

			offset, err := primitive.Uint32(data[n:])
			if err != nil {
				return Document{}, 0, err
			}
			n += 4

			if n >= len(data) {
				return Document{}, 0, fmt.Errorf("%w: expected 1 byte for field type tag", errs.ErrTruncatedInput)
			}
			tag := vtype.Tag(data[n])
			n++

			entries = append(entries, headerEntry{name: name, tag: tag, offset: offset})
			continue
		}

		propID := int32(-length - 1) //nolint:gosec

		offset, err := primitive.Uint32(data[n:])
		if err != nil {
			return Document{}, 0, err
		}
		n += 4

		if sch == nil {
			return Document{}, 0, fmt.Errorf("%w: %d (no schema supplied)", errs.ErrUnknownProperty, propID)
		}

		prop, ok := sch.Property(propID)
		if !ok {
			return Document{}, 0, fmt.Errorf("%w: %d", errs.ErrUnknownProperty, propID)
		}

		entries = append(entries, headerEntry{name: prop.Name, tag: prop.Type, offset: offset})
	}

	headerEnd := n
	maxEnd := headerEnd
	fields := make(ValueMap, len(entries))

	for _, e := range entries {
		if e.offset == 0 {
			fields[e.name] = nil
			continue
		}

		start := int(e.offset)
		if start >= len(data) {
			return Document{}, 0, errs.ErrOffsetOutOfRange
		}

		v, vn, err := decodeBody(e.tag, data[start:], cfg, depth+1)
		if err != nil {
			return Document{}, 0, err
		}

		vv := v
		fields[e.name] = &vv

		if end := start + vn; end > maxEnd {
			maxEnd = end
		}
	}

	doc := Document{Fields: fields}
	if class != nil {
		doc.Class = class
	}

	return doc, maxEnd, nil
}

// decodeClassPrefix parses the class prefix at the start of data,
// returning the class name (nil if absent) and bytes consumed.
func decodeClassPrefix(data []byte) (*string, int, error) {
	length, n, err := varint.ZigZag64(data)
	if err != nil {
		return nil, 0, err
	}

	if length == -1 {
		return nil, n, nil
	}

	if length < -1 {
		return nil, 0, fmt.Errorf("%w: negative class prefix length %d", errs.ErrTruncatedInput, length)
	}

	end := n + int(length)
	if end > len(data) {
		return nil, 0, fmt.Errorf("%w: expected %d bytes for class name", errs.ErrTruncatedInput, length)
	}

	name := string(data[n:end])

	return &name, end, nil
}
