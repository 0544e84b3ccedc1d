// Package primitive implements the fixed-width and length-prefixed
// primitive term codecs shared by the value, document, and envelope
// codecs: big-endian fixed-width integers and IEEE-754 floats,
// length-prefixed byte strings, and single-byte booleans, per spec §4.2.
package primitive

import (
	"fmt"
	"math"

	"github.com/recordwire/codec/endian"
	"github.com/recordwire/codec/errs"
	"github.com/recordwire/codec/varint"
)

var be = endian.GetBigEndianEngine()

// PutShort appends a 2-byte big-endian signed short to buf.
func PutShort(buf []byte, v int16) []byte {
	return be.AppendUint16(buf, uint16(v)) //nolint:gosec
}

// Short reads a 2-byte big-endian signed short from the start of data.
func Short(data []byte) (int16, error) {
	if len(data) < 2 {
		return 0, truncated(2, "short")
	}

	return int16(be.Uint16(data)), nil //nolint:gosec
}

// PutInt appends a 4-byte big-endian signed int to buf.
func PutInt(buf []byte, v int32) []byte {
	return be.AppendUint32(buf, uint32(v)) //nolint:gosec
}

// Int reads a 4-byte big-endian signed int from the start of data.
func Int(data []byte) (int32, error) {
	if len(data) < 4 {
		return 0, truncated(4, "int")
	}

	return int32(be.Uint32(data)), nil //nolint:gosec
}

// PutLong appends an 8-byte big-endian signed long to buf.
func PutLong(buf []byte, v int64) []byte {
	return be.AppendUint64(buf, uint64(v)) //nolint:gosec
}

// Long reads an 8-byte big-endian signed long from the start of data.
func Long(data []byte) (int64, error) {
	if len(data) < 8 {
		return 0, truncated(8, "long")
	}

	return int64(be.Uint64(data)), nil //nolint:gosec
}

// PutFloat32 appends a 4-byte big-endian IEEE-754 float to buf.
func PutFloat32(buf []byte, v float32) []byte {
	return be.AppendUint32(buf, math.Float32bits(v))
}

// Float32 reads a 4-byte big-endian IEEE-754 float from the start of data.
func Float32(data []byte) (float32, error) {
	if len(data) < 4 {
		return 0, truncated(4, "float")
	}

	return math.Float32frombits(be.Uint32(data)), nil
}

// PutFloat64 appends an 8-byte big-endian IEEE-754 double to buf.
func PutFloat64(buf []byte, v float64) []byte {
	return be.AppendUint64(buf, math.Float64bits(v))
}

// Float64 reads an 8-byte big-endian IEEE-754 double from the start of data.
func Float64(data []byte) (float64, error) {
	if len(data) < 8 {
		return 0, truncated(8, "double")
	}

	return math.Float64frombits(be.Uint64(data)), nil
}

// PutUint32 appends a 4-byte big-endian unsigned int to buf. Used for header
// offsets and other wire fields that are unsigned on the wire.
func PutUint32(buf []byte, v uint32) []byte {
	return be.AppendUint32(buf, v)
}

// Uint32 reads a 4-byte big-endian unsigned int from the start of data.
func Uint32(data []byte) (uint32, error) {
	if len(data) < 4 {
		return 0, truncated(4, "uint32")
	}

	return be.Uint32(data), nil
}

// PutBool appends a single boolean byte (0x00 false, 0x01 true) to buf.
func PutBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 0x01)
	}

	return append(buf, 0x00)
}

// Bool reads a single boolean byte from the start of data. Any byte other
// than 0x00 or 0x01 is rejected with errs.ErrInvalidBoolean.
func Bool(data []byte) (bool, error) {
	if len(data) < 1 {
		return false, truncated(1, "boolean")
	}

	switch data[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidBoolean, data[0])
	}
}

// PutBytes appends a ZigZag-varint length prefix followed by raw bytes to buf.
func PutBytes(buf []byte, v []byte) []byte {
	buf = varint.AppendZigZag64(buf, int64(len(v)))
	return append(buf, v...)
}

// Bytes reads a length-prefixed byte string from the start of data,
// returning the bytes and the total bytes consumed (prefix + body).
func Bytes(data []byte) ([]byte, int, error) {
	length, n, err := varint.ZigZag64(data)
	if err != nil {
		return nil, 0, err
	}

	if length < 0 {
		return nil, 0, fmt.Errorf("%w: negative length %d", errs.ErrTruncatedInput, length)
	}

	end := n + int(length)
	if end > len(data) {
		return nil, 0, truncated(int(length), "byte string")
	}

	return data[n:end], end, nil
}

// PutString appends a ZigZag-varint length prefix followed by UTF-8 bytes.
func PutString(buf []byte, v string) []byte {
	return PutBytes(buf, []byte(v))
}

// String reads a length-prefixed UTF-8 string from the start of data,
// returning the string and total bytes consumed.
func String(data []byte) (string, int, error) {
	raw, n, err := Bytes(data)
	if err != nil {
		return "", 0, err
	}

	if !utf8Valid(raw) {
		return "", 0, errs.ErrInvalidUTF8
	}

	return string(raw), n, nil
}

func truncated(expected int, kind string) error {
	return fmt.Errorf("%w: expected %d bytes for %s", errs.ErrTruncatedInput, expected, kind)
}
