// Package varint implements the unsigned LEB128 varint codec and the
// ZigZag signed/unsigned mapping used throughout the record wire format.
//
// Small integers -- lengths, counts, header offsets-into-varint-space, and
// most scalar integers in records -- are ZigZag-mapped to unsigned, then
// varint-encoded. Fixed-width integers (used for header offsets and a few
// primitive kinds) are handled by the sibling primitive package.
package varint

import "github.com/recordwire/codec/errs"

// MaxVarIntLen is the maximum number of bytes a 64-bit varint can occupy.
const MaxVarIntLen = 10

// AppendUvarint appends the LEB128 encoding of v to buf and returns the
// extended slice.
func AppendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

// UvarintLen returns the number of bytes AppendUvarint would write for v,
// without allocating.
func UvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		n++
		v >>= 7
	}

	return n
}

// Uvarint decodes an unsigned LEB128 varint from the start of data.
// It returns the decoded value and the number of bytes consumed.
//
// It fails with errs.ErrMalformedVarInt if data is truncated before a
// terminating byte is found, or if the 10th byte still carries the
// continuation bit (which would overflow 64 bits).
func Uvarint(data []byte) (uint64, int, error) {
	var v uint64
	var shift uint

	for i := 0; i < MaxVarIntLen; i++ {
		if i >= len(data) {
			return 0, 0, errs.ErrMalformedVarInt
		}

		b := data[i]
		if i == MaxVarIntLen-1 && b&0x80 != 0 {
			return 0, 0, errs.ErrMalformedVarInt
		}

		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}

		shift += 7
	}

	return 0, 0, errs.ErrMalformedVarInt
}

// ZigZagEncode64 maps a signed 64-bit integer to its ZigZag unsigned form:
// n -> (n << 1) ^ (n >> 63).
func ZigZagEncode64(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63) //nolint:gosec
}

// ZigZagDecode64 inverts ZigZagEncode64.
func ZigZagDecode64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}

// ZigZagEncode32 is the 32-bit analogue of ZigZagEncode64.
func ZigZagEncode32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31) //nolint:gosec
}

// ZigZagDecode32 inverts ZigZagEncode32.
func ZigZagDecode32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1) //nolint:gosec
}

// ZigZagEncode16 is the 16-bit analogue of ZigZagEncode64.
func ZigZagEncode16(n int16) uint16 {
	return uint16(n<<1) ^ uint16(n>>15) //nolint:gosec
}

// ZigZagDecode16 inverts ZigZagEncode16.
func ZigZagDecode16(u uint16) int16 {
	return int16(u>>1) ^ -int16(u&1) //nolint:gosec
}

// AppendZigZag64 ZigZag-maps n then varint-appends it to buf.
func AppendZigZag64(buf []byte, n int64) []byte {
	return AppendUvarint(buf, ZigZagEncode64(n))
}

// ZigZag64 decodes a ZigZag-varint signed 64-bit integer from the start of
// data, returning the value and bytes consumed.
func ZigZag64(data []byte) (int64, int, error) {
	u, n, err := Uvarint(data)
	if err != nil {
		return 0, 0, err
	}

	return ZigZagDecode64(u), n, nil
}
