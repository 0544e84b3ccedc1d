package varint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recordwire/codec/errs"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, math.MaxUint32, math.MaxUint64}

	for _, v := range values {
		buf := AppendUvarint(nil, v)
		require.LessOrEqual(t, len(buf), MaxVarIntLen)
		require.Equal(t, len(buf), UvarintLen(v))

		got, n, err := Uvarint(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestUvarintTruncated(t *testing.T) {
	buf := AppendUvarint(nil, 1<<20)
	_, _, err := Uvarint(buf[:1])
	require.ErrorIs(t, err, errs.ErrMalformedVarInt)
}

func TestUvarintOverlong(t *testing.T) {
	// 10 bytes, all with continuation bit set: malformed.
	buf := make([]byte, MaxVarIntLen)
	for i := range buf {
		buf[i] = 0xFF
	}
	_, _, err := Uvarint(buf)
	require.Error(t, err)
}

func TestZigZag64RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, math.MaxInt64, math.MinInt64, 12}

	for _, v := range values {
		u := ZigZagEncode64(v)
		require.Equal(t, v, ZigZagDecode64(u))
	}
}

func TestZigZag64KnownEncodings(t *testing.T) {
	require.Equal(t, uint64(0), ZigZagEncode64(0))
	require.Equal(t, uint64(1), ZigZagEncode64(-1))
	require.Equal(t, uint64(2), ZigZagEncode64(1))
	require.Equal(t, uint64(3), ZigZagEncode64(-2))
	require.Equal(t, uint64(4), ZigZagEncode64(2))
}

func TestZigZag64SpecFixture(t *testing.T) {
	// Spec §8 scenario 3: int value 12 encodes as ZigZag-varint 0x18.
	buf := AppendZigZag64(nil, 12)
	require.Equal(t, []byte{0x18}, buf)

	v, n, err := ZigZag64(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, int64(12), v)
}

func TestZigZag64NegativeOne(t *testing.T) {
	// Spec §4.4: class length -1 (absent class) is a single byte 0x01.
	buf := AppendZigZag64(nil, -1)
	require.Equal(t, []byte{0x01}, buf)
}

func TestZigZag32And16RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		require.Equal(t, v, ZigZagDecode32(ZigZagEncode32(v)))
	}

	for _, v := range []int16{0, 1, -1, math.MaxInt16, math.MinInt16} {
		require.Equal(t, v, ZigZagDecode16(ZigZagEncode16(v)))
	}
}

func TestVarIntBoundedness(t *testing.T) {
	// Property 6: ZigZag-varint of any 64-bit signed integer is <= 10 bytes.
	for _, v := range []int64{math.MaxInt64, math.MinInt64, 0, -1} {
		buf := AppendZigZag64(nil, v)
		require.LessOrEqual(t, len(buf), MaxVarIntLen)
	}
}
