package primitive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recordwire/codec/errs"
)

func TestFixedWidthRoundTrip(t *testing.T) {
	s := PutShort(nil, -1234)
	got, err := Short(s)
	require.NoError(t, err)
	require.Equal(t, int16(-1234), got)
	require.Len(t, s, 2)

	i := PutInt(nil, -123456789)
	gi, err := Int(i)
	require.NoError(t, err)
	require.Equal(t, int32(-123456789), gi)
	require.Len(t, i, 4)

	l := PutLong(nil, math.MinInt64)
	gl, err := Long(l)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), gl)
	require.Len(t, l, 8)
}

func TestFloatRoundTrip(t *testing.T) {
	f := PutFloat32(nil, 3.25)
	gf, err := Float32(f)
	require.NoError(t, err)
	require.Equal(t, float32(3.25), gf)
	require.Len(t, f, 4)

	d := PutFloat64(nil, -2.5e10)
	gd, err := Float64(d)
	require.NoError(t, err)
	require.Equal(t, -2.5e10, gd)
	require.Len(t, d, 8)
}

func TestBoolRoundTrip(t *testing.T) {
	buf := PutBool(nil, true)
	require.Equal(t, []byte{0x01}, buf)
	v, err := Bool(buf)
	require.NoError(t, err)
	require.True(t, v)

	buf = PutBool(nil, false)
	require.Equal(t, []byte{0x00}, buf)
	v, err = Bool(buf)
	require.NoError(t, err)
	require.False(t, v)
}

func TestBoolInvalid(t *testing.T) {
	_, err := Bool([]byte{0x02})
	require.ErrorIs(t, err, errs.ErrInvalidBoolean)
}

func TestBoolTruncated(t *testing.T) {
	_, err := Bool(nil)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestBytesRoundTrip(t *testing.T) {
	buf := PutBytes(nil, []byte("hello world!"))
	got, n, err := Bytes(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, []byte("hello world!"), got)
}

func TestStringRoundTrip(t *testing.T) {
	buf := PutString(nil, "world!")
	got, n, err := String(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, "world!", got)
}

func TestStringSpecFixture(t *testing.T) {
	// Spec §8 scenario 3: "world!" encodes as 0x0C 77 6F 72 6C 64 21
	buf := PutString(nil, "world!")
	require.Equal(t, []byte{0x0C, 0x77, 0x6F, 0x72, 0x6C, 0x64, 0x21}, buf)
}

func TestStringInvalidUTF8(t *testing.T) {
	raw := PutBytes(nil, []byte{0xff, 0xfe, 0xfd})
	_, _, err := String(raw)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestEmptyString(t *testing.T) {
	buf := PutString(nil, "")
	require.Equal(t, []byte{0x00}, buf)
	got, n, err := String(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "", got)
}

func TestBytesTruncated(t *testing.T) {
	buf := PutBytes(nil, []byte("abcdef"))
	_, _, err := Bytes(buf[:2])
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}
