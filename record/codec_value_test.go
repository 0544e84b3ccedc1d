package record

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recordwire/codec/errs"
	"github.com/recordwire/codec/internal/pool"
	"github.com/recordwire/codec/types"
)

func encodeValueBytes(t *testing.T, v Value, opts ...EncodeOption) []byte {
	t.Helper()

	buf := pool.NewByteBuffer(64)
	require.NoError(t, EncodeValue(buf, v, opts...))

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

func TestValueRoundTrip(t *testing.T) {
	rid1 := types.RID{ClusterID: 1, Position: 22}
	rid2 := types.RID{ClusterID: 9, Position: 14}
	dec, err := types.DecimalFromString("-123.456")
	require.NoError(t, err)

	cases := []Value{
		BoolValue(true),
		BoolValue(false),
		IntValue(12),
		IntValue(-1),
		ShortValue(7),
		LongValue(1 << 40),
		FloatValue(3.5),
		DoubleValue(2.71828),
		StringValue("world!"),
		StringValue(""),
		BinaryValue([]byte{0x01, 0x02, 0x03}),
		DateTimeValue(types.DateTimeFromUnixMilli(1700000000000)),
		DateValue(types.DateFromEpochDays(19500)),
		DecimalValue(dec),
		LinkValue(rid1),
		LinkListValue(types.LinkList{rid1, rid2}),
		LinkSetValue(types.LinkSetOf([]types.RID{rid1, rid2, rid1})),
		LinkMapValue(types.LinkMap{"a": rid1, "b": rid2}),
		LinkBagValue(types.LinkBag{rid1, rid2}),
		EmbeddedDocumentValue(NewDocument().WithClass("nested").Set("n", IntValue(1))),
		EmbeddedListValue([]Value{StringValue("elem"), BoolValue(true)}),
		EmbeddedSetValue(ValueSetOf([]Value{IntValue(1), IntValue(2), IntValue(1)})),
		EmbeddedMapValue(ValueMap{"k": ptrValue(StringValue("v"))}),
	}

	for _, v := range cases {
		encoded := encodeValueBytes(t, v, WithSortedKeys())

		decoded, rest, err := DecodeValue(encoded, WithDecodeMaxDepth(8))
		require.NoError(t, err)
		require.Empty(t, rest)
		require.True(t, Equal(v, decoded), "round trip mismatch for tag %v", v.Tag())
	}
}

func ptrValue(v Value) *Value {
	return &v
}

func TestEmbeddedListFixture(t *testing.T) {
	// spec §8 scenario 5: ["elem", true]
	want := []byte{0x04, 0x17, 0x07, 0x08, 0x65, 0x6C, 0x65, 0x6D, 0x00, 0x01}

	buf := pool.NewByteBuffer(32)
	cfg, err := newEncodeConfig()
	require.NoError(t, err)

	err = encodeEmbeddedSequenceBody(buf, []Value{StringValue("elem"), BoolValue(true)}, cfg, 0)
	require.NoError(t, err)
	require.Equal(t, want, buf.Bytes())

	dcfg, err := newDecodeConfig()
	require.NoError(t, err)

	vs, n, err := decodeEmbeddedSequenceBody(want, dcfg, 0)
	require.NoError(t, err)
	require.Equal(t, len(want), n)
	require.Len(t, vs, 2)

	s, ok := vs[0].AsString()
	require.True(t, ok)
	require.Equal(t, "elem", s)

	b, ok := vs[1].AsBool()
	require.True(t, ok)
	require.True(t, b)
}

func TestLinkBagFixture(t *testing.T) {
	// spec §8 scenario 6: link_bag[(1,22),(9,14)]
	want := []byte{
		0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x16,
		0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0E,
	}

	bag := types.LinkBag{
		{ClusterID: 1, Position: 22},
		{ClusterID: 9, Position: 14},
	}

	buf := pool.NewByteBuffer(32)
	encodeLinkBagBody(buf, bag)
	require.Equal(t, want, buf.Bytes())

	decoded, n, err := decodeLinkBagBody(want)
	require.NoError(t, err)
	require.Equal(t, len(want), n)

	got, ok := decoded.AsLinkBag()
	require.True(t, ok)
	require.Equal(t, bag, got)
}

func TestLinkBagRejectsTreeForm(t *testing.T) {
	_, _, err := decodeLinkBagBody([]byte{0x02, 0x00, 0x00, 0x00, 0x00})
	require.ErrorIs(t, err, errs.ErrTreeLinkBagUnsupported)
}

func TestDecimalFixedPrecision(t *testing.T) {
	dec, err := types.DecimalFromString("-123.456")
	require.NoError(t, err)

	buf := pool.NewByteBuffer(32)
	encodeDecimalBody(buf, dec)

	decoded, n, err := decodeDecimalBody(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)

	got, ok := decoded.AsDecimal()
	require.True(t, ok)
	require.True(t, dec.Equal(got))
}

func TestEmbeddedMapOffsets(t *testing.T) {
	m := ValueMap{
		"a": ptrValue(IntValue(1)),
		"b": nil,
		"c": ptrValue(StringValue("hi")),
	}

	cfg, err := newEncodeConfig(WithSortedKeys())
	require.NoError(t, err)

	buf := pool.NewByteBuffer(64)
	require.NoError(t, encodeEmbeddedMapBody(buf, m, cfg, 0))

	dcfg, err := newDecodeConfig()
	require.NoError(t, err)

	decoded, n, err := decodeEmbeddedMapBody(buf.Bytes(), dcfg, 0)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.Len(t, decoded, 3)
	require.Nil(t, decoded["b"])

	a, ok := decoded["a"].AsInt()
	require.True(t, ok)
	require.Equal(t, int32(1), a)

	c, ok := decoded["c"].AsString()
	require.True(t, ok)
	require.Equal(t, "hi", c)
}

func TestRecursionLimitExceeded(t *testing.T) {
	inner := EmbeddedDocumentValue(NewDocument())
	for i := 0; i < 5; i++ {
		inner = EmbeddedDocumentValue(NewDocument().Set("child", inner))
	}

	buf := pool.NewByteBuffer(256)
	err := EncodeValue(buf, inner, WithMaxDepth(2))
	require.Error(t, err)
}
