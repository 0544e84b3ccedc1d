package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.MustWrite([]byte("hello"))
	bb.MustWriteByte(' ')
	bb.MustWrite([]byte("world"))

	require.Equal(t, "hello world", string(bb.Bytes()))
	require.Equal(t, 11, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 11)
}

func TestByteBufferSliceAndSetLength(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("abcdefgh"))

	require.Equal(t, []byte("cde"), bb.Slice(2, 5))

	bb.SetLength(3)
	require.Equal(t, "abc", string(bb.Bytes()))

	require.Panics(t, func() { bb.Slice(-1, 2) })
	require.Panics(t, func() { bb.SetLength(-1) })
}

func TestByteBufferExtend(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("ab"))

	ok := bb.Extend(2)
	require.True(t, ok)
	require.Equal(t, 4, bb.Len())

	bb.ExtendOrGrow(100)
	require.Equal(t, 104, bb.Len())
}

func TestByteBufferPoolRoundTrip(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))

	p.Put(bb)

	reused := p.Get()
	require.Equal(t, 0, reused.Len())
}

func TestByteBufferPoolDiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := NewByteBuffer(64)
	p.Put(bb)

	// The oversized buffer was discarded rather than recycled; Get should
	// hand back a fresh buffer sized by New, not the discarded one.
	got := p.Get()
	require.Equal(t, 4, got.Cap())
}

func TestRecordBufferPool(t *testing.T) {
	bb := GetRecordBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("record"))
	PutRecordBuffer(bb)
}
