package blobcodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	return bytes.Repeat([]byte(strings.Repeat("record-wire-payload ", 8)), 4)
}

func TestZstdRoundTrip(t *testing.T) {
	data := testPayload()

	compressed, err := CompressZstd(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data))

	decompressed, err := DecompressZstd(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestLZ4RoundTrip(t *testing.T) {
	data := testPayload()

	compressed, err := CompressLZ4(data)
	require.NoError(t, err)

	decompressed, err := DecompressLZ4(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestS2RoundTrip(t *testing.T) {
	data := testPayload()

	compressed, err := CompressS2(data)
	require.NoError(t, err)

	decompressed, err := DecompressS2(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestEmptyPayload(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmZstd, AlgorithmLZ4, AlgorithmS2} {
		codec, err := GetCodec(alg)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestNoOpCodec(t *testing.T) {
	codec, err := GetCodec(AlgorithmNone)
	require.NoError(t, err)

	data := []byte("pass through")
	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestGetCodecUnknownAlgorithm(t *testing.T) {
	_, err := GetCodec(Algorithm(99))
	require.Error(t, err)
}

func TestDecompressRejectsTruncatedFrameHeader(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmZstd, AlgorithmLZ4, AlgorithmS2} {
		codec, err := GetCodec(alg)
		require.NoError(t, err)

		_, err = codec.Decompress([]byte{0x01, 0x02, 0x03})
		require.Error(t, err)
	}
}

func TestFrameUnframeRoundTrip(t *testing.T) {
	framed := frame(42, []byte("compressed-body"))

	n, body, err := unframe(framed)
	require.NoError(t, err)
	require.Equal(t, 42, n)
	require.Equal(t, []byte("compressed-body"), body)
}

func TestUnframeRejectsImplausibleLength(t *testing.T) {
	framed := frame(-1, []byte("body"))

	_, _, err := unframe(framed)
	require.Error(t, err)
}
