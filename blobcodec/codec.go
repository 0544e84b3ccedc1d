package blobcodec

import (
	"fmt"

	"github.com/recordwire/codec/primitive"
)

// Codec compresses and decompresses a byte payload with one algorithm.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// maxFramedLen bounds the decompressed length a frame header may claim,
// rejecting corrupted or adversarial input before it drives an allocation.
const maxFramedLen = 1 << 32

// frame prepends data's original length to its compressed form as an
// 8-byte big-endian field (reusing primitive's own long encoding, the same
// fixed-width convention the record wire format uses elsewhere). Every
// Codec below other than NoOpCodec wraps its library call with this
// framing, so Decompress always knows the exact destination size up front
// instead of guessing a buffer size and retrying on overflow.
func frame(originalLen int, compressed []byte) []byte {
	out := make([]byte, 0, 8+len(compressed))
	out = primitive.PutLong(out, int64(originalLen))
	out = append(out, compressed...)

	return out
}

// unframe splits a framed payload back into the claimed original length
// and the underlying library's compressed bytes.
func unframe(data []byte) (int, []byte, error) {
	n, err := primitive.Long(data)
	if err != nil {
		return 0, nil, fmt.Errorf("blobcodec: truncated frame header: %w", err)
	}

	if n < 0 || n > maxFramedLen {
		return 0, nil, fmt.Errorf("blobcodec: implausible decompressed length %d", n)
	}

	return int(n), data[8:], nil
}

// Algorithm identifies one of the supported compression algorithms.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = iota
	AlgorithmZstd
	AlgorithmLZ4
	AlgorithmS2
)

// GetCodec returns the built-in Codec for the given algorithm.
func GetCodec(alg Algorithm) (Codec, error) {
	switch alg {
	case AlgorithmNone:
		return NoOpCodec{}, nil
	case AlgorithmZstd:
		return ZstdCodec{}, nil
	case AlgorithmLZ4:
		return LZ4Codec{}, nil
	case AlgorithmS2:
		return S2Codec{}, nil
	default:
		return nil, fmt.Errorf("blobcodec: unsupported algorithm %d", alg)
	}
}

// NoOpCodec returns data unchanged. Useful as a uniform Codec when a
// caller's configuration makes compression optional per field.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }

// CompressZstd compresses data with Zstandard.
func CompressZstd(data []byte) ([]byte, error) { return ZstdCodec{}.Compress(data) }

// DecompressZstd decompresses Zstandard-compressed data.
func DecompressZstd(data []byte) ([]byte, error) { return ZstdCodec{}.Decompress(data) }

// CompressLZ4 compresses data with LZ4.
func CompressLZ4(data []byte) ([]byte, error) { return LZ4Codec{}.Compress(data) }

// DecompressLZ4 decompresses LZ4-compressed data.
func DecompressLZ4(data []byte) ([]byte, error) { return LZ4Codec{}.Decompress(data) }

// CompressS2 compresses data with S2.
func CompressS2(data []byte) ([]byte, error) { return S2Codec{}.Compress(data) }

// DecompressS2 decompresses S2-compressed data.
func DecompressS2(data []byte) ([]byte, error) { return S2Codec{}.Decompress(data) }
