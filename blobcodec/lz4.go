package blobcodec

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; they hold internal
// match-finding state that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses with LZ4 block compression. LZ4's block format
// carries no decompressed-size header of its own, so Compress frames its
// output with one (see frame/unframe in codec.go) rather than having
// Decompress guess a destination size and retry on overflow.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return frame(len(data), dst[:n]), nil
}

func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	originalLen, body, err := unframe(data)
	if err != nil {
		return nil, err
	}

	if originalLen == 0 {
		return nil, nil
	}

	dst := make([]byte, originalLen)

	n, err := lz4.UncompressBlock(body, dst)
	if err != nil {
		return nil, fmt.Errorf("blobcodec: lz4 decompress: %w", err)
	}

	if n != originalLen {
		return nil, fmt.Errorf("blobcodec: lz4 decompress: got %d bytes, frame claimed %d", n, originalLen)
	}

	return dst, nil
}
