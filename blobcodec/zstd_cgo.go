//go:build cgo

package blobcodec

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// ZstdCodec compresses with Zstandard via cgo-backed gozstd, which
// typically outperforms the pure Go decoder at the cost of a cgo
// dependency. See zstd_pure.go for the !cgo fallback. Output is framed
// with the original length (codec.go's frame/unframe) so Decompress can
// hand gozstd a pre-sized destination slice instead of letting it grow
// one internally on every call.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return frame(len(data), gozstd.CompressLevel(nil, data, 3)), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	originalLen, body, err := unframe(data)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, 0, originalLen)

	out, err := gozstd.Decompress(dst, body)
	if err != nil {
		return nil, fmt.Errorf("blobcodec: zstd decompress: %w", err)
	}

	return out, nil
}
