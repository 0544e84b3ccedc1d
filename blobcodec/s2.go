package blobcodec

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Codec compresses with S2, klauspost/compress's Snappy-compatible
// extension tuned for speed over ratio. s2's own stream format already
// carries a decompressed-length varint, but this codec reframes it with
// the package's shared frame/unframe so every algorithm in the package
// exposes the same on-disk shape and Decompress can pre-size its
// destination slice in one allocation instead of letting s2.Decode grow
// one internally.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return frame(len(data), s2.Encode(nil, data)), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	originalLen, body, err := unframe(data)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, originalLen)

	out, err := s2.Decode(dst, body)
	if err != nil {
		return nil, fmt.Errorf("blobcodec: s2 decompress: %w", err)
	}

	return out, nil
}
