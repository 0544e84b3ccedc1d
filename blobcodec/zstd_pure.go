//go:build !cgo

package blobcodec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders. klauspost/compress/zstd decoders are
// designed for reuse after a warmup; pooling avoids paying that warmup on
// every decompress call.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("blobcodec: failed to create zstd decoder: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("blobcodec: failed to create zstd encoder: %v", err))
		}

		return encoder
	},
}

// ZstdCodec compresses with Zstandard via klauspost/compress/zstd (the pure
// Go build; see zstd_cgo.go for the cgo-backed gozstd variant). Its frame
// (see codec.go) carries the original length alongside zstd's own embedded
// content-size field so Decompress can pre-size the destination slice
// without depending on the encoder having written that field.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return frame(len(data), encoder.EncodeAll(data, nil)), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	originalLen, body, err := unframe(data)
	if err != nil {
		return nil, err
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	dst := make([]byte, 0, originalLen)

	out, err := decoder.DecodeAll(body, dst)
	if err != nil {
		return nil, fmt.Errorf("blobcodec: zstd decompress: %w", err)
	}

	return out, nil
}
