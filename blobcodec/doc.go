// Package blobcodec provides opt-in compression for large binary-kind
// field payloads before they are wrapped in a record.BinaryValue. It is
// explicitly outside the wire contract: the record codec never compresses
// or decompresses automatically, and a decoded binary value's bytes are
// handed back exactly as encoded. Callers who want to shrink a large
// payload compress it themselves before constructing the value, and
// decompress it themselves after decode.
//
// # Algorithms
//
//	codec, err := blobcodec.GetCodec(blobcodec.AlgorithmZstd)
//	compressed, err := codec.Compress(payload)
//	// ... store compressed as a record.BinaryValue field ...
//	original, err := codec.Decompress(compressed)
//
// Three real algorithms plus a pass-through no-op:
//
//   - Zstd: best compression ratio, moderate speed. Built via
//     klauspost/compress/zstd in pure-Go builds, or valyala/gozstd (cgo) when
//     cgo is enabled -- see zstd_pure.go/zstd_cgo.go.
//   - LZ4: fastest decompression, moderate ratio. Built via pierrec/lz4/v4.
//   - S2: Snappy-compatible, tuned for speed over ratio. Built via
//     klauspost/compress/s2.
//   - None (NoOpCodec): returns data unchanged, useful as a uniform Codec
//     value when compression is configured per-field and sometimes disabled.
//
// Package-level CompressZstd/DecompressZstd, CompressLZ4/DecompressLZ4, and
// CompressS2/DecompressS2 are shorthands for GetCodec plus a single call,
// for callers who already know which algorithm they want.
//
// # Framing
//
// Every Codec here other than NoOpCodec turns empty input into empty output
// with no frame, and produces any other output framed as an 8-byte
// big-endian original-length field (written with the same primitive.PutLong
// the record wire format itself uses) followed by the underlying library's
// native compressed bytes. This lets Decompress allocate its destination
// slice exactly once, and gives every algorithm the same on-disk shape
// regardless of whether its own format happens to self-describe length (LZ4
// block mode does not; s2 and zstd do, but are reframed for consistency
// anyway). A corrupted or truncated frame header is rejected before it can
// drive an oversized allocation.
//
// Compressed output is never self-identifying as to *which* algorithm
// produced it -- callers who compress a field must record the Algorithm
// alongside it (in their own schema or an adjacent document field) to
// decompress it later.
package blobcodec
