package record

import (
	"github.com/recordwire/codec/internal/options"
	"github.com/recordwire/codec/schema"
)

// defaultMaxDepth bounds embedded document/collection recursion to guard
// against stack exhaustion on pathological input (spec §9 design note).
const defaultMaxDepth = 64

// EncodeConfig holds the encoder's configurable behavior. The default
// configuration, as built by newEncodeConfig before options apply, is:
// unspecified map-key order, defaultMaxDepth recursion limit, no
// property-reference compression.
type EncodeConfig struct {
	sortedKeys     bool
	maxDepth       int
	propertySchema schema.NameIndex
}

func newEncodeConfig(opts ...options.Option[*EncodeConfig]) (*EncodeConfig, error) {
	cfg := &EncodeConfig{maxDepth: defaultMaxDepth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EncodeOption configures EncodeDocument/EncodeValue.
type EncodeOption = options.Option[*EncodeConfig]

// WithSortedKeys emits document and embedded-map fields in sorted key
// order. The wire format never mandates an order (spec §9 open question);
// this option exists purely so test fixtures and golden files are
// reproducible byte-for-byte.
func WithSortedKeys() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.sortedKeys = true
	})
}

// WithPropertySchema enables property-reference header entries (spec §4.4
// "Property reference") for any document field whose name matches a
// property registered in sch. Fields with no match are still emitted as
// named-field entries.
func WithPropertySchema(sch schema.NameIndex) EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.propertySchema = sch
	})
}

// WithMaxDepth overrides the recursion depth limit for nested embedded
// documents and collections.
func WithMaxDepth(n int) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if n <= 0 {
			return errDepthMustBePositive
		}
		cfg.maxDepth = n

		return nil
	})
}

// DecodeConfig holds the decoder's configurable behavior.
type DecodeConfig struct {
	maxDepth int
}

func newDecodeConfig(opts ...options.Option[*DecodeConfig]) (*DecodeConfig, error) {
	cfg := &DecodeConfig{maxDepth: defaultMaxDepth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DecodeOption configures DecodeDocument/DecodeValue.
type DecodeOption = options.Option[*DecodeConfig]

// WithDecodeMaxDepth overrides the recursion depth limit applied while
// decoding nested embedded documents and collections.
func WithDecodeMaxDepth(n int) DecodeOption {
	return options.New(func(cfg *DecodeConfig) error {
		if n <= 0 {
			return errDepthMustBePositive
		}
		cfg.maxDepth = n

		return nil
	})
}
