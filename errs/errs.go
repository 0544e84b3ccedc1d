// Package errs defines the sentinel error taxonomy signalled by the record
// serialization core. Most errors the core produces are one of these
// sentinels, returned bare or wrapped via fmt.Errorf("%w: ...", errs.ErrX,
// ...), so callers can use errors.Is for classification. Invalid encode or
// decode options, an empty field name on encode, and a negative decimal
// scale on decode are reported with errors outside this package.
package errs

import "errors"

var (
	// ErrUnsupportedRecordVersion is returned when a record's leading version
	// byte is not 0, the only version this core understands.
	ErrUnsupportedRecordVersion = errors.New("unsupported record version")

	// ErrMalformedVarInt is returned when a varint is truncated or exceeds
	// the maximum 10-byte width for a 64-bit value.
	ErrMalformedVarInt = errors.New("malformed varint")

	// ErrUnknownType is returned when a value type tag is outside the
	// defined tag set.
	ErrUnknownType = errors.New("unknown value type tag")

	// ErrUnknownProperty is returned when a header property reference names
	// a global property id absent from the supplied schema.
	ErrUnknownProperty = errors.New("unknown schema property")

	// ErrTreeLinkBagUnsupported is returned when a link-bag's discriminator
	// byte indicates the tree-based form.
	ErrTreeLinkBagUnsupported = errors.New("tree-based link bags are not supported")

	// ErrTruncatedInput is returned when there are not enough bytes remaining
	// to satisfy a fixed-width or length-prefixed read.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidUTF8 is returned when a string body is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 in string body")

	// ErrInvalidBoolean is returned when a boolean body byte is outside {0,1}.
	ErrInvalidBoolean = errors.New("invalid boolean byte")

	// ErrOffsetOutOfRange is returned when a header offset points outside
	// the bounds of the record being decoded.
	ErrOffsetOutOfRange = errors.New("offset out of record range")

	// ErrRecursionLimitExceeded is returned when nested embedded
	// documents/collections exceed the defensive recursion depth limit.
	// This guards against stack exhaustion on pathological input; it is not
	// part of the wire contract.
	ErrRecursionLimitExceeded = errors.New("recursion limit exceeded")
)
