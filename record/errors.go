package record

import "errors"

var (
	errDepthMustBePositive = errors.New("record: max depth must be positive")

	// errEmptyFieldName guards the header's named-field length constraint
	// (spec §4.4: "ZigZag-varint length (must be positive)"). A zero-length
	// name would be indistinguishable on the wire from the header
	// terminator.
	errEmptyFieldName = errors.New("record: field name must not be empty")
)
