package gfa

import "errors"

var (
	// ErrInvalidOrientation is returned when an orientation is anything other than "+" or "-"
	ErrInvalidOrientation = errors.New("invalid orientation")

	// ErrMalformedValue is returned when an optional field's text doesn't match its type's grammar
	ErrMalformedValue = errors.New("malformed optional field value")

	// ErrMalformedPathToken is returned for a path step without a name or an orientation marker
	ErrMalformedPathToken = errors.New("malformed path segment token")

	// ErrUnknownTypeCode is returned for an optional field type outside of A, i, f, Z, J, H and B
	ErrUnknownTypeCode = errors.New("unknown optional field type code")

	// ErrUnknownRecord is returned for a line whose record type isn't H, S, L, C, P or #
	ErrUnknownRecord = errors.New("unknown record type")

	// ErrMissingField is returned when a record has fewer positional fields than its type requires
	ErrMissingField = errors.New("missing mandatory field")
)
