package core

import "errors"

var (
	// ErrInvalidData marks malformed annotation input: missing required
	// keys, non-object entries or mistyped JSON values.
	ErrInvalidData = errors.New("invalid annotation data")

	// ErrInvalidValue marks semantically invalid annotation content found
	// during validation.
	ErrInvalidValue = errors.New("invalid attribute value")

	// ErrColumnNotFound is returned by name lookups on the column list.
	ErrColumnNotFound = errors.New("column not found")
)
