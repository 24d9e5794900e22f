package validator

import "errors"

var (
	// ErrInvalidPattern is returned when a pattern cannot be compiled.
	ErrInvalidPattern = errors.New("invalid validation pattern")
)
