package control

import "errors"

var (
	// ErrAsyncValidation is returned when an asynchronous validator fails to
	// produce a result (as opposed to reporting validation errors).
	ErrAsyncValidation = errors.New("async validator failed")

	// ErrUnknownChild is returned by lookups for a child that does not exist.
	ErrUnknownChild = errors.New("unknown child control")
)
