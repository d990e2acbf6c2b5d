package service

import "errors"

var (
	// ErrInvalidDataProvided is returned by the validation wrapper when a
	// request shape violates its preconditions (blank required field,
	// out-of-range length, unknown role, present-but-blank patch field).
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
