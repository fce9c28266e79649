package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates the input failed a precondition check.
	ErrValidation = errors.New("validation failed")
)
