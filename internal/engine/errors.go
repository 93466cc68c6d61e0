package engine

import "errors"

// Closed set of engine error kinds. The HTTP layer maps these to status
// codes; everything else wraps them with context via fmt.Errorf and %w.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrMissingField = errors.New("missing required field")
	ErrValidation   = errors.New("validation failed")
)
