package core

import "errors"

// Common errors.
var (
	ErrClosed     = errors.New("controller is closed")
	ErrBadPattern = errors.New("invalid match pattern")
)
