package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
