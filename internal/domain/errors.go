package domain

import "errors"

// Common errors
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id format")
)
