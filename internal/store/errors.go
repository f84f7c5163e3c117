package store

import "errors"

var (
	// ErrValidation is returned by AddRoom when the id is already taken.
	ErrValidation = errors.New("validation error")
)
