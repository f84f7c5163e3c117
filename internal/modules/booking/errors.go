package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrRoomNotFound = errors.New("room not found")
	ErrNotFound     = errors.New("booking not found")
)
