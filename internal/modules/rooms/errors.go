package rooms

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrDuplicateID = errors.New("room id already exists")
	ErrNotFound    = errors.New("room not found")
)
