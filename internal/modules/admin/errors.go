package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfirmed       = errors.New("reset not confirmed")
)
