package domain

import "errors"

var (
	ErrOutOfRange      = errors.New("slide index out of range")
	ErrSessionNotFound = errors.New("session not found")
)
