package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyPaid     = errors.New("already paid")
	ErrNotConfigured   = errors.New("gateway not configured")
	ErrChecksum        = errors.New("checksum mismatch")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)
