package repositories

import (
	"errors"
)

var (
	// ErrNotFound is returned by every repository when the requested record
	// does not exist.
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)
