package repository

import "errors"

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateKey means an insert violated a unique constraint.
	ErrDuplicateKey = errors.New("repository: duplicate key")
)
