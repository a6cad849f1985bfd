package repositories

import "errors"

var (
	// ErrNotFound is returned when no row matches the tenant and key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("record already exists")
)
