package core

import "errors"

var (
	// ErrNotFound is returned when a requested key, plot version or companion
	// entry does not exist in the underlying container.
	ErrNotFound = errors.New("not found")

	// ErrReadOnly is returned when a write is attempted through a container or
	// store session opened with ModeRead.
	ErrReadOnly = errors.New("read-only container")
)
