package store

import "fmt"

var (
	// ErrClosed is returned when any operation is attempted on a store
	// whose Close has already run.
	ErrClosed = fmt.Errorf("store is closed")

	// ErrNoTarget is returned when an untargeted Comment or Tag is called
	// before anything was saved in this session.
	ErrNoTarget = fmt.Errorf("nothing saved in this session")
)
