package core

// OpenMode selects how a container location is opened.
type OpenMode string

const (
	// ModeUpdate opens an existing container, or creates an empty one, keeping
	// every previously stored entry. This is the default for write sessions.
	ModeUpdate OpenMode = "update"

	// ModeCreate starts a fresh container, discarding any existing content at
	// the same location.
	ModeCreate OpenMode = "create"

	// ModeRead opens an existing container for reading only. Opening fails if
	// the container does not exist, and writes through the handle are refused
	// with ErrReadOnly.
	ModeRead OpenMode = "read"
)

// Container is the persistence collaborator the version store writes through.
// The store treats keys as opaque strings and values as opaque blobs it never
// parses or renders.
//
// Contract:
//   - Put stores (or overwrites) the blob under key; input is copied
//   - Get returns a caller-owned copy, or ErrNotFound when the key is absent
//   - Has reports key existence without transferring the blob
//   - Keys returns every stored key in first-write order; overwriting an
//     existing key keeps its original position, and the order is stable
//     across close/reopen for durable backends
//   - Close releases the underlying resources; the handle must not be used
//     afterwards
//
// Implementations must be safe for concurrent reads, but cross-process
// coordination is out of scope: exactly one writer session per container at a
// time is assumed.
type Container interface {
	Put(key string, data []byte) error
	Get(key string) ([]byte, error)
	Has(key string) (bool, error)
	Keys() ([]string, error)
	Close() error
}
