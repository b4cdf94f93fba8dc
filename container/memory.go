package container

import (
	"sync"

	"github.com/plotvault/plotvault/core"
)

// Memory is a trivial in-process Container implementation useful for tests,
// examples and single-process prototypes. It keeps all entries in a map
// guarded by an RWMutex and records first-write order in a side slice so Keys
// can replay insertions deterministically. Data is copied on write and read
// to avoid accidental external mutation of internal buffers.
//
// Contents are volatile, so open modes are meaningless here; a fresh Memory
// is always an empty, writable container.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
	order   []string
}

// NewMemory returns an empty in-memory container.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Put stores (or overwrites) the bytes for the given key. The input slice is
// copied before storage. Overwriting keeps the key's original Keys position.
func (m *Memory) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[key]; !exists {
		m.order = append(m.order, key)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.entries[key] = cp
	return nil
}

// Get returns a copy of the stored bytes or core.ErrNotFound.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.entries[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// Has reports whether the key currently holds an entry.
func (m *Memory) Has(key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[key]
	return ok, nil
}

// Keys returns every key in first-write order. The slice is a snapshot and
// safe for caller mutation.
func (m *Memory) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys, nil
}

// Close is a no-op; contents simply become garbage once unreferenced.
func (m *Memory) Close() error { return nil }
