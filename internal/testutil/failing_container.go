package testutil

import "github.com/plotvault/plotvault/core"

// FailingContainer wraps another container and fails selected operations
// with configured errors. Set an error field mid-test to make the next call
// of that operation fail; clear it to restore passthrough behavior.
// Example:
//
//	fc := &FailingContainer{Container: container.NewMemory()}
//	fc.PutErr = errors.New("disk full") // subsequent Puts fail
type FailingContainer struct {
	core.Container

	PutErr   error
	GetErr   error
	HasErr   error
	KeysErr  error
	CloseErr error
}

// Put fails with PutErr when set, otherwise delegates.
func (f *FailingContainer) Put(key string, data []byte) error {
	if f.PutErr != nil {
		return f.PutErr
	}
	return f.Container.Put(key, data)
}

// Get fails with GetErr when set, otherwise delegates.
func (f *FailingContainer) Get(key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.Container.Get(key)
}

// Has fails with HasErr when set, otherwise delegates.
func (f *FailingContainer) Has(key string) (bool, error) {
	if f.HasErr != nil {
		return false, f.HasErr
	}
	return f.Container.Has(key)
}

// Keys fails with KeysErr when set, otherwise delegates.
func (f *FailingContainer) Keys() ([]string, error) {
	if f.KeysErr != nil {
		return nil, f.KeysErr
	}
	return f.Container.Keys()
}

// Close fails with CloseErr when set, otherwise delegates.
func (f *FailingContainer) Close() error {
	if f.CloseErr != nil {
		return f.CloseErr
	}
	return f.Container.Close()
}
