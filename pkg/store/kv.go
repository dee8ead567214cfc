// Package store holds the authoritative in-memory account and user
// collections and mirrors them wholesale to a durable key-value store on
// every mutation.
package store

import "sync"

// KV is the durable key-value store backing a RecordStore. Each key holds
// one full serialized collection; writes overwrite the previous value
// wholesale.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool, error)

	// Set stores the value for key, replacing any previous value.
	Set(key string, value []byte) error
}

// MemKV is an in-memory KV implementation. Useful for tests and ephemeral
// runs where durability is not wanted.
type MemKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemKV creates an empty MemKV.
func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string][]byte)}
}

// Get returns the value for key and whether it was present.
func (m *MemKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set stores the value for key.
func (m *MemKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

var _ KV = (*MemKV)(nil)
