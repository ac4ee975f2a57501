package data

import "sync"

// Slot is a string-keyed single-value store. The favorites collection and
// the theme preference each live in one slot, overwritten in full on every
// mutation.
type Slot interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Put overwrites the value for key.
	Put(key, value string) error
}

// MemorySlot is a map-backed Slot. It is the session-scoped storage lineage
// and doubles as the test fake.
type MemorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: map[string]string{}}
}

func (m *MemorySlot) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySlot) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
