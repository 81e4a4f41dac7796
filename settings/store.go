package settings

import (
	"errors"
	"sync"
)

// ErrCorrupt is returned when a store's backing data cannot be decoded at
// all. Individual malformed values are not errors; see Load.
var ErrCorrupt = errors.New("settings: corrupt store")

// Store is a flat key/value store. Keys use "/" to separate namespaces.
type Store interface {
	// Value returns the value stored under key and whether it exists.
	Value(key string) (any, bool)
	// SetValue stores v under key. It takes effect for subsequent Value
	// calls immediately and is persisted by Sync.
	SetValue(key string, v any)
	// Sync persists pending changes.
	Sync() error
}

// MemoryStore is a Store that lives only in memory.
// It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]any)}
}

// Value implements Store.
func (s *MemoryStore) Value(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// SetValue implements Store.
func (s *MemoryStore) SetValue(key string, v any) {
	s.mu.Lock()
	s.values[key] = v
	s.mu.Unlock()
}

// Sync implements Store. It is a no-op.
func (s *MemoryStore) Sync() error { return nil }

// Len returns the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
