// Package tracectx provides task-scoped trace context for AgentFlow.
package tracectx

import "sync"

// Store is the live trace-context mapping for one task.
//
// A task owns its store exclusively; siblings and parents hold their
// own instances (see Fork). The mutex only guards against a store that
// is accidentally shared across goroutines without a Fork - such a
// store can go stale, but never corrupt.
type Store struct {
	mu sync.Mutex
	kv map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{kv: make(map[string]any)}
}

// newStoreFrom creates a store seeded with a copy of the given mapping.
func newStoreFrom(seed map[string]any) *Store {
	kv := make(map[string]any, len(seed))
	for k, v := range seed {
		kv[k] = v
	}
	return &Store{kv: kv}
}

// Get returns a copy of the current mapping.
//
// Mutations to the store after Get returns never affect the returned
// snapshot, and callers may mutate the snapshot freely.
func (s *Store) Get() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]any, len(s.kv))
	for k, v := range s.kv {
		snapshot[k] = v
	}
	return snapshot
}

// Merge applies updates to the mapping, shallow and last-writer-wins:
// keys present in updates overwrite the current value, keys absent from
// updates are preserved. A nil or empty updates map is a no-op.
func (s *Store) Merge(updates map[string]any) {
	if len(updates) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range updates {
		s.kv[k] = v
	}
}

// Replace discards the current mapping and installs a copy of m.
func (s *Store) Replace(m map[string]any) {
	kv := make(map[string]any, len(m))
	for k, v := range m {
		kv[k] = v
	}

	s.mu.Lock()
	s.kv = kv
	s.mu.Unlock()
}

// Clear resets the mapping to empty. Equivalent to Replace(nil).
func (s *Store) Clear() {
	s.Replace(nil)
}

// Len returns the number of keys currently set.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.kv)
}
