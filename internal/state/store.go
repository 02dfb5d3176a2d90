package state

import "sync"

// Store holds the current Snapshot and serializes events from any goroutine.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store holding initial.
func NewStore(initial Snapshot) *Store {
	return &Store{snapshot: initial}
}

// Dispatch reduces ev into the stored snapshot and returns the snapshots
// before and after the update.
func (s *Store) Dispatch(ev Event) (prev, next Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev = s.snapshot
	s.snapshot = Reduce(prev, ev)
	return prev, s.snapshot
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
