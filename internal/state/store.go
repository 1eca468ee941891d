package state

import "sync"

// Store serializes reducer updates coming from concurrent commands.
type Store struct {
	mu   sync.RWMutex
	view View
	init bool
}

// NewStore returns a store holding the initial loading state.
func NewStore() *Store {
	return &Store{view: Initial(), init: true}
}

// Dispatch applies e under the write lock and returns a copy of the result.
func (s *Store) Dispatch(e Event) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureInit()
	s.view = Reduce(s.view, e)
	return s.view.Clone()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() View {
	s.mu.RLock()
	if s.init {
		defer s.mu.RUnlock()
		return s.view.Clone()
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInit()
	return s.view.Clone()
}

// ensureInit lets the zero Store start in the loading state.
func (s *Store) ensureInit() {
	if !s.init {
		s.view = Initial()
		s.init = true
	}
}
