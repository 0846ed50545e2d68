// Package memory provides an in-memory Store for tests and ephemeral runs.
package memory

import (
	"context"
	"encoding/json"
	"sync"
)

// Store keeps documents as raw JSON in a map. Values round-trip through
// encoding so Get returns copies, never aliases of what was Set.
type Store struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{docs: make(map[string]json.RawMessage)}
}

// Get implements storage.Store.
func (s *Store) Get(_ context.Context, key string, out any) (bool, error) {
	s.mu.RLock()
	doc, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set implements storage.Store.
func (s *Store) Set(_ context.Context, key string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[key] = doc
	s.mu.Unlock()
	return nil
}
