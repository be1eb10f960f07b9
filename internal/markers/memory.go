package markers

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps markers in a process-local map. Used in tests and as the
// fallback when the configured backend is unreachable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time)}
}

func (s *MemoryStore) Get(_ context.Context, userID, projectID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[Key(userID, projectID)]
	return ok, nil
}

func (s *MemoryStore) Set(_ context.Context, userID, projectID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[Key(userID, projectID)] = time.Now()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID, projectID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, Key(userID, projectID))
	return nil
}

func (s *MemoryStore) Purge(_ context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for key, createdAt := range s.entries {
		if createdAt.Before(olderThan) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) Close() error { return nil }
