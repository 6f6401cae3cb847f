package cache

import (
	"context"
	"sync"
	"time"
)

// memoryStore is the default process-local store with fixed-TTL entries.
// There is no capacity bound and no eviction beyond TTL: memory grows with
// the number of distinct keys seen within one TTL window. Acceptable while
// the key corpus (pagination pages x filter values) stays small; revisit if
// filters become user-generated at scale.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now is swappable for expiry tests
	now func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the entry value, treating expired entries as absent and
// dropping them lazily. There is no background sweep.
func (s *memoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// refreshed the entry.
		if current, ok := s.entries[key]; ok && s.now().After(current.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores an immutable snapshot with expiry = now + ttl. Concurrent
// writers racing on the same key are last-write-wins.
func (s *memoryStore) Set(_ context.Context, key, value string, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
}

func (s *memoryStore) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *memoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
}

func (s *memoryStore) Close() error {
	s.Clear(context.Background())
	return nil
}

func (s *memoryStore) Health(_ context.Context) error {
	return nil
}
