// Package cache provides a read-through in-memory cache with a TTL.
package cache

import (
	"sync"
	"time"
)

// Store holds cached values keyed by string. Values live until their
// TTL elapses; a zero TTL means entries never expire.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	value    any
	storedAt time.Time
}

// New creates a new Store with the given TTL.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Fetch returns the cached value for key if present and fresh.
// Otherwise it invokes compute, stores the result, and returns it.
// A compute error is returned as-is and nothing is stored.
func Fetch[T any](s *Store, key string, compute func() (T, error)) (T, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		if s.ttl == 0 || s.now().Sub(e.storedAt) <= s.ttl {
			s.mu.Unlock()
			return e.value.(T), nil
		}
		delete(s.entries, key)
	}
	s.mu.Unlock()

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, storedAt: s.now()}
	s.mu.Unlock()
	return value, nil
}

// Delete removes a key from the store.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
