// Package cache provides the process-wide result store shared by the flight
// and hotel lookups. Entries live for a fixed TTL set at construction; there
// is no capacity bound and no eviction beyond lazy expiry.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Store is a thread-safe key/value store with per-entry expiration.
// Concurrent writers racing on the same key are tolerated; the last Set wins.
// A Get hit returns the exact value previously stored, so callers must treat
// results as read-only.
type Store[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry[T]
}

func NewStore[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
	}
}

// Get returns the value stored under key, or false when the key is absent or
// expired. Absence is a normal outcome, not an error.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		var zero T
		return zero, false
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()

		var zero T
		return zero, false
	}

	return e.value, true
}

// Set stores value under key, expiring ttl from now.
func (s *Store[T]) Set(key string, value T) {
	s.mu.Lock()
	s.entries[key] = entry[T]{value: value, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}
