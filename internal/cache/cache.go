package cache

import (
	"sync"
	"time"
)

// Store is a key/value cache with per-entry expiry
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Forget(keys ...string)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// WithClock replaces the time source, used by tests to step past a TTL
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Get returns the live value stored under key
func (s *MemoryStore) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	now := s.now()
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !now.Before(e.expiresAt) {
		s.mu.Lock()
		if cur, still := s.entries[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl stores nothing.
func (s *MemoryStore) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
}

// Forget removes the given keys
func (s *MemoryStore) Forget(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
}

// Len returns the number of stored entries, expired or not
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Remember returns the cached value for key, or computes and stores it.
// Concurrent misses may each call compute; the last write wins.
// Errors from compute are returned and nothing is cached.
func Remember[T any](store Store, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if v, ok := store.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	store.Set(key, value, ttl)
	return value, nil
}
