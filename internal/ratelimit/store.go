package ratelimit

import (
	"sync"
	"time"
)

// Entry is one address's counter for the current window.
type Entry struct {
	Count   int
	ResetAt time.Time
}

// Store tracks per-key request counts in fixed windows. Increment must be
// atomic per key so concurrent bursts from one address are not undercounted.
// Implementations may be process-local or backed by a shared store.
type Store interface {
	// Increment bumps the counter for key, starting a fresh window when none
	// is active or the previous one has elapsed, and returns the entry.
	Increment(key string, now time.Time, window time.Duration) Entry

	// Len returns the number of tracked keys.
	Len() int

	// Sweep removes entries whose window has already expired.
	Sweep(now time.Time)
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore returns an in-process Store. State is volatile and bounded
// only by the limiter's sweep policy.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]Entry)}
}

func (s *memoryStore) Increment(key string, now time.Time, window time.Duration) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || now.After(entry.ResetAt) {
		entry = Entry{Count: 1, ResetAt: now.Add(window)}
	} else {
		entry.Count++
	}
	s.entries[key] = entry
	return entry
}

func (s *memoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *memoryStore) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range s.entries {
		if now.After(entry.ResetAt) {
			delete(s.entries, key)
		}
	}
}
