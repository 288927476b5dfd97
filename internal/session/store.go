// Package session keeps per-browser-session state in memory. Nothing here
// survives a restart; bills, selections and checkouts are all transient.
package session

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Store is a TTL-bounded in-memory map. Expired entries are dropped lazily
// on the next write, so no background goroutine is needed.
type Store[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*entry[T]
	now   func() time.Time
}

func NewStore[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		ttl:   ttl,
		items: make(map[string]*entry[T]),
		now:   time.Now,
	}
}

func (s *Store[T]) Put(id string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.items[id] = &entry[T]{value: value, lastSeen: s.now()}
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	if s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl {
		delete(s.items, id)
		var zero T
		return zero, false
	}
	e.lastSeen = s.now()
	return e.value, true
}

func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.items {
		if e.lastSeen.Before(cutoff) {
			delete(s.items, id)
		}
	}
}
