// Package session provides the backing stores for opaque session tokens:
// an in-process map for single-instance deployments and a Redis store for
// shared ones.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

type memoryEntry struct {
	user      domain.SessionUser
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart, which the session model explicitly allows. The clock is injected
// so expiry is testable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
	onSize  func(int)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock is NewMemoryStore with a caller-supplied clock.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	s := NewMemoryStore()
	s.now = now
	return s
}

// OnSizeChange registers fn to be called with the entry count after every
// mutation, including lazy expiry reaps. Set it before the store is shared
// between goroutines.
func (s *MemoryStore) OnSizeChange(fn func(int)) {
	s.onSize = fn
}

func (s *MemoryStore) Put(_ context.Context, token string, user domain.SessionUser, ttl time.Duration) error {
	s.mu.Lock()
	s.entries[token] = memoryEntry{user: user, expiresAt: s.now().Add(ttl)}
	n := len(s.entries)
	s.mu.Unlock()

	s.notify(n)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (domain.SessionUser, error) {
	s.mu.RLock()
	e, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return domain.SessionUser{}, domain.ErrUnauthorized
	}
	if s.now().After(e.expiresAt) {
		// Expired entries are reaped lazily on lookup.
		s.mu.Lock()
		delete(s.entries, token)
		n := len(s.entries)
		s.mu.Unlock()

		s.notify(n)
		return domain.SessionUser{}, domain.ErrUnauthorized
	}
	return e.user, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.entries, token)
	n := len(s.entries)
	s.mu.Unlock()

	s.notify(n)
	return nil
}

// Len reports the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) notify(n int) {
	if s.onSize != nil {
		s.onSize(n)
	}
}
