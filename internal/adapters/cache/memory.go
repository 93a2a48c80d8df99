package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cognivus/cognivus/internal/ports"
)

type memoryEntry struct {
	data      ports.SessionData
	expiresAt time.Time
}

// MemorySessionStore is the default, process-local session backend. Sessions
// are lost on restart; deployments that need durability configure Redis.
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	nowFn   func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		entries: make(map[string]memoryEntry),
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemorySessionStore) Put(_ context.Context, token string, data ports.SessionData, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{
		data:      data,
		expiresAt: s.nowFn().Add(ttl),
	}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (*ports.SessionData, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if entry.expiresAt.Before(s.nowFn()) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return nil, nil
	}
	data := entry.data
	return &data, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
