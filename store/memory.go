package store

import (
	"context"
	"sync"
)

// MemoryStore implements Store in-memory (for fallback/dev mode).
type MemoryStore struct {
	counts map[string]int64
	mu     sync.Mutex
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

func (m *MemoryStore) GetCount(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.counts[key]
	if !ok {
		return 0, ErrNotFound
	}
	return n, nil
}

func (m *MemoryStore) PutCount(ctx context.Context, key string, count int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key] = count
	return nil
}

func (m *MemoryStore) AddCount(ctx context.Context, key string, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key] += delta
	return m.counts[key], nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
