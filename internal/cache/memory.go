package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pulseai/gateway/internal/core/domain"
)

// Memory is the in-process TTL store used when no Redis is configured.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	result    domain.PredictionResult
	expiresAt time.Time
}

// NewMemory creates an in-process store with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Get(_ context.Context, key string) (*domain.PredictionResult, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().After(entry.expiresAt) {
		return nil, nil
	}
	result := entry.result
	return &result, nil
}

func (m *Memory) Set(_ context.Context, key string, result domain.PredictionResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Opportunistic pruning keeps the map from growing unbounded.
	now := m.now()
	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}

	m.entries[key] = memoryEntry{result: result, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *Memory) Close() error { return nil }
