package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Backend stores encoded values. Implementations must treat a missing or
// expired key as a miss, not an error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryBackend is a process-local Backend.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	e, ok := b.entries[key]
	b.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(b.now()) {
		b.mu.Lock()
		if current, stillThere := b.entries[key]; stillThere && current.expiresAt.Equal(e.expiresAt) {
			delete(b.entries, key)
		}
		b.mu.Unlock()
		return nil, false, nil
	}

	return e.value, true, nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = b.now().Add(ttl)
	}

	b.mu.Lock()
	b.entries[key] = memoryEntry{value: value, expiresAt: expiresAt}
	b.mu.Unlock()
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, keys ...string) error {
	b.mu.Lock()
	for _, key := range keys {
		delete(b.entries, key)
	}
	b.mu.Unlock()
	return nil
}

func (b *MemoryBackend) DeletePrefix(_ context.Context, prefix string) error {
	b.mu.Lock()
	for key := range b.entries {
		if strings.HasPrefix(key, prefix) {
			delete(b.entries, key)
		}
	}
	b.mu.Unlock()
	return nil
}

func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
