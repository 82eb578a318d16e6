package storage

import (
	"context"
	"sync"
)

var _ KV = (*MemoryKV)(nil)

type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]string

	// quota bounds the summed length of keys and values; zero means unbounded.
	quota int
	used  int
}

type MemoryOption func(*MemoryKV)

// WithQuota caps the total bytes of keys plus values the store will hold.
func WithQuota(bytes int) MemoryOption {
	return func(m *MemoryKV) {
		m.quota = bytes
	}
}

func NewMemoryKV(opts ...MemoryOption) *MemoryKV {
	m := &MemoryKV{
		entries: make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	value, ok := m.entries[key]
	m.mu.RUnlock()
	return value, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	used := m.used + len(value)
	if prev, ok := m.entries[key]; ok {
		used -= len(prev)
	} else {
		used += len(key)
	}

	if m.quota > 0 && used > m.quota {
		return ErrQuotaExceeded
	}

	m.entries[key] = value
	m.used = used
	return nil
}

func (m *MemoryKV) Close() error {
	return nil
}
