package storage

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by a KV whose capacity would be exceeded by a write.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KV is a synchronous string key-value store. Values are opaque text;
// callers own their encoding.
type KV interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value string) error

	Close() error
}

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

func (b Backend) Valid() bool {
	switch b {
	case BackendMemory, BackendSQLite, BackendRedis, BackendPostgres:
		return true
	default:
		return false
	}
}
