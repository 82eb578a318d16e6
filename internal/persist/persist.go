// Package persist stores JSON documents in a storage.KV without ever
// surfacing a failure to the caller. Write failures drop the write, read
// failures look like a missing key; both are logged.
package persist

import (
	"context"
	"log/slog"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/fitlife/internal/storage"
	"github.com/garrettladley/fitlife/internal/xslog"
)

type Store struct {
	kv     storage.KV
	logger *slog.Logger
}

func New(kv storage.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = xslog.Discard()
	}
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Save writes v under key. Failures are logged and the write is lost.
func (s *Store) Save(ctx context.Context, key string, v any) {
	if err := s.put(ctx, key, v); err != nil {
		s.logger.ErrorContext(ctx, "error saving to store", xslog.Key(key), xslog.Error(err))
	}
}

// Load decodes the document under key into a fresh T. ok is false when
// the key is absent or its contents cannot be read; the two cases are
// deliberately indistinguishable.
func Load[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var v T
	found, err := s.fetch(ctx, key, &v)
	if err != nil {
		s.logger.ErrorContext(ctx, "error reading from store", xslog.Key(key), xslog.Error(err))
		var zero T
		return zero, false
	}
	return v, found
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	data, err := go_json.Marshal(v)
	if err != nil {
		return &WriteError{Key: key, Cause: err}
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return &WriteError{Key: key, Cause: err}
	}
	return nil
}

func (s *Store) fetch(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, &ReadError{Key: key, Cause: err}
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := go_json.Unmarshal([]byte(raw), dst); err != nil {
		return false, &ReadError{Key: key, Cause: err}
	}
	return true, nil
}
