package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/fitlife/internal/config"
	"github.com/garrettladley/fitlife/internal/persist"
	"github.com/garrettladley/fitlife/internal/redis"
	"github.com/garrettladley/fitlife/internal/storage"
	"github.com/garrettladley/fitlife/internal/tracking"
	"github.com/garrettladley/fitlife/internal/xslog"
)

func openKV(ctx context.Context, cfg config.Config) (storage.KV, error) {
	switch cfg.Store {
	case storage.BackendMemory:
		return storage.NewMemoryKV(), nil
	case storage.BackendSQLite:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return storage.OpenSQLite(ctx, cfg.DBPath)
	case storage.BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{URL: cfg.Redis.URL})
		if err != nil {
			return nil, err
		}
		return storage.NewRedisKV(storage.RedisConfig{Client: client, Prefix: cfg.Redis.Prefix}), nil
	case storage.BackendPostgres:
		return storage.OpenPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported store %q", cfg.Store)
	}
}

// app bundles what every command needs. Close releases the store.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	kv      storage.KV
	clock   clockwork.Clock
	store   *persist.Store
	tracker *tracking.Tracker
	prefs   *tracking.Preferences
}

func openApp(ctx context.Context, logger *slog.Logger) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	kv, err := openKV(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	logger.DebugContext(ctx, "store opened", xslog.Backend(string(cfg.Store)))

	clock := clockwork.NewRealClock()
	store := persist.New(kv, logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		kv:      kv,
		clock:   clock,
		store:   store,
		tracker: tracking.New(store, clock),
		prefs:   tracking.NewPreferences(store),
	}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}
