package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/fitlife/internal/paths"
	"github.com/garrettladley/fitlife/internal/storage"
)

type Config struct {
	Store        storage.Backend `env:"FITLIFE_STORE" envDefault:"sqlite"`
	DBPath       string          `env:"FITLIFE_DB_PATH"`
	Redis        RedisConfig
	DatabaseURL  string        `env:"FITLIFE_DATABASE_URL"`
	TickInterval time.Duration `env:"FITLIFE_TICK_INTERVAL" envDefault:"1s"`
	WeightKg     float64       `env:"FITLIFE_WEIGHT_KG" envDefault:"70"`
}

type RedisConfig struct {
	URL    string `env:"FITLIFE_REDIS_URL"`
	Prefix string `env:"FITLIFE_REDIS_PREFIX" envDefault:"fitlife:"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolve() error {
	if !c.Store.Valid() {
		return fmt.Errorf("invalid FITLIFE_STORE %q (valid: memory, sqlite, redis, postgres)", c.Store)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("FITLIFE_TICK_INTERVAL must be positive, got %s", c.TickInterval)
	}

	switch c.Store {
	case storage.BackendSQLite:
		if c.DBPath == "" {
			path, err := paths.DB()
			if err != nil {
				return err
			}
			c.DBPath = path
		}
	case storage.BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("FITLIFE_REDIS_URL is required for the redis store")
		}
	case storage.BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("FITLIFE_DATABASE_URL is required for the postgres store")
		}
	}
	return nil
}
