package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/teambuilder/internal/adapter/memory"
	"github.com/heartmarshall/teambuilder/internal/adapter/postgres"
	"github.com/heartmarshall/teambuilder/internal/adapter/postgres/kvstore"
	"github.com/heartmarshall/teambuilder/internal/adapter/redis"
	"github.com/heartmarshall/teambuilder/internal/adapter/sqlite"
	"github.com/heartmarshall/teambuilder/internal/config"
	"github.com/heartmarshall/teambuilder/internal/store"
)

// kvBackend is a key-value store the gateway can run on and the health
// endpoints can ping.
type kvBackend interface {
	store.KV
	Ping(ctx context.Context) error
}

// openStorage connects the configured backend. The returned close function
// releases its connections.
func openStorage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (kvBackend, func(), error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Warn("using in-memory storage: saved teams are lost on restart")
		return memory.NewKV(), func() {}, nil

	case config.BackendSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		logger.Info("sqlite storage opened", slog.String("path", cfg.SQLite.Path))
		return s, func() { s.Close() }, nil //nolint:errcheck

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		logger.Info("postgres storage connected")
		return kvstore.New(pool), pool.Close, nil

	case config.BackendRedis:
		rdb, err := redis.Dial(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("redis storage connected", slog.String("addr", cfg.Redis.Addr))
		return redis.New(rdb, cfg.Redis.KeyPrefix), func() { rdb.Close() }, nil //nolint:errcheck
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
