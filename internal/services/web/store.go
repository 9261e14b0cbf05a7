package web

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/renegocia/internal/platform/timeouts"
	"github.com/louisbranch/renegocia/internal/services/web/storage"
	redisstore "github.com/louisbranch/renegocia/internal/services/web/storage/redis"
	sqlitestore "github.com/louisbranch/renegocia/internal/services/web/storage/sqlite"
)

// Store drivers accepted by OpenStore.
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverRedis  = "redis"
)

// StoreConfig selects and configures the slot store backend.
type StoreConfig struct {
	Driver        string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// OpenStore opens the configured slot store. An empty driver selects SQLite.
func OpenStore(ctx context.Context, cfg StoreConfig) (storage.SlotStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", StoreDriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); strings.TrimSpace(cfg.SQLitePath) != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		store, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case StoreDriverRedis:
		openCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOpen)
		defer cancel()
		store, err := redisstore.Open(openCtx, redisstore.Options{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			DialTimeout: timeouts.StoreOpen,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
