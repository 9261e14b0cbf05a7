package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/renegocia/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/louisbranch/renegocia/internal/services/web/storage"
	"github.com/louisbranch/renegocia/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed slot persistence.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ webstorage.SlotStore = (*Store)(nil)

// Open opens and migrates a slot SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetSlot loads a slot payload by key.
func (s *Store) GetSlot(ctx context.Context, key string) (webstorage.Slot, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Slot{}, false, webstorage.ErrNotConfigured
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return webstorage.Slot{}, false, fmt.Errorf("slot key is required")
	}

	var slot webstorage.Slot
	var updatedAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT slot_key, payload, updated_at FROM slots WHERE slot_key = ?`,
		key,
	).Scan(&slot.Key, &slot.Payload, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return webstorage.Slot{}, false, nil
	}
	if err != nil {
		return webstorage.Slot{}, false, fmt.Errorf("get slot: %w", err)
	}
	slot.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return slot, true, nil
}

// PutSlot replaces the payload stored under key.
func (s *Store) PutSlot(ctx context.Context, key string, payload []byte) error {
	if s == nil || s.sqlDB == nil {
		return webstorage.ErrNotConfigured
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("slot key is required")
	}
	if payload == nil {
		payload = []byte{}
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO slots (slot_key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot_key) DO UPDATE SET
		    payload = excluded.payload,
		    updated_at = excluded.updated_at`,
		key,
		payload,
		s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put slot: %w", err)
	}
	return nil
}

// DeleteSlot removes a slot by key.
func (s *Store) DeleteSlot(ctx context.Context, key string) error {
	if s == nil || s.sqlDB == nil {
		return webstorage.ErrNotConfigured
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("slot key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM slots WHERE slot_key = ?`, key); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}
