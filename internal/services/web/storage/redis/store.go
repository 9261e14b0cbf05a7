// Package redis provides the slot persistence adapter backed by Redis.
//
// Each slot is one string key under a configurable prefix. Payloads are
// replaced with SET so a slot write is atomic per key.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	webstorage "github.com/louisbranch/renegocia/internal/services/web/storage"
)

// DefaultKeyPrefix namespaces slot keys in a shared Redis database.
const DefaultKeyPrefix = "renegocia:slot:"

// Options configures a Redis slot store.
type Options struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
}

// Store provides Redis-backed slot persistence.
type Store struct {
	client *goredis.Client
	prefix string
}

var _ webstorage.SlotStore = (*Store)(nil)

// Open connects to Redis and verifies the connection with PING.
func Open(ctx context.Context, opts Options) (*Store, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: client, prefix: prefix}, nil
}

// Close releases the Redis client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// GetSlot loads a slot payload by key.
func (s *Store) GetSlot(ctx context.Context, key string) (webstorage.Slot, bool, error) {
	if s == nil || s.client == nil {
		return webstorage.Slot{}, false, webstorage.ErrNotConfigured
	}
	redisKey, err := s.redisKey(key)
	if err != nil {
		return webstorage.Slot{}, false, err
	}
	payload, err := s.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return webstorage.Slot{}, false, nil
	}
	if err != nil {
		return webstorage.Slot{}, false, fmt.Errorf("get slot: %w", err)
	}
	return webstorage.Slot{Key: strings.TrimSpace(key), Payload: payload}, true, nil
}

// PutSlot replaces the payload stored under key.
func (s *Store) PutSlot(ctx context.Context, key string, payload []byte) error {
	if s == nil || s.client == nil {
		return webstorage.ErrNotConfigured
	}
	redisKey, err := s.redisKey(key)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("put slot: %w", err)
	}
	return nil
}

// DeleteSlot removes a slot by key.
func (s *Store) DeleteSlot(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return webstorage.ErrNotConfigured
	}
	redisKey, err := s.redisKey(key)
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

func (s *Store) redisKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("slot key is required")
	}
	return s.prefix + key, nil
}
