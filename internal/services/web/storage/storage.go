package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured reports a call on a store without a live backend.
var ErrNotConfigured = errors.New("storage is not configured")

// Slot is one persisted named payload.
type Slot struct {
	Key       string
	Payload   []byte
	UpdatedAt time.Time
}

// SlotStore reads and replaces named slots.
//
// GetSlot reports found=false for an absent slot without an error. PutSlot
// replaces any prior payload. DeleteSlot on an absent slot is not an error.
type SlotStore interface {
	GetSlot(ctx context.Context, key string) (Slot, bool, error)
	PutSlot(ctx context.Context, key string, payload []byte) error
	DeleteSlot(ctx context.Context, key string) error
	Close() error
}
