// Package storagetest provides an in-memory slot store for tests.
package storagetest

import (
	"context"
	"sync"
	"time"

	"github.com/louisbranch/renegocia/internal/services/web/storage"
)

// Store is a goroutine-safe in-memory storage.SlotStore. Setting one of the
// error fields makes the matching call fail.
type Store struct {
	mu    sync.Mutex
	slots map[string]storage.Slot

	GetErr    error
	PutErr    error
	DeleteErr error

	Puts    int
	Deletes int
}

// New returns an empty store.
func New() *Store {
	return &Store{slots: map[string]storage.Slot{}}
}

// Seed stores payload under key without counting it as a put.
func (s *Store) Seed(key string, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = storage.Slot{Key: key, Payload: []byte(payload), UpdatedAt: time.Unix(0, 0).UTC()}
}

// Payload returns the raw payload under key and whether it exists.
func (s *Store) Payload(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[key]
	return string(slot.Payload), ok
}

func (s *Store) GetSlot(_ context.Context, key string) (storage.Slot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return storage.Slot{}, false, s.GetErr
	}
	slot, ok := s.slots[key]
	if !ok {
		return storage.Slot{}, false, nil
	}
	slot.Payload = append([]byte(nil), slot.Payload...)
	return slot, true, nil
}

func (s *Store) PutSlot(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	s.Puts++
	s.slots[key] = storage.Slot{Key: key, Payload: append([]byte(nil), payload...), UpdatedAt: time.Now().UTC()}
	return nil
}

func (s *Store) DeleteSlot(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.Deletes++
	delete(s.slots, key)
	return nil
}

func (s *Store) Close() error {
	return nil
}

var _ storage.SlotStore = (*Store)(nil)
