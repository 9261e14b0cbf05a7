package cadastro

import (
	"context"
	"log"
	"net/url"
	"sync"
	"time"

	apperrors "github.com/louisbranch/renegocia/internal/services/web/platform/errors"
	"github.com/louisbranch/renegocia/internal/services/web/storage"
	"github.com/louisbranch/renegocia/internal/services/web/submission"
)

const storeUnavailableKey = "web.error.message_store_unavailable"

type service struct {
	store  storage.SlotStore
	now    func() time.Time
	logger *log.Logger

	// mu serializes load, append and save so concurrent submits in this
	// process never drop each other's entries.
	mu sync.Mutex
}

func newService(store storage.SlotStore, now func() time.Time, logger *log.Logger) *service {
	return &service{store: store, now: now, logger: logger}
}

// index starts a session for the form view. It holds mu because loading may
// reset a corrupt slot, which must not race a concurrent submit's save.
func (s *service) index(ctx context.Context) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activate(ctx)
}

// activate starts a form session over the stored log. Callers hold mu.
func (s *service) activate(ctx context.Context) (*Controller, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return NewController(s.store, s.now, entries), nil
}

// submit replays posted fields into a fresh session and submits it.
func (s *service) submit(ctx context.Context, form url.Values) (*Controller, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.activate(ctx)
	if err != nil {
		return nil, Outcome{}, err
	}
	applyForm(c, form)

	outcome, err := c.Submit(ctx)
	if err != nil {
		return nil, Outcome{}, apperrors.Wrap(apperrors.KindUnavailable, storeUnavailableKey, "save submissions", err)
	}
	return c, outcome, nil
}

func (s *service) load(ctx context.Context) (submission.Log, error) {
	entries, err := submission.LoadLog(ctx, s.store, s.logger)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnavailable, storeUnavailableKey, "load submissions", err)
	}
	return entries, nil
}

func applyForm(c *Controller, form url.Values) {
	for _, field := range submission.Fields() {
		if _, ok := form[string(field)]; !ok {
			continue
		}
		value := form.Get(string(field))
		if field == submission.FieldTelefone {
			c.UpdatePhone(value)
			continue
		}
		c.UpdateField(field, value)
	}
}
