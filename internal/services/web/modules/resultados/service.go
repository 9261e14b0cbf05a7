package resultados

import (
	"context"
	"log"

	apperrors "github.com/louisbranch/renegocia/internal/services/web/platform/errors"
	"github.com/louisbranch/renegocia/internal/services/web/storage"
	"github.com/louisbranch/renegocia/internal/services/web/submission"
)

type service struct {
	store  storage.SlotStore
	logger *log.Logger
}

func newService(store storage.SlotStore, logger *log.Logger) service {
	return service{store: store, logger: logger}
}

// loadForDisplay reads the log without ever modifying the slot.
func (s service) loadForDisplay(ctx context.Context) (submission.Log, error) {
	entries, err := submission.LoadForDisplay(ctx, s.store, s.logger)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnavailable, "web.error.message_store_unavailable", "load submissions", err)
	}
	return entries, nil
}
