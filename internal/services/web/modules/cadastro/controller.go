package cadastro

import (
	"context"
	"time"

	"github.com/louisbranch/renegocia/internal/services/web/storage"
	"github.com/louisbranch/renegocia/internal/services/web/submission"
)

// Outcome reports a submit attempt. Derived and Saved are set only when
// Valid is true.
type Outcome struct {
	Valid   bool
	Derived float64
	Saved   int
}

// Controller owns one form session: the draft, its validation errors and
// the controller's copy of the submission log.
type Controller struct {
	store  storage.SlotStore
	now    func() time.Time
	draft  submission.Draft
	errors submission.ValidationErrors
	log    submission.Log
	result *float64
}

// NewController starts a session over entries, typically the result of
// submission.LoadLog.
func NewController(store storage.SlotStore, now func() time.Time, entries submission.Log) *Controller {
	if now == nil {
		now = time.Now
	}
	if entries == nil {
		entries = submission.Log{}
	}
	return &Controller{
		store:  store,
		now:    now,
		errors: submission.ValidationErrors{},
		log:    entries,
	}
}

// Draft returns the current draft.
func (c *Controller) Draft() submission.Draft {
	return c.draft
}

// Errors returns a copy of the current validation errors.
func (c *Controller) Errors() submission.ValidationErrors {
	out := make(submission.ValidationErrors, len(c.errors))
	for field, msg := range c.errors {
		out[field] = msg
	}
	return out
}

// Log returns the controller's copy of the submission log.
func (c *Controller) Log() submission.Log {
	return c.log
}

// Result returns the derived installment of the last successful submit.
func (c *Controller) Result() (float64, bool) {
	if c.result == nil {
		return 0, false
	}
	return *c.result, true
}

// UpdateField stores raw under name and clears that field's error. Unknown
// names change nothing and report false.
func (c *Controller) UpdateField(name submission.Field, raw string) bool {
	if !c.draft.Set(name, raw) {
		return false
	}
	c.errors.Clear(name)
	return true
}

// UpdatePhone stores the masked form of raw and clears the phone error.
func (c *Controller) UpdatePhone(raw string) {
	c.draft.Telefone = submission.MaskPhone(raw)
	c.errors.Clear(submission.FieldTelefone)
}

// Validate replaces the error set with a fresh check of the draft and
// reports whether it passed.
func (c *Controller) Validate() bool {
	c.errors = submission.Validate(c.draft)
	return c.errors.Empty()
}

// Submit validates the draft and, when it passes, appends a snapshot to the
// log and persists the whole log. A failed validation or a failed save
// leaves the draft and log as they were.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	if !c.Validate() {
		return Outcome{}, nil
	}
	derived := submission.DerivedInstallment(submission.ParseAmount(c.draft.ValorParcela))
	snapshot := submission.New(c.draft, derived, c.now())

	next, err := submission.AppendAndSave(ctx, c.store, c.log, snapshot)
	if err != nil {
		return Outcome{}, err
	}
	c.log = next
	c.result = &derived
	return Outcome{Valid: true, Derived: derived, Saved: len(next)}, nil
}
