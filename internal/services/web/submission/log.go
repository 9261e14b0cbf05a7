package submission

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/louisbranch/renegocia/internal/services/web/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SlotKey names the storage slot holding the submission log.
const SlotKey = "submissions"

const tracerName = "github.com/louisbranch/renegocia/internal/services/web/submission"

func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// Read loads and decodes the slot. An absent slot is an empty log. A payload
// that fails to decode returns an error wrapping ErrCorruptLog.
func Read(ctx context.Context, store storage.SlotStore) (Log, error) {
	if store == nil {
		return nil, storage.ErrNotConfigured
	}
	ctx, span := tracer().Start(ctx, "submission.Read")
	defer span.End()

	slot, found, err := store.GetSlot(ctx, SlotKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get slot")
		return nil, fmt.Errorf("get %s slot: %w", SlotKey, err)
	}
	if !found {
		span.SetAttributes(attribute.Bool("submission.slot_found", false))
		return Log{}, nil
	}
	entries, err := Decode(slot.Payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode slot")
		return nil, err
	}
	span.SetAttributes(
		attribute.Bool("submission.slot_found", true),
		attribute.Int("submission.count", len(entries)),
	)
	return entries, nil
}

// LoadLog is the writer's read. A corrupt slot is deleted and an empty log
// returned so the next save starts fresh.
func LoadLog(ctx context.Context, store storage.SlotStore, logger *log.Logger) (Log, error) {
	entries, err := Read(ctx, store)
	if err == nil {
		return entries, nil
	}
	if !errors.Is(err, ErrCorruptLog) {
		return nil, err
	}

	ctx, span := tracer().Start(ctx, "submission.ResetCorruptLog")
	defer span.End()
	logf(logger, "reset stored submissions: %v", err)
	if delErr := store.DeleteSlot(ctx, SlotKey); delErr != nil {
		span.RecordError(delErr)
		span.SetStatus(codes.Error, "delete slot")
		return nil, fmt.Errorf("delete corrupt %s slot: %w", SlotKey, delErr)
	}
	return Log{}, nil
}

// LoadForDisplay is the read-only view's read. A corrupt slot is logged and
// shown as empty; the stored payload is left as is.
func LoadForDisplay(ctx context.Context, store storage.SlotStore, logger *log.Logger) (Log, error) {
	entries, err := Read(ctx, store)
	if err == nil {
		return entries, nil
	}
	if !errors.Is(err, ErrCorruptLog) {
		return nil, err
	}
	logf(logger, "parse stored submissions: %v", err)
	return Log{}, nil
}

// AppendAndSave returns current with s appended and writes the whole log to
// the slot. current is not modified.
func AppendAndSave(ctx context.Context, store storage.SlotStore, current Log, s Submission) (Log, error) {
	if store == nil {
		return nil, storage.ErrNotConfigured
	}
	ctx, span := tracer().Start(ctx, "submission.AppendAndSave")
	defer span.End()

	next := current.Append(s)
	payload, err := Encode(next)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode log")
		return nil, err
	}
	if err := store.PutSlot(ctx, SlotKey, payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "put slot")
		return nil, fmt.Errorf("put %s slot: %w", SlotKey, err)
	}
	span.SetAttributes(attribute.Int("submission.count", len(next)))
	return next, nil
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger == nil {
		log.Printf(format, args...)
		return
	}
	logger.Printf(format, args...)
}
