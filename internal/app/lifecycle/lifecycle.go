// Package lifecycle implements the save lifecycle shared by fieldsets and
// terms:
//
//	isNew := repository has no entity under Key()   (checked first)
//	callbacks := entity.TakeAfterSave()
//	dispatch <kind>.saving                          (a listener may halt the save)
//	repository.Save(entity)
//	run callbacks in order
//	dispatch <kind>.created when isNew, then <kind>.saved
//
// Saving quietly skips every dispatch but still persists and runs callbacks.
// Quiet is a per-call option, so concurrent saves of different entities
// never observe each other's mode. Saves of the same entity instance must
// not run concurrently.
package lifecycle

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/events"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/go-content-blueprints/internal/app/lifecycle"

// Entity is a saveable entity carrying its own one-shot after-save queue.
type Entity[T any] interface {
	Key() string
	TakeAfterSave() []func(T)
}

// Repository is the persistence collaborator for one entity kind.
// Find must return an error wrapping domain.ErrNotFound for absent keys.
type Repository[T any] interface {
	Find(ctx context.Context, key string) (T, error)
	Save(ctx context.Context, entity T) error
	Delete(ctx context.Context, entity T) error
}

// Option configures a single Save or Delete call.
type Option func(*options)

type options struct {
	quiet bool
}

// Quiet suppresses every lifecycle event for the call when quiet is true.
func Quiet(quiet bool) Option {
	return func(o *options) { o.quiet = quiet }
}

// Saver runs the save and delete lifecycles for one entity kind.
type Saver[T Entity[T]] struct {
	repo   Repository[T]
	bus    ports.EventBus
	names  events.Set
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates a Saver. A nil bus disables event dispatch entirely; a nil
// logger discards log output.
func New[T Entity[T]](repo Repository[T], bus ports.EventBus, names events.Set, logger *slog.Logger) *Saver[T] {
	return &Saver[T]{
		repo:   repo,
		bus:    bus,
		names:  names,
		logger: logging.OrDiscard(logger),
		tracer: otel.GetTracerProvider().Tracer(tracerName),
	}
}

// Save persists entity. It returns false with a nil error when a saving
// listener halts the save; in that case nothing is persisted and the drained
// callbacks are dropped. Repository errors are returned unwrapped.
func (s *Saver[T]) Save(ctx context.Context, entity T, opts ...Option) (bool, error) {
	o := applyOptions(opts)
	key := entity.Key()

	ctx, span := s.tracer.Start(ctx, s.names.Kind+".save",
		trace.WithAttributes(
			attribute.String("entity.key", key),
			attribute.Bool("lifecycle.quiet", o.quiet),
		),
	)
	defer span.End()

	isNew, err := s.isNew(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "existence check failed")
		return false, err
	}

	callbacks := entity.TakeAfterSave()

	if s.dispatching(o) && !s.bus.Dispatch(ctx, events.New(s.names.Saving, entity)) {
		s.logger.DebugContext(ctx, "save halted by listener",
			slog.String("event", s.names.Saving.String()),
			slog.String("key", key),
		)
		span.SetAttributes(attribute.Bool("lifecycle.halted", true))
		return false, nil
	}

	if err := s.repo.Save(ctx, entity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return false, err
	}

	for _, cb := range callbacks {
		cb(entity)
	}

	if s.dispatching(o) {
		if isNew {
			s.bus.Dispatch(ctx, events.New(s.names.Created, entity))
		}
		s.bus.Dispatch(ctx, events.New(s.names.Saved, entity))
	}

	span.SetAttributes(attribute.Bool("lifecycle.created", isNew))
	return true, nil
}

// Delete removes entity and dispatches the deleted event. Prior existence is
// not checked, so deleting an entity that was never saved still dispatches.
func (s *Saver[T]) Delete(ctx context.Context, entity T, opts ...Option) error {
	o := applyOptions(opts)

	ctx, span := s.tracer.Start(ctx, s.names.Kind+".delete",
		trace.WithAttributes(attribute.String("entity.key", entity.Key())),
	)
	defer span.End()

	if err := s.repo.Delete(ctx, entity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return err
	}

	if s.dispatching(o) {
		s.bus.Dispatch(ctx, events.New(s.names.Deleted, entity))
	}
	return nil
}

// isNew reports whether nothing is stored under key yet.
func (s *Saver[T]) isNew(ctx context.Context, key string) (bool, error) {
	_, err := s.repo.Find(ctx, key)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, domain.ErrNotFound):
		return true, nil
	default:
		return false, err
	}
}

func (s *Saver[T]) dispatching(o options) bool {
	return s.bus != nil && !o.quiet
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
