// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/go-content-blueprints/internal/app/lifecycle"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/events"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time check that FieldsetService implements ports.FieldsetService.
var _ ports.FieldsetService = (*FieldsetService)(nil)

// FieldsetService implements ports.FieldsetService over a fieldset repository
// and the save lifecycle. It handles validation and structured logging but
// contains no schema logic of its own.
type FieldsetService struct {
	repo   ports.FieldsetRepository
	saver  *lifecycle.Saver[*fields.Fieldset]
	logger *slog.Logger
}

// NewFieldsetService creates a FieldsetService. Lifecycle events go to bus;
// a nil bus disables them.
func NewFieldsetService(repo ports.FieldsetRepository, bus ports.EventBus, logger *slog.Logger) *FieldsetService {
	logger = logging.OrDiscard(logger)
	return &FieldsetService{
		repo:   repo,
		saver:  lifecycle.New[*fields.Fieldset](repo, bus, events.Fieldsets, logger),
		logger: logger,
	}
}

// Make creates an unsaved fieldset.
func (s *FieldsetService) Make(handle string) *fields.Fieldset {
	return fields.NewFieldset(handle)
}

// Find returns the fieldset stored under key.
func (s *FieldsetService) Find(ctx context.Context, key string) (*fields.Fieldset, error) {
	s.logger.InfoContext(ctx, "fetching fieldset", slog.String("key", key))

	if strings.Trim(key, "/") == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"handle": domain.MsgRequired}}
	}

	fs, err := s.repo.Find(ctx, key)
	if err != nil {
		s.logError(ctx, "failed to fetch fieldset", "FindFieldset", key, err)
		return nil, err
	}
	return fs, nil
}

// All returns every top-level fieldset.
func (s *FieldsetService) All(ctx context.Context) ([]*fields.Fieldset, error) {
	s.logger.InfoContext(ctx, "listing fieldsets")

	all, err := s.repo.All(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list fieldsets",
			slog.String("operation", "ListFieldsets"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return all, nil
}

// In returns the blueprints of a namespace.
func (s *FieldsetService) In(ctx context.Context, namespace string) ([]*fields.Fieldset, error) {
	s.logger.InfoContext(ctx, "listing blueprints", slog.String("namespace", namespace))

	list, err := s.repo.In(ctx, namespace)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list blueprints",
			slog.String("operation", "ListBlueprints"),
			slog.String("namespace", namespace),
			slog.Any("error", err),
		)
		return nil, err
	}
	return list, nil
}

// Save persists the fieldset through the save lifecycle.
func (s *FieldsetService) Save(ctx context.Context, fs *fields.Fieldset) (bool, error) {
	return s.save(ctx, fs, false)
}

// SaveQuietly persists the fieldset without dispatching events.
func (s *FieldsetService) SaveQuietly(ctx context.Context, fs *fields.Fieldset) (bool, error) {
	return s.save(ctx, fs, true)
}

func (s *FieldsetService) save(ctx context.Context, fs *fields.Fieldset, quiet bool) (bool, error) {
	s.logger.InfoContext(ctx, "saving fieldset",
		slog.String("key", fs.Key()),
		slog.Bool("quiet", quiet),
	)

	if fs.Handle() == "" {
		return false, &domain.ValidationError{Fields: map[string]string{"handle": domain.MsgRequired}}
	}

	saved, err := s.saver.Save(ctx, fs, lifecycle.Quiet(quiet))
	if err != nil {
		s.logError(ctx, "failed to save fieldset", "SaveFieldset", fs.Key(), err)
		return false, err
	}
	if !saved {
		s.logger.InfoContext(ctx, "fieldset save vetoed", slog.String("key", fs.Key()))
	}
	return saved, nil
}

// Delete removes the fieldset and dispatches fieldset.deleted.
func (s *FieldsetService) Delete(ctx context.Context, fs *fields.Fieldset) error {
	s.logger.InfoContext(ctx, "deleting fieldset", slog.String("key", fs.Key()))

	if err := s.saver.Delete(ctx, fs); err != nil {
		s.logError(ctx, "failed to delete fieldset", "DeleteFieldset", fs.Key(), err)
		return err
	}
	return nil
}

func (s *FieldsetService) logError(ctx context.Context, msg, op, key string, err error) {
	s.logger.ErrorContext(ctx, msg,
		slog.String("operation", op),
		slog.String("key", key),
		slog.Any("error", err),
	)
}
