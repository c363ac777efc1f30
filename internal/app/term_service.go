package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-content-blueprints/internal/app/fanout"
	"github.com/jsamuelsen11/go-content-blueprints/internal/app/lifecycle"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/events"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// DefaultCountWorkers bounds the concurrent repository calls of
// EntriesCounts.
const DefaultCountWorkers = 4

// Compile-time check that TermService implements ports.TermService.
var _ ports.TermService = (*TermService)(nil)

// TermService implements ports.TermService. Terms it makes or loads resolve
// their taxonomy through the taxonomy repository.
type TermService struct {
	terms      ports.TermRepository
	taxonomies ports.TaxonomyRepository
	saver      *lifecycle.Saver[*taxonomy.Term]
	logger     *slog.Logger
	workers    int
}

// NewTermService creates a TermService. Lifecycle events go to bus; a nil
// bus disables them.
func NewTermService(
	terms ports.TermRepository,
	taxonomies ports.TaxonomyRepository,
	bus ports.EventBus,
	logger *slog.Logger,
) *TermService {
	logger = logging.OrDiscard(logger)
	return &TermService{
		terms:      terms,
		taxonomies: taxonomies,
		saver:      lifecycle.New[*taxonomy.Term](terms, bus, events.Terms, logger),
		logger:     logger,
		workers:    DefaultCountWorkers,
	}
}

// Taxonomies returns every registered taxonomy.
func (s *TermService) Taxonomies(ctx context.Context) ([]*taxonomy.Taxonomy, error) {
	s.logger.InfoContext(ctx, "listing taxonomies")

	all, err := s.taxonomies.All(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list taxonomies",
			slog.String("operation", "ListTaxonomies"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return all, nil
}

// Taxonomy returns the taxonomy with the given handle.
func (s *TermService) Taxonomy(ctx context.Context, handle string) (*taxonomy.Taxonomy, error) {
	if handle == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"taxonomy": domain.MsgRequired}}
	}

	tax, err := s.taxonomies.FindByHandle(ctx, handle)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch taxonomy",
			slog.String("operation", "FindTaxonomy"),
			slog.String("taxonomy", handle),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tax, nil
}

// Make creates an unsaved term in an existing taxonomy.
func (s *TermService) Make(ctx context.Context, taxonomyHandle, slug string) (*taxonomy.Term, error) {
	tax, err := s.Taxonomy(ctx, taxonomyHandle)
	if err != nil {
		return nil, err
	}

	term := taxonomy.NewTerm(s.taxonomies).SetTaxonomy(tax).SetSlug(slug)
	if err := term.Validate(); err != nil {
		return nil, err
	}
	return term, nil
}

// Find returns a stored term.
func (s *TermService) Find(ctx context.Context, taxonomyHandle, slug string) (*taxonomy.Term, error) {
	id := taxonomy.TermID(taxonomyHandle, slug)
	s.logger.InfoContext(ctx, "fetching term", slog.String("term", id))

	term, err := s.terms.Find(ctx, id)
	if err != nil {
		s.logError(ctx, "failed to fetch term", "FindTerm", id, err)
		return nil, err
	}
	return term, nil
}

// TermBlueprints returns the blueprints available to terms of a taxonomy.
func (s *TermService) TermBlueprints(ctx context.Context, taxonomyHandle string) ([]*fields.Fieldset, error) {
	tax, err := s.Taxonomy(ctx, taxonomyHandle)
	if err != nil {
		return nil, err
	}

	blueprints, err := tax.TermBlueprints(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list term blueprints",
			slog.String("operation", "TermBlueprints"),
			slog.String("taxonomy", taxonomyHandle),
			slog.Any("error", err),
		)
		return nil, err
	}
	return blueprints, nil
}

// Blueprint resolves the blueprint governing the term. Absence is not
// logged as a failure.
func (s *TermService) Blueprint(ctx context.Context, term *taxonomy.Term) (*fields.Fieldset, error) {
	bp, err := term.Blueprint(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logError(ctx, "failed to resolve term blueprint", "TermBlueprint", term.ID(), err)
	}
	return bp, err
}

// Save persists the term through the save lifecycle.
func (s *TermService) Save(ctx context.Context, term *taxonomy.Term) (bool, error) {
	return s.save(ctx, term, false)
}

// SaveQuietly persists the term without dispatching events.
func (s *TermService) SaveQuietly(ctx context.Context, term *taxonomy.Term) (bool, error) {
	return s.save(ctx, term, true)
}

func (s *TermService) save(ctx context.Context, term *taxonomy.Term, quiet bool) (bool, error) {
	s.logger.InfoContext(ctx, "saving term",
		slog.String("term", term.ID()),
		slog.Bool("quiet", quiet),
	)

	if err := term.Validate(); err != nil {
		return false, err
	}

	saved, err := s.saver.Save(ctx, term, lifecycle.Quiet(quiet))
	if err != nil {
		s.logError(ctx, "failed to save term", "SaveTerm", term.ID(), err)
		return false, err
	}
	if !saved {
		s.logger.InfoContext(ctx, "term save vetoed", slog.String("term", term.ID()))
	}
	return saved, nil
}

// Delete removes the term and dispatches term.deleted.
func (s *TermService) Delete(ctx context.Context, term *taxonomy.Term) error {
	s.logger.InfoContext(ctx, "deleting term", slog.String("term", term.ID()))

	if err := s.saver.Delete(ctx, term); err != nil {
		s.logError(ctx, "failed to delete term", "DeleteTerm", term.ID(), err)
		return err
	}
	return nil
}

// EntriesCount asks the repository how many entries reference the term.
func (s *TermService) EntriesCount(ctx context.Context, term *taxonomy.Term) (int, error) {
	n, err := s.terms.EntriesCount(ctx, term)
	if err != nil {
		s.logError(ctx, "failed to count term entries", "EntriesCount", term.ID(), err)
		return 0, err
	}
	return n, nil
}

// EntriesCounts counts the entries of several terms concurrently. The terms
// need not be stored. Per-slug failures are joined into the returned error;
// successful counts are still returned.
func (s *TermService) EntriesCounts(ctx context.Context, taxonomyHandle string, slugs []string) (map[string]int, error) {
	s.logger.InfoContext(ctx, "counting term entries",
		slog.String("taxonomy", taxonomyHandle),
		slog.Int("terms", len(slugs)),
	)

	tax, err := s.Taxonomy(ctx, taxonomyHandle)
	if err != nil {
		return nil, err
	}

	counts, failed := fanout.Each(ctx, s.workers, slugs, func(ctx context.Context, slug string) (int, error) {
		return s.EntriesCount(ctx, tax.MakeTerm(slug))
	})

	var errs []error
	for _, slug := range slugs {
		if err, ok := failed[slug]; ok {
			errs = append(errs, fmt.Errorf("term %q: %w", slug, err))
			delete(failed, slug)
		}
	}
	return counts, errors.Join(errs...)
}

func (s *TermService) logError(ctx context.Context, msg, op, id string, err error) {
	s.logger.ErrorContext(ctx, msg,
		slog.String("operation", op),
		slog.String("term", id),
		slog.Any("error", err),
	)
}
