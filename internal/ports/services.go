package ports

import (
	"context"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
)

// FieldsetService defines the service port for fieldsets and blueprints.
// Implemented by the application layer; called by inbound adapters (handlers).
type FieldsetService interface {
	// Make creates an unsaved fieldset with the given handle.
	Make(handle string) *fields.Fieldset

	// Find returns the fieldset stored under key ("seo" or
	// "taxonomies/tags/tag").
	// Returns domain.ErrNotFound if the fieldset does not exist.
	Find(ctx context.Context, key string) (*fields.Fieldset, error)

	// All returns every top-level fieldset ordered by handle.
	All(ctx context.Context) ([]*fields.Fieldset, error)

	// In returns the blueprints stored in a namespace, in order.
	In(ctx context.Context, namespace string) ([]*fields.Fieldset, error)

	// Save persists the fieldset and dispatches its lifecycle events.
	// Returns false with a nil error when a saving listener vetoed the save.
	Save(ctx context.Context, fieldset *fields.Fieldset) (bool, error)

	// SaveQuietly persists the fieldset without dispatching any event.
	SaveQuietly(ctx context.Context, fieldset *fields.Fieldset) (bool, error)

	// Delete removes the fieldset and dispatches fieldset.deleted.
	Delete(ctx context.Context, fieldset *fields.Fieldset) error
}

// TermService defines the service port for taxonomies and their terms.
type TermService interface {
	// Taxonomies returns every registered taxonomy ordered by handle.
	Taxonomies(ctx context.Context) ([]*taxonomy.Taxonomy, error)

	// Taxonomy returns the taxonomy with the given handle.
	// Returns domain.ErrNotFound if the taxonomy does not exist.
	Taxonomy(ctx context.Context, handle string) (*taxonomy.Taxonomy, error)

	// Make creates an unsaved term in the given taxonomy.
	// Returns domain.ErrNotFound if the taxonomy does not exist.
	Make(ctx context.Context, taxonomyHandle, slug string) (*taxonomy.Term, error)

	// Find returns a stored term.
	// Returns domain.ErrNotFound if the term does not exist.
	Find(ctx context.Context, taxonomyHandle, slug string) (*taxonomy.Term, error)

	// TermBlueprints returns the blueprints available to terms of a taxonomy.
	TermBlueprints(ctx context.Context, taxonomyHandle string) ([]*fields.Fieldset, error)

	// Blueprint resolves the blueprint governing the term.
	// Returns domain.ErrNotFound if no blueprint applies.
	Blueprint(ctx context.Context, term *taxonomy.Term) (*fields.Fieldset, error)

	// Save persists the term and dispatches its lifecycle events.
	// Returns false with a nil error when a saving listener vetoed the save.
	Save(ctx context.Context, term *taxonomy.Term) (bool, error)

	// SaveQuietly persists the term without dispatching any event.
	SaveQuietly(ctx context.Context, term *taxonomy.Term) (bool, error)

	// Delete removes the term and dispatches term.deleted.
	Delete(ctx context.Context, term *taxonomy.Term) error

	// EntriesCount returns how many entries reference the term. Every call
	// asks the repository.
	EntriesCount(ctx context.Context, term *taxonomy.Term) (int, error)

	// EntriesCounts returns the entries count of several terms of one
	// taxonomy, keyed by slug.
	EntriesCounts(ctx context.Context, taxonomyHandle string, slugs []string) (map[string]int, error)
}
