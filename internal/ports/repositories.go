package ports

import (
	"context"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
)

// FieldsetRepository persists fieldsets and namespaced blueprints.
// Implemented by the storage adapters; called by the application layer.
type FieldsetRepository interface {
	// Find returns the fieldset stored under key ("seo" or
	// "taxonomies/tags/tag").
	// Returns domain.ErrNotFound if no fieldset is stored under key.
	Find(ctx context.Context, key string) (*fields.Fieldset, error)

	// All returns every top-level fieldset (empty namespace), ordered by handle.
	All(ctx context.Context) ([]*fields.Fieldset, error)

	// In returns the fieldsets of a namespace in their stored order.
	// An unknown namespace yields an empty slice, not an error.
	In(ctx context.Context, namespace string) ([]*fields.Fieldset, error)

	// Save writes the fieldset, creating or replacing it.
	Save(ctx context.Context, fieldset *fields.Fieldset) error

	// Delete removes the fieldset. Deleting an absent fieldset is not an error.
	Delete(ctx context.Context, fieldset *fields.Fieldset) error
}

// TermRepository persists taxonomy terms.
type TermRepository interface {
	// Find returns the term with the given ID ("tags::go").
	// Returns domain.ErrNotFound if the term does not exist.
	Find(ctx context.Context, id string) (*taxonomy.Term, error)

	// Save writes the term, creating or replacing it.
	Save(ctx context.Context, term *taxonomy.Term) error

	// Delete removes the term. Deleting an absent term is not an error.
	Delete(ctx context.Context, term *taxonomy.Term) error

	// EntriesCount returns how many entries reference the term. Any caching
	// of the count is the repository's concern.
	EntriesCount(ctx context.Context, term *taxonomy.Term) (int, error)
}

// TaxonomyRepository resolves and stores taxonomies.
type TaxonomyRepository interface {
	// FindByHandle returns the taxonomy with the given handle.
	// Returns domain.ErrNotFound if the taxonomy does not exist.
	FindByHandle(ctx context.Context, handle string) (*taxonomy.Taxonomy, error)

	// All returns every taxonomy ordered by handle.
	All(ctx context.Context) ([]*taxonomy.Taxonomy, error)

	// Save writes the taxonomy, creating or replacing it.
	Save(ctx context.Context, tax *taxonomy.Taxonomy) error
}
