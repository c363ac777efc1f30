package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaxonomyRepository = (*TaxonomyRepository)(nil)
	_ taxonomy.Finder          = (*TaxonomyRepository)(nil)
)

// TaxonomyRepository implements [ports.TaxonomyRepository] in memory.
// Taxonomies are registered at startup and treated as immutable, so they are
// stored by reference.
type TaxonomyRepository struct {
	mu         sync.RWMutex
	taxonomies map[string]*taxonomy.Taxonomy
}

// NewTaxonomyRepository creates an empty TaxonomyRepository.
func NewTaxonomyRepository() *TaxonomyRepository {
	return &TaxonomyRepository{taxonomies: make(map[string]*taxonomy.Taxonomy)}
}

// FindByHandle implements [ports.TaxonomyRepository].
func (r *TaxonomyRepository) FindByHandle(_ context.Context, handle string) (*taxonomy.Taxonomy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tax, ok := r.taxonomies[handle]
	if !ok {
		return nil, fmt.Errorf("taxonomy %q: %w", handle, domain.ErrNotFound)
	}
	return tax, nil
}

// Save implements [ports.TaxonomyRepository].
func (r *TaxonomyRepository) Save(_ context.Context, tax *taxonomy.Taxonomy) error {
	if err := tax.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.taxonomies[tax.Handle()] = tax
	return nil
}

// All returns every registered taxonomy ordered by handle.
func (r *TaxonomyRepository) All(_ context.Context) ([]*taxonomy.Taxonomy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*taxonomy.Taxonomy, 0, len(r.taxonomies))
	for _, tax := range r.taxonomies {
		out = append(out, tax)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle() < out[j].Handle() })
	return out, nil
}
