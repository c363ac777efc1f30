package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time interface check.
var _ ports.TermRepository = (*TermRepository)(nil)

// TermRepository implements [ports.TermRepository] in memory. Entry
// references are recorded with Tag and Untag.
type TermRepository struct {
	mu      sync.RWMutex
	terms   map[string]*taxonomy.Term
	entries map[string]map[string]struct{} // entry ID -> term IDs
}

// NewTermRepository creates an empty TermRepository.
func NewTermRepository() *TermRepository {
	return &TermRepository{
		terms:   make(map[string]*taxonomy.Term),
		entries: make(map[string]map[string]struct{}),
	}
}

// Find implements [ports.TermRepository].
func (r *TermRepository) Find(_ context.Context, id string) (*taxonomy.Term, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term, ok := r.terms[id]
	if !ok {
		return nil, fmt.Errorf("term %q: %w", id, domain.ErrNotFound)
	}
	return term.Clone(), nil
}

// Save implements [ports.TermRepository].
func (r *TermRepository) Save(_ context.Context, term *taxonomy.Term) error {
	if err := term.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms[term.ID()] = term.Clone()
	return nil
}

// Delete implements [ports.TermRepository].
func (r *TermRepository) Delete(_ context.Context, term *taxonomy.Term) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.terms, term.ID())
	return nil
}

// EntriesCount implements [ports.TermRepository]. It counts the entries
// currently tagged with the term.
func (r *TermRepository) EntriesCount(_ context.Context, term *taxonomy.Term) (int, error) {
	id := term.ID()

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, termIDs := range r.entries {
		if _, ok := termIDs[id]; ok {
			n++
		}
	}
	return n, nil
}

// Tag records that the entry references the given term IDs.
func (r *TermRepository) Tag(entryID string, termIDs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	refs, ok := r.entries[entryID]
	if !ok {
		refs = make(map[string]struct{}, len(termIDs))
		r.entries[entryID] = refs
	}
	for _, id := range termIDs {
		refs[id] = struct{}{}
	}
}

// TagSlugs records entry references given as term slugs keyed by taxonomy
// handle, the shape of the storage.entries configuration.
func (r *TermRepository) TagSlugs(entryID string, slugs map[string][]string) {
	termIDs := make([]string, 0, len(slugs))
	for handle, list := range slugs {
		for _, slug := range list {
			termIDs = append(termIDs, taxonomy.TermID(handle, slug))
		}
	}
	r.Tag(entryID, termIDs...)
}

// Untag forgets every term reference of the entry.
func (r *TermRepository) Untag(entryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, entryID)
}
