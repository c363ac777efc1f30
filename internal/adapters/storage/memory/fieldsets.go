// Package memory provides in-memory repositories for fieldsets, terms, and
// taxonomies. Entities are deep-cloned on the way in and out, so callers
// never share mutable state (including a term's memoized blueprint) through
// the repository. All repositories are safe for concurrent use. Nothing
// survives a restart; the server uses this driver for development and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time interface check.
var _ ports.FieldsetRepository = (*FieldsetRepository)(nil)

// FieldsetRepository implements [ports.FieldsetRepository] in memory.
// Fieldsets of a namespace are listed in handle order.
type FieldsetRepository struct {
	mu        sync.RWMutex
	fieldsets map[string]*fields.Fieldset
}

// NewFieldsetRepository creates an empty FieldsetRepository.
func NewFieldsetRepository() *FieldsetRepository {
	return &FieldsetRepository{fieldsets: make(map[string]*fields.Fieldset)}
}

// Find implements [ports.FieldsetRepository].
func (r *FieldsetRepository) Find(_ context.Context, key string) (*fields.Fieldset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fs, ok := r.fieldsets[strings.Trim(key, "/")]
	if !ok {
		return nil, fmt.Errorf("fieldset %q: %w", key, domain.ErrNotFound)
	}
	return fs.Clone(), nil
}

// All implements [ports.FieldsetRepository].
func (r *FieldsetRepository) All(ctx context.Context) ([]*fields.Fieldset, error) {
	return r.In(ctx, "")
}

// In implements [ports.FieldsetRepository].
func (r *FieldsetRepository) In(_ context.Context, namespace string) ([]*fields.Fieldset, error) {
	namespace = strings.Trim(namespace, "/")

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*fields.Fieldset, 0)
	for _, fs := range r.fieldsets {
		if fs.Namespace() == namespace {
			out = append(out, fs.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle() < out[j].Handle() })
	return out, nil
}

// Save implements [ports.FieldsetRepository].
func (r *FieldsetRepository) Save(_ context.Context, fs *fields.Fieldset) error {
	if fs.Handle() == "" {
		return &domain.ValidationError{Fields: map[string]string{"handle": domain.MsgRequired}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fieldsets[fs.Key()] = fs.Clone()
	return nil
}

// Delete implements [ports.FieldsetRepository].
func (r *FieldsetRepository) Delete(_ context.Context, fs *fields.Fieldset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.fieldsets, fs.Key())
	return nil
}
