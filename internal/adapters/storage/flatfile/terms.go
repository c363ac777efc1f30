package flatfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time interface check.
var _ ports.TermRepository = (*TermRepository)(nil)

// TermRepository implements [ports.TermRepository] on a Store. Terms live
// under taxonomies/<taxonomy>/<slug>.yaml.
//
// EntriesCount scans entries/ on every call: an entry references a term when
// the value under the taxonomy's handle is the term's slug or a list
// containing it.
type TermRepository struct {
	store      *Store
	taxonomies taxonomy.Finder
}

// NewTermRepository creates a TermRepository backed by store. Loaded terms
// resolve their taxonomy through taxonomies.
func NewTermRepository(store *Store, taxonomies taxonomy.Finder) *TermRepository {
	return &TermRepository{store: store, taxonomies: taxonomies}
}

// Find implements [ports.TermRepository].
func (r *TermRepository) Find(ctx context.Context, id string) (*taxonomy.Term, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	taxHandle, slug, ok := strings.Cut(id, "::")
	if !ok {
		return nil, &domain.ValidationError{Fields: map[string]string{"id": fmt.Sprintf("want <taxonomy>::<slug>, got %q", id)}}
	}

	path, err := r.store.path(dirTerms, taxHandle, slug+ext)
	if err != nil {
		return nil, err
	}

	data, err := r.store.read(path)
	if err != nil {
		return nil, fmt.Errorf("term %q: %w", id, err)
	}
	return DecodeTerm(r.taxonomies, taxHandle, slug, data)
}

// Save implements [ports.TermRepository].
func (r *TermRepository) Save(ctx context.Context, term *taxonomy.Term) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := term.Validate(); err != nil {
		return err
	}

	path, err := r.store.path(dirTerms, term.TaxonomyHandle(), term.Slug()+ext)
	if err != nil {
		return err
	}

	data, err := EncodeTerm(term)
	if err != nil {
		return err
	}
	if err := r.store.write(path, data); err != nil {
		return fmt.Errorf("saving term %q: %w", term.ID(), err)
	}
	return nil
}

// Delete implements [ports.TermRepository].
func (r *TermRepository) Delete(ctx context.Context, term *taxonomy.Term) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.store.path(dirTerms, term.TaxonomyHandle(), term.Slug()+ext)
	if err != nil {
		return err
	}
	if err := r.store.remove(path); err != nil {
		return fmt.Errorf("deleting term %q: %w", term.ID(), err)
	}
	return nil
}

// EntriesCount implements [ports.TermRepository].
func (r *TermRepository) EntriesCount(ctx context.Context, term *taxonomy.Term) (int, error) {
	root, err := r.store.path(dirEntries)
	if err != nil {
		return 0, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == root {
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ext || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		refs, err := readEntryRefs(path, term.TaxonomyHandle())
		if err != nil {
			return err
		}
		for _, ref := range refs {
			if ref == term.Slug() {
				count++
				break
			}
		}
		return nil
	})
	if walkErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		if errors.Is(walkErr, domain.ErrValidation) {
			return 0, walkErr
		}
		return 0, fmt.Errorf("counting entries of term %q: %w", term.ID(), translateFSError(walkErr))
	}
	return count, nil
}

// readEntryRefs returns the term slugs an entry document lists under key.
func readEntryRefs(path, key string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding entry %s: %w: %w", path, domain.ErrValidation, err)
	}

	switch v := doc[key].(type) {
	case string:
		return []string{v}, nil
	case []any:
		refs := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				refs = append(refs, s)
			}
		}
		return refs, nil
	default:
		return nil, nil
	}
}
