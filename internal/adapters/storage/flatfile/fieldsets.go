package flatfile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time interface check.
var _ ports.FieldsetRepository = (*FieldsetRepository)(nil)

// FieldsetRepository implements [ports.FieldsetRepository] on a Store.
// Top-level fieldsets live under fieldsets/, namespaced blueprints under
// blueprints/<namespace>/.
type FieldsetRepository struct {
	store *Store
}

// NewFieldsetRepository creates a FieldsetRepository backed by store.
func NewFieldsetRepository(store *Store) *FieldsetRepository {
	return &FieldsetRepository{store: store}
}

// Find implements [ports.FieldsetRepository].
func (r *FieldsetRepository) Find(ctx context.Context, key string) (*fields.Fieldset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	namespace, handle := splitKey(key)
	path, err := r.filePath(namespace, handle)
	if err != nil {
		return nil, err
	}

	data, err := r.store.read(path)
	if err != nil {
		return nil, fmt.Errorf("fieldset %q: %w", key, err)
	}
	return DecodeFieldset(handle, namespace, data)
}

// All implements [ports.FieldsetRepository].
func (r *FieldsetRepository) All(ctx context.Context) ([]*fields.Fieldset, error) {
	return r.In(ctx, "")
}

// In implements [ports.FieldsetRepository].
func (r *FieldsetRepository) In(ctx context.Context, namespace string) ([]*fields.Fieldset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := r.dir(namespace)
	if err != nil {
		return nil, err
	}

	handles, err := r.store.list(dir)
	if err != nil {
		return nil, fmt.Errorf("listing namespace %q: %w", namespace, err)
	}

	out := make([]*fields.Fieldset, 0, len(handles))
	for _, handle := range handles {
		data, err := r.store.read(filepath.Join(dir, handle+ext))
		if err != nil {
			return nil, fmt.Errorf("fieldset %q: %w", handle, err)
		}
		fs, err := DecodeFieldset(handle, namespace, data)
		if err != nil {
			return nil, err
		}
		out = append(out, fs)
	}
	return out, nil
}

// Save implements [ports.FieldsetRepository].
func (r *FieldsetRepository) Save(ctx context.Context, fs *fields.Fieldset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.filePath(fs.Namespace(), fs.Handle())
	if err != nil {
		return err
	}

	data, err := EncodeFieldset(fs)
	if err != nil {
		return err
	}
	if err := r.store.write(path, data); err != nil {
		return fmt.Errorf("saving fieldset %q: %w", fs.Key(), err)
	}
	return nil
}

// Delete implements [ports.FieldsetRepository].
func (r *FieldsetRepository) Delete(ctx context.Context, fs *fields.Fieldset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.filePath(fs.Namespace(), fs.Handle())
	if err != nil {
		return err
	}
	if err := r.store.remove(path); err != nil {
		return fmt.Errorf("deleting fieldset %q: %w", fs.Key(), err)
	}
	return nil
}

func (r *FieldsetRepository) dir(namespace string) (string, error) {
	segs, err := namespaceSegments(namespace)
	if err != nil {
		return "", err
	}
	if len(segs) == 0 {
		return r.store.path(dirFieldsets)
	}
	return r.store.path(append([]string{dirBlueprints}, segs...)...)
}

func (r *FieldsetRepository) filePath(namespace, handle string) (string, error) {
	dir, err := r.dir(namespace)
	if err != nil {
		return "", err
	}
	if err := checkSegment(handle); err != nil {
		return "", err
	}
	return filepath.Join(dir, handle+ext), nil
}

// splitKey splits "taxonomies/tags/tag" into its namespace and handle.
func splitKey(key string) (namespace, handle string) {
	key = strings.Trim(key, "/")
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}
