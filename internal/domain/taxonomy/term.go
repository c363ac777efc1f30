package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
)

// KeyBlueprint is the reserved data key a term can name its blueprint with.
const KeyBlueprint = "blueprint"

// Finder resolves a taxonomy by handle.
type Finder interface {
	FindByHandle(ctx context.Context, handle string) (*Taxonomy, error)
}

// Term is a content record belonging to exactly one taxonomy.
//
// The resolved blueprint is memoized per instance. Only SetBlueprint clears
// the memo; other data changes, including writes to the "blueprint" data key,
// are not observed until the next SetBlueprint.
//
// A Term is not safe for concurrent use.
type Term struct {
	taxonomies     Finder
	taxonomyHandle string
	taxonomy       *Taxonomy

	slug      string
	data      map[string]any
	blueprint string

	resolved    bool
	resolvedBP  *fields.Fieldset
	resolvedErr error
	afterSave   []func(*Term)
}

// NewTerm creates an empty term. taxonomies resolves the owning taxonomy when
// it is set by handle; it may be nil when the taxonomy is set directly.
func NewTerm(taxonomies Finder) *Term {
	return &Term{taxonomies: taxonomies, data: map[string]any{}}
}

// SetTaxonomy attaches the term to a taxonomy.
func (t *Term) SetTaxonomy(tax *Taxonomy) *Term {
	t.taxonomy = tax
	t.taxonomyHandle = tax.Handle()
	return t
}

// SetTaxonomyHandle attaches the term to the taxonomy with the given handle,
// resolved lazily.
func (t *Term) SetTaxonomyHandle(handle string) *Term {
	if t.taxonomyHandle != handle {
		t.taxonomy = nil
	}
	t.taxonomyHandle = handle
	return t
}

// TaxonomyHandle returns the handle of the owning taxonomy.
func (t *Term) TaxonomyHandle() string { return t.taxonomyHandle }

// Taxonomy returns the owning taxonomy, resolving it by handle when needed.
func (t *Term) Taxonomy(ctx context.Context) (*Taxonomy, error) {
	if t.taxonomy != nil {
		return t.taxonomy, nil
	}
	if t.taxonomyHandle == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"taxonomy": domain.MsgRequired}}
	}
	if t.taxonomies == nil {
		return nil, fmt.Errorf("taxonomy %q: no finder configured: %w", t.taxonomyHandle, domain.ErrNotFound)
	}

	tax, err := t.taxonomies.FindByHandle(ctx, t.taxonomyHandle)
	if err != nil {
		return nil, err
	}
	t.taxonomy = tax
	return tax, nil
}

// SetSlug sets the term's slug.
func (t *Term) SetSlug(slug string) *Term {
	t.slug = slug
	return t
}

// Slug returns the term's slug, unique within its taxonomy.
func (t *Term) Slug() string { return t.slug }

// ID identifies the term across taxonomies as "<taxonomy>::<slug>".
func (t *Term) ID() string {
	return TermID(t.taxonomyHandle, t.slug)
}

// TermID builds the ID of the term with the given slug in a taxonomy.
func TermID(taxonomyHandle, slug string) string {
	return taxonomyHandle + "::" + slug
}

// Key is the identity the term is persisted under.
func (t *Term) Key() string { return t.ID() }

// Title returns the "title" data value, or the slug.
func (t *Term) Title() string {
	if title, ok := t.data["title"].(string); ok && title != "" {
		return title
	}
	return t.slug
}

// Validate checks business rules for the Term entity.
func (t *Term) Validate() error {
	invalid := make(map[string]string)

	if t.taxonomyHandle == "" {
		invalid["taxonomy"] = domain.MsgRequired
	}
	if t.slug == "" {
		invalid["slug"] = domain.MsgRequired
	}

	if len(invalid) > 0 {
		return &domain.ValidationError{Fields: invalid}
	}
	return nil
}

// Data returns a shallow copy of the term's data.
func (t *Term) Data() map[string]any {
	return maps.Clone(t.data)
}

// SetData replaces the term's data.
func (t *Term) SetData(data map[string]any) *Term {
	t.data = maps.Clone(data)
	if t.data == nil {
		t.data = map[string]any{}
	}
	return t
}

// Merge sets every key of data on the term.
func (t *Term) Merge(data map[string]any) *Term {
	maps.Copy(t.data, data)
	return t
}

// Get returns a single data value.
func (t *Term) Get(key string) (any, bool) {
	v, ok := t.data[key]
	return v, ok
}

// Set stores a single data value. It does not clear the memoized blueprint.
func (t *Term) Set(key string, value any) *Term {
	t.data[key] = value
	return t
}

// SetBlueprint sets the explicit blueprint override and clears the memoized
// blueprint so the next Blueprint call resolves again.
func (t *Term) SetBlueprint(handle string) *Term {
	t.blueprint = handle
	t.resolved = false
	t.resolvedBP = nil
	t.resolvedErr = nil
	return t
}

// BlueprintHandle returns the handle the term asks for: the explicit override,
// else a non-empty string under the "blueprint" data key, else "".
func (t *Term) BlueprintHandle() string {
	if t.blueprint != "" {
		return t.blueprint
	}
	if h, ok := t.data[KeyBlueprint].(string); ok {
		return h
	}
	return ""
}

// Blueprint resolves the blueprint governing the term through the owning
// taxonomy's policy. The result, including absence (an error wrapping
// domain.ErrNotFound), is memoized; other errors are returned uncached.
func (t *Term) Blueprint(ctx context.Context) (*fields.Fieldset, error) {
	if t.resolved {
		return t.resolvedBP, t.resolvedErr
	}

	tax, err := t.Taxonomy(ctx)
	if err != nil {
		return nil, err
	}

	bp, err := tax.TermBlueprint(ctx, t.BlueprintHandle(), t)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if bp == nil && err == nil {
		err = fmt.Errorf("blueprint for term %q: %w", t.ID(), domain.ErrNotFound)
	}

	t.resolved = true
	t.resolvedBP = bp
	t.resolvedErr = err
	return bp, err
}

// Clone returns a copy of the term's identity and data. The copy starts
// with no memoized blueprint and no pending after-save callbacks.
func (t *Term) Clone() *Term {
	return &Term{
		taxonomies:     t.taxonomies,
		taxonomyHandle: t.taxonomyHandle,
		taxonomy:       t.taxonomy,
		slug:           t.slug,
		data:           domain.CloneData(t.data),
		blueprint:      t.blueprint,
	}
}

// AfterSave queues a callback to run once after the next successful save.
func (t *Term) AfterSave(cb func(*Term)) *Term {
	t.afterSave = append(t.afterSave, cb)
	return t
}

// TakeAfterSave returns the queued callbacks and clears the queue.
func (t *Term) TakeAfterSave() []func(*Term) {
	cbs := t.afterSave
	t.afterSave = nil
	return cbs
}
