// Package taxonomy models taxonomies and their terms, and decides which
// blueprint governs a term.
//
// Resolution precedence for a term's blueprint:
//
//  1. an override set directly on the term (Term.SetBlueprint)
//  2. the reserved "blueprint" key of the term's data
//  3. the taxonomy's policy, by default the first visible blueprint in the
//     taxonomy's namespace ("taxonomies/<handle>")
//
// The handle found in steps 1-2 (or none) is handed to the taxonomy's policy,
// so a custom policy can replace the whole fallback behavior.
package taxonomy

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
)

// NamespacePrefix is prepended to a taxonomy handle to form the namespace
// its term blueprints live in.
const NamespacePrefix = "taxonomies/"

// BlueprintLister lists the blueprints stored in a namespace, in order.
type BlueprintLister interface {
	In(ctx context.Context, namespace string) ([]*fields.Fieldset, error)
}

// Policy decides which blueprint governs a term. explicit is the handle
// requested by the term itself, empty when the term requests none.
type Policy func(ctx context.Context, explicit string, term *Term) (*fields.Fieldset, error)

// Taxonomy groups terms and owns the blueprint policy for them.
type Taxonomy struct {
	handle     string
	title      string
	blueprints BlueprintLister
	policy     Policy
}

// Option configures a Taxonomy.
type Option func(*Taxonomy)

// WithTitle sets the taxonomy's display title.
func WithTitle(title string) Option {
	return func(t *Taxonomy) { t.title = title }
}

// WithTermBlueprintPolicy replaces the default blueprint policy.
func WithTermBlueprintPolicy(p Policy) Option {
	return func(t *Taxonomy) { t.policy = p }
}

// New creates a Taxonomy whose term blueprints are listed by blueprints.
func New(handle string, blueprints BlueprintLister, opts ...Option) *Taxonomy {
	t := &Taxonomy{handle: handle, blueprints: blueprints}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Handle returns the taxonomy's handle.
func (t *Taxonomy) Handle() string { return t.handle }

// Title returns the configured title or the humanized handle.
func (t *Taxonomy) Title() string {
	if t.title != "" {
		return t.title
	}
	return domain.Humanize(t.handle)
}

// Validate checks business rules for the Taxonomy entity.
func (t *Taxonomy) Validate() error {
	if t.handle == "" {
		return &domain.ValidationError{Fields: map[string]string{"handle": domain.MsgRequired}}
	}
	return nil
}

// BlueprintNamespace returns the namespace holding the term blueprints.
func (t *Taxonomy) BlueprintNamespace() string {
	return NamespacePrefix + t.handle
}

// TermBlueprints lists every blueprint in the taxonomy's namespace.
func (t *Taxonomy) TermBlueprints(ctx context.Context) ([]*fields.Fieldset, error) {
	if t.blueprints == nil {
		return nil, nil
	}
	return t.blueprints.In(ctx, t.BlueprintNamespace())
}

// MakeTerm creates a term in this taxonomy.
func (t *Taxonomy) MakeTerm(slug string) *Term {
	return NewTerm(nil).SetTaxonomy(t).SetSlug(slug)
}

// TermBlueprint applies the taxonomy's policy. It returns an error wrapping
// domain.ErrNotFound when no blueprint applies.
func (t *Taxonomy) TermBlueprint(ctx context.Context, explicit string, term *Term) (*fields.Fieldset, error) {
	if t.policy != nil {
		return t.policy(ctx, explicit, term)
	}
	return t.DefaultTermBlueprint(ctx, explicit)
}

// DefaultTermBlueprint is the built-in policy: the blueprint named by
// explicit when set, otherwise the first blueprint not marked hidden.
func (t *Taxonomy) DefaultTermBlueprint(ctx context.Context, explicit string) (*fields.Fieldset, error) {
	blueprints, err := t.TermBlueprints(ctx)
	if err != nil {
		return nil, err
	}

	if explicit != "" {
		for _, bp := range blueprints {
			if bp.Handle() == explicit {
				return bp, nil
			}
		}
		return nil, fmt.Errorf("blueprint %q in %s: %w", explicit, t.BlueprintNamespace(), domain.ErrNotFound)
	}

	for _, bp := range blueprints {
		if !bp.Hidden() {
			return bp, nil
		}
	}
	return nil, fmt.Errorf("no blueprints in %s: %w", t.BlueprintNamespace(), domain.ErrNotFound)
}
