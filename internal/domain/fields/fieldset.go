// Package fields models field schemas: fieldsets shared across content types
// and the blueprints that govern individual records. Both are a handle plus a
// contents mapping whose "fields" key is always an ordered list of
// {handle, field} entries.
package fields

import (
	"maps"
	"strings"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
)

// Reserved contents keys.
const (
	KeyFields = "fields"
	KeyTitle  = "title"
	KeyHide   = "hide"
)

// Fieldset is a named collection of field definitions. Blueprints are
// fieldsets stored in a namespace such as "taxonomies/tags".
//
// A Fieldset is not safe for concurrent use.
type Fieldset struct {
	handle    string
	namespace string
	contents  map[string]any
	afterSave []func(*Fieldset)
}

// NewFieldset creates an empty fieldset with the given handle.
func NewFieldset(handle string) *Fieldset {
	return &Fieldset{
		handle:   handle,
		contents: map[string]any{KeyFields: []Entry{}},
	}
}

// SetHandle sets the fieldset's handle.
func (f *Fieldset) SetHandle(handle string) *Fieldset {
	f.handle = handle
	return f
}

// Handle returns the fieldset's handle.
func (f *Fieldset) Handle() string { return f.handle }

// SetNamespace places the fieldset in a namespace ("taxonomies/tags").
func (f *Fieldset) SetNamespace(namespace string) *Fieldset {
	f.namespace = strings.Trim(namespace, "/")
	return f
}

// Namespace returns the fieldset's namespace, empty for top-level fieldsets.
func (f *Fieldset) Namespace() string { return f.namespace }

// Key identifies the fieldset within its repository.
func (f *Fieldset) Key() string {
	if f.namespace == "" {
		return f.handle
	}
	return f.namespace + "/" + f.handle
}

// SetContents replaces the fieldset's contents. The "fields" value is
// normalized to []Entry; see Normalize for the accepted shapes.
func (f *Fieldset) SetContents(contents map[string]any) error {
	entries, err := Normalize(contents[KeyFields])
	if err != nil {
		return err
	}

	c := make(map[string]any, len(contents)+1)
	maps.Copy(c, contents)
	c[KeyFields] = entries

	f.contents = c
	return nil
}

// Contents returns a shallow copy of the contents mapping.
func (f *Fieldset) Contents() map[string]any {
	return maps.Clone(f.contents)
}

// Entries returns the normalized field list.
func (f *Fieldset) Entries() []Entry {
	entries, _ := f.contents[KeyFields].([]Entry)
	return entries
}

// Title returns the configured title or the humanized handle.
func (f *Fieldset) Title() string {
	if t, ok := f.contents[KeyTitle].(string); ok && t != "" {
		return t
	}
	return domain.Humanize(f.handle)
}

// Hidden reports whether the blueprint is excluded from default selection.
func (f *Fieldset) Hidden() bool {
	hidden, _ := f.contents[KeyHide].(bool)
	return hidden
}

// Fields wraps the field list in a lookup collection.
func (f *Fieldset) Fields() *Fields {
	return NewFields(f.Entries())
}

// Field returns the definition with the given handle.
func (f *Fieldset) Field(handle string) (*Field, bool) {
	return f.Fields().Get(handle)
}

// Clone returns a deep copy of f: nested field config and every other
// contents value are copied too. Pending after-save callbacks are not copied.
func (f *Fieldset) Clone() *Fieldset {
	return &Fieldset{
		handle:    f.handle,
		namespace: f.namespace,
		contents:  domain.CloneData(f.contents),
	}
}

// AfterSave queues a callback to run once after the next successful save.
// Callbacks run in registration order.
func (f *Fieldset) AfterSave(cb func(*Fieldset)) *Fieldset {
	f.afterSave = append(f.afterSave, cb)
	return f
}

// TakeAfterSave returns the queued callbacks and clears the queue.
func (f *Fieldset) TakeAfterSave() []func(*Fieldset) {
	cbs := f.afterSave
	f.afterSave = nil
	return cbs
}
