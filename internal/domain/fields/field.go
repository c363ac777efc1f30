package fields

import "github.com/jsamuelsen11/go-content-blueprints/internal/domain"

const defaultFieldType = "text"

// Field is a single field definition within a fieldset.
type Field struct {
	handle string
	config map[string]any
}

// NewField creates a Field. A nil config is treated as empty.
func NewField(handle string, config map[string]any) *Field {
	if config == nil {
		config = map[string]any{}
	}
	return &Field{handle: handle, config: config}
}

// Handle returns the field's handle.
func (f *Field) Handle() string { return f.handle }

// Config returns the raw field configuration.
func (f *Field) Config() map[string]any { return f.config }

// Get returns a single configuration value.
func (f *Field) Get(key string) (any, bool) {
	v, ok := f.config[key]
	return v, ok
}

// Type returns the configured fieldtype, "text" when unset.
func (f *Field) Type() string {
	if t, ok := f.config["type"].(string); ok && t != "" {
		return t
	}
	return defaultFieldType
}

// Display returns the configured display name or the humanized handle.
func (f *Field) Display() string {
	if d, ok := f.config["display"].(string); ok && d != "" {
		return d
	}
	return domain.Humanize(f.handle)
}

// Fields is an ordered, handle-indexed collection of field definitions.
type Fields struct {
	items    []*Field
	byHandle map[string]*Field
}

// NewFields builds a collection from normalized entries. When a handle
// appears more than once the last definition wins the lookup, while
// iteration order keeps the first position.
func NewFields(entries []Entry) *Fields {
	fs := &Fields{
		items:    make([]*Field, 0, len(entries)),
		byHandle: make(map[string]*Field, len(entries)),
	}
	for _, e := range entries {
		f := NewField(e.Handle, e.Field)
		if _, seen := fs.byHandle[e.Handle]; !seen {
			fs.items = append(fs.items, f)
		} else {
			for i, existing := range fs.items {
				if existing.handle == e.Handle {
					fs.items[i] = f
				}
			}
		}
		fs.byHandle[e.Handle] = f
	}
	return fs
}

// All returns the fields in order.
func (fs *Fields) All() []*Field { return fs.items }

// Len returns the number of distinct fields.
func (fs *Fields) Len() int { return len(fs.items) }

// Get returns the field with the given handle.
func (fs *Fields) Get(handle string) (*Field, bool) {
	f, ok := fs.byHandle[handle]
	return f, ok
}

// Handles returns the field handles in order.
func (fs *Fields) Handles() []string {
	handles := make([]string, len(fs.items))
	for i, f := range fs.items {
		handles[i] = f.handle
	}
	return handles
}
