package dto

import (
	"encoding/json"
	"strings"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/yamlvalue"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
)

const msgMustNotEmpty = "must not be empty"

// SaveFieldsetRequest represents the JSON body for creating or replacing a
// fieldset or blueprint. Fields accepts the list form or the legacy object
// keyed by handle; legacy objects keep the order they were written in. JSON
// is a subset of YAML, so the raw value goes through the same order-keeping
// decoder as flat-file documents.
type SaveFieldsetRequest struct {
	Title  string          `json:"title,omitempty"`
	Hide   bool            `json:"hide,omitempty"`
	Fields json.RawMessage `json:"fields,omitempty"`

	entries []fields.Entry
}

// Validate decodes and normalizes the field list.
// Returns a *domain.ValidationError if any checks fail.
func (r *SaveFieldsetRequest) Validate() error {
	raw, err := yamlvalue.Decode(r.Fields)
	if err != nil {
		return &domain.ValidationError{Fields: map[string]string{fields.KeyFields: err.Error()}}
	}

	entries, err := fields.Normalize(raw)
	if err != nil {
		return err
	}
	r.entries = entries
	return nil
}

// Contents returns the fieldset contents described by the request. Validate
// must have succeeded first.
func (r *SaveFieldsetRequest) Contents() map[string]any {
	contents := map[string]any{fields.KeyFields: r.entries}
	if title := strings.TrimSpace(r.Title); title != "" {
		contents[fields.KeyTitle] = title
	}
	if r.Hide {
		contents[fields.KeyHide] = true
	}
	return contents
}

// SaveTermRequest represents the JSON body for creating or replacing a term.
type SaveTermRequest struct {
	Title     string         `json:"title,omitempty"`
	Blueprint *string        `json:"blueprint,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *SaveTermRequest) Validate() error {
	invalid := make(map[string]string)

	if r.Blueprint != nil && strings.TrimSpace(*r.Blueprint) == "" {
		invalid["blueprint"] = msgMustNotEmpty
	}

	if len(invalid) > 0 {
		return &domain.ValidationError{Fields: invalid}
	}
	return nil
}

// TermData returns the term data described by the request, with the title
// merged in.
func (r *SaveTermRequest) TermData() map[string]any {
	data := make(map[string]any, len(r.Data)+1)
	for k, v := range r.Data {
		data[k] = v
	}
	if title := strings.TrimSpace(r.Title); title != "" {
		data["title"] = title
	}
	return data
}
