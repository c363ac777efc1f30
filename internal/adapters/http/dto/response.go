// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
)

// FieldsetResponse represents a fieldset or blueprint in HTTP responses.
type FieldsetResponse struct {
	Handle    string         `json:"handle"`
	Namespace string         `json:"namespace,omitempty"`
	Title     string         `json:"title"`
	Hidden    bool           `json:"hidden"`
	Fields    []fields.Entry `json:"fields"`
}

// FieldsetListResponse represents a list of fieldsets in HTTP responses.
type FieldsetListResponse struct {
	Fieldsets []FieldsetResponse `json:"fieldsets"`
	Count     int                `json:"count"`
}

// ToFieldsetResponse converts a domain Fieldset to an HTTP response DTO.
func ToFieldsetResponse(fs *fields.Fieldset) FieldsetResponse {
	return FieldsetResponse{
		Handle:    fs.Handle(),
		Namespace: fs.Namespace(),
		Title:     fs.Title(),
		Hidden:    fs.Hidden(),
		Fields:    fs.Entries(),
	}
}

// ToFieldsetListResponse converts domain fieldsets to an HTTP list response.
func ToFieldsetListResponse(list []*fields.Fieldset) FieldsetListResponse {
	items := make([]FieldsetResponse, len(list))
	for i, fs := range list {
		items[i] = ToFieldsetResponse(fs)
	}
	return FieldsetListResponse{Fieldsets: items, Count: len(items)}
}

// TaxonomyResponse represents a taxonomy in HTTP responses.
type TaxonomyResponse struct {
	Handle             string `json:"handle"`
	Title              string `json:"title"`
	BlueprintNamespace string `json:"blueprint_namespace"`
}

// TaxonomyListResponse represents a list of taxonomies in HTTP responses.
type TaxonomyListResponse struct {
	Taxonomies []TaxonomyResponse `json:"taxonomies"`
	Count      int                `json:"count"`
}

// ToTaxonomyListResponse converts domain taxonomies to an HTTP list response.
func ToTaxonomyListResponse(list []*taxonomy.Taxonomy) TaxonomyListResponse {
	items := make([]TaxonomyResponse, len(list))
	for i, tax := range list {
		items[i] = TaxonomyResponse{
			Handle:             tax.Handle(),
			Title:              tax.Title(),
			BlueprintNamespace: tax.BlueprintNamespace(),
		}
	}
	return TaxonomyListResponse{Taxonomies: items, Count: len(items)}
}

// TermResponse represents a taxonomy term in HTTP responses. Blueprint is
// the handle the term asks for, empty when the taxonomy default applies.
type TermResponse struct {
	ID        string         `json:"id"`
	Taxonomy  string         `json:"taxonomy"`
	Slug      string         `json:"slug"`
	Title     string         `json:"title"`
	Blueprint string         `json:"blueprint,omitempty"`
	Data      map[string]any `json:"data"`
}

// ToTermResponse converts a domain Term to an HTTP response DTO.
func ToTermResponse(t *taxonomy.Term) TermResponse {
	return TermResponse{
		ID:        t.ID(),
		Taxonomy:  t.TaxonomyHandle(),
		Slug:      t.Slug(),
		Title:     t.Title(),
		Blueprint: t.BlueprintHandle(),
		Data:      t.Data(),
	}
}

// EntriesCountResponse reports how many entries reference a term.
type EntriesCountResponse struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// EntriesCountsResponse reports entry counts for several terms of one
// taxonomy. Error is set when some counts could not be computed; those slugs
// are absent from Counts.
type EntriesCountsResponse struct {
	Taxonomy string         `json:"taxonomy"`
	Counts   map[string]int `json:"counts"`
	Error    string         `json:"error,omitempty"`
}
