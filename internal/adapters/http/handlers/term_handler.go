package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// TermHandler handles HTTP requests for taxonomies, their term blueprints,
// and their terms.
type TermHandler struct {
	terms     ports.TermService
	fieldsets ports.FieldsetService
}

// NewTermHandler creates a new TermHandler. fieldsets stores the term
// blueprints of each taxonomy.
func NewTermHandler(terms ports.TermService, fieldsets ports.FieldsetService) *TermHandler {
	return &TermHandler{terms: terms, fieldsets: fieldsets}
}

// ListTaxonomies handles GET /api/v1/taxonomies.
func (h *TermHandler) ListTaxonomies(w http.ResponseWriter, r *http.Request) {
	list, err := h.terms.Taxonomies(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaxonomyListResponse(list))
}

// ListBlueprints handles GET /api/v1/taxonomies/{taxonomy}/blueprints.
func (h *TermHandler) ListBlueprints(w http.ResponseWriter, r *http.Request) {
	list, err := h.terms.TermBlueprints(r.Context(), chi.URLParam(r, "taxonomy"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFieldsetListResponse(list))
}

// SaveBlueprint handles PUT /api/v1/taxonomies/{taxonomy}/blueprints/{handle}.
func (h *TermHandler) SaveBlueprint(w http.ResponseWriter, r *http.Request) {
	tax, err := h.terms.Taxonomy(r.Context(), chi.URLParam(r, "taxonomy"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	saveFieldset(w, r, h.fieldsets, tax.BlueprintNamespace(), chi.URLParam(r, "handle"))
}

// DeleteBlueprint handles DELETE /api/v1/taxonomies/{taxonomy}/blueprints/{handle}.
func (h *TermHandler) DeleteBlueprint(w http.ResponseWriter, r *http.Request) {
	tax, err := h.terms.Taxonomy(r.Context(), chi.URLParam(r, "taxonomy"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleteFieldset(w, r, h.fieldsets, tax.BlueprintNamespace(), chi.URLParam(r, "handle"))
}

// GetTerm handles GET /api/v1/taxonomies/{taxonomy}/terms/{slug}.
func (h *TermHandler) GetTerm(w http.ResponseWriter, r *http.Request) {
	term, err := h.terms.Find(r.Context(), chi.URLParam(r, "taxonomy"), chi.URLParam(r, "slug"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTermResponse(term))
}

// SaveTerm handles PUT /api/v1/taxonomies/{taxonomy}/terms/{slug}. The body
// replaces the term's data; ?quiet=true saves without lifecycle events.
func (h *TermHandler) SaveTerm(w http.ResponseWriter, r *http.Request) {
	q, err := quiet(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SaveTermRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	term, created, err := h.findOrMakeTerm(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	term.SetData(req.TermData())
	if req.Blueprint != nil {
		term.SetBlueprint(*req.Blueprint)
	}

	save := h.terms.Save
	if q {
		save = h.terms.SaveQuietly
	}
	saved, err := save(r.Context(), term)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !saved {
		dto.WriteErrorResponse(w, r, errSaveHalted)
		return
	}

	writeJSON(w, saveStatus(created), dto.ToTermResponse(term))
}

// DeleteTerm handles DELETE /api/v1/taxonomies/{taxonomy}/terms/{slug}.
func (h *TermHandler) DeleteTerm(w http.ResponseWriter, r *http.Request) {
	term, err := h.terms.Make(r.Context(), chi.URLParam(r, "taxonomy"), chi.URLParam(r, "slug"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if err := h.terms.Delete(r.Context(), term); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTermBlueprint handles GET /api/v1/taxonomies/{taxonomy}/terms/{slug}/blueprint.
// Terms that are not stored yet resolve through the taxonomy default.
func (h *TermHandler) GetTermBlueprint(w http.ResponseWriter, r *http.Request) {
	term, _, err := h.findOrMakeTerm(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	bp, err := h.terms.Blueprint(r.Context(), term)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFieldsetResponse(bp))
}

// GetEntriesCount handles GET /api/v1/taxonomies/{taxonomy}/terms/{slug}/entries-count.
// The term need not be stored.
func (h *TermHandler) GetEntriesCount(w http.ResponseWriter, r *http.Request) {
	term, err := h.terms.Make(r.Context(), chi.URLParam(r, "taxonomy"), chi.URLParam(r, "slug"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, err := h.terms.EntriesCount(r.Context(), term)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesCountResponse{ID: term.ID(), Count: n})
}

// GetEntriesCounts handles GET /api/v1/taxonomies/{taxonomy}/entries-counts?slug=a,b.
// Counts that could not be computed are reported in the error field; the
// request fails only when nothing could be counted.
func (h *TermHandler) GetEntriesCounts(w http.ResponseWriter, r *http.Request) {
	slugs := slugsParam(r)
	if len(slugs) == 0 {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"slug": domain.MsgRequired},
		})
		return
	}

	handle := chi.URLParam(r, "taxonomy")
	counts, err := h.terms.EntriesCounts(r.Context(), handle, slugs)
	if err != nil && len(counts) == 0 {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.EntriesCountsResponse{Taxonomy: handle, Counts: counts}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// findOrMakeTerm loads the term named by the URL, or makes an unsaved one.
// created reports whether the term had to be made.
func (h *TermHandler) findOrMakeTerm(r *http.Request) (*taxonomy.Term, bool, error) {
	handle, slug := chi.URLParam(r, "taxonomy"), chi.URLParam(r, "slug")

	term, err := h.terms.Find(r.Context(), handle, slug)
	switch {
	case err == nil:
		return term, false, nil
	case isNotFound(err):
		term, err = h.terms.Make(r.Context(), handle, slug)
		return term, true, err
	default:
		return nil, false, err
	}
}
