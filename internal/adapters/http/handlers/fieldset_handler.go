// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// FieldsetHandler handles HTTP requests for top-level fieldsets.
type FieldsetHandler struct {
	svc ports.FieldsetService
}

// NewFieldsetHandler creates a new FieldsetHandler with the given service port.
func NewFieldsetHandler(svc ports.FieldsetService) *FieldsetHandler {
	return &FieldsetHandler{svc: svc}
}

// ListFieldsets handles GET /api/v1/fieldsets.
func (h *FieldsetHandler) ListFieldsets(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.All(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFieldsetListResponse(list))
}

// GetFieldset handles GET /api/v1/fieldsets/{handle}.
func (h *FieldsetHandler) GetFieldset(w http.ResponseWriter, r *http.Request) {
	fs, err := h.svc.Find(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFieldsetResponse(fs))
}

// SaveFieldset handles PUT /api/v1/fieldsets/{handle}. The body replaces the
// fieldset's contents; ?quiet=true saves without lifecycle events.
func (h *FieldsetHandler) SaveFieldset(w http.ResponseWriter, r *http.Request) {
	saveFieldset(w, r, h.svc, "", chi.URLParam(r, "handle"))
}

// DeleteFieldset handles DELETE /api/v1/fieldsets/{handle}.
func (h *FieldsetHandler) DeleteFieldset(w http.ResponseWriter, r *http.Request) {
	deleteFieldset(w, r, h.svc, "", chi.URLParam(r, "handle"))
}

// saveFieldset creates or replaces the fieldset namespace/handle from the
// request body. Shared by the fieldset and term blueprint routes.
func saveFieldset(w http.ResponseWriter, r *http.Request, svc ports.FieldsetService, namespace, handle string) {
	q, err := quiet(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SaveFieldsetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	fs, created, err := findOrMakeFieldset(r.Context(), svc, namespace, handle)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if err := fs.SetContents(req.Contents()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	save := svc.Save
	if q {
		save = svc.SaveQuietly
	}
	saved, err := save(r.Context(), fs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !saved {
		dto.WriteErrorResponse(w, r, errSaveHalted)
		return
	}

	writeJSON(w, saveStatus(created), dto.ToFieldsetResponse(fs))
}

// deleteFieldset removes namespace/handle. Existence is not checked, so the
// deleted event fires even for fieldsets that were never stored.
func deleteFieldset(w http.ResponseWriter, r *http.Request, svc ports.FieldsetService, namespace, handle string) {
	fs := svc.Make(handle).SetNamespace(namespace)
	if err := svc.Delete(r.Context(), fs); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func findOrMakeFieldset(ctx context.Context, svc ports.FieldsetService, namespace, handle string) (*fields.Fieldset, bool, error) {
	key := handle
	if namespace != "" {
		key = namespace + "/" + handle
	}

	fs, err := svc.Find(ctx, key)
	switch {
	case err == nil:
		return fs, false, nil
	case isNotFound(err):
		return svc.Make(handle).SetNamespace(namespace), true, nil
	default:
		return nil, false, err
	}
}
