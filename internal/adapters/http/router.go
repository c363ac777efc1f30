// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/handlers"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Fieldsets *handlers.FieldsetHandler
	Terms     *handlers.TermHandler
	Health    *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// middlewares wrap every route in the order given; api wraps only the
// /api/v1 routes, so health endpoints are never throttled or timed out.
func NewRouter(h Handlers, api []func(http.Handler) http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		for _, mw := range api {
			r.Use(mw)
		}

		// Top-level fieldsets.
		r.Get("/fieldsets", h.Fieldsets.ListFieldsets)
		r.Get("/fieldsets/{handle}", h.Fieldsets.GetFieldset)
		r.Put("/fieldsets/{handle}", h.Fieldsets.SaveFieldset)
		r.Delete("/fieldsets/{handle}", h.Fieldsets.DeleteFieldset)

		// Taxonomies and their term blueprints.
		r.Get("/taxonomies", h.Terms.ListTaxonomies)
		r.Route("/taxonomies/{taxonomy}", func(r chi.Router) {
			r.Get("/blueprints", h.Terms.ListBlueprints)
			r.Put("/blueprints/{handle}", h.Terms.SaveBlueprint)
			r.Delete("/blueprints/{handle}", h.Terms.DeleteBlueprint)

			r.Get("/entries-counts", h.Terms.GetEntriesCounts)

			// Terms.
			r.Get("/terms/{slug}", h.Terms.GetTerm)
			r.Put("/terms/{slug}", h.Terms.SaveTerm)
			r.Delete("/terms/{slug}", h.Terms.DeleteTerm)
			r.Get("/terms/{slug}/blueprint", h.Terms.GetTermBlueprint)
			r.Get("/terms/{slug}/entries-count", h.Terms.GetEntriesCount)
		})
	})

	return r
}
