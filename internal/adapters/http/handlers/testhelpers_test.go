package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func tagsTaxonomy() *taxonomy.Taxonomy {
	return taxonomy.New("tags", nil, taxonomy.WithTitle("Tags"))
}

func seoFieldset(t *testing.T) *fields.Fieldset {
	t.Helper()
	fs := fields.NewFieldset("seo")
	if err := fs.SetContents(map[string]any{
		fields.KeyTitle: "SEO",
		fields.KeyFields: []any{
			map[string]any{"handle": "meta_title", "field": map[string]any{"type": "text"}},
		},
	}); err != nil {
		t.Fatal(err)
	}
	return fs
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
