package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/middleware"
)

func TestTimeout_HandlerCompletesBeforeDeadline(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/api/v1/fieldsets/seo")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"handle":"seo"}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/fieldsets/seo", http.NoBody))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"handle":"seo"}`, rec.Body.String())
	assert.Equal(t, "/api/v1/fieldsets/seo", rec.Header().Get("Location"))
}

func TestTimeout_DefaultStatusOnImplicitWrite(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/fieldsets", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"items":[]}`, rec.Body.String())
}

func TestTimeout_ContextCarriesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/taxonomies", http.NoBody))

	assert.True(t, hasDeadline, "handler context has no deadline")
}

func TestTimeout_ExceededWritesProblemResponse(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(50 * time.Millisecond)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/taxonomies/tags/terms/counts", http.NoBody))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "request timed out", body["detail"])
	assert.Equal(t, "/api/v1/taxonomies/tags/terms/counts", body["instance"])
}

func TestTimeout_DiscardsBufferedAndLateWrites(t *testing.T) {
	t.Parallel()

	lateErr := make(chan error, 1)
	handler := middleware.Timeout(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"counts":`))
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte(`{}}`))
		lateErr <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/taxonomies/tags/terms/counts", http.NoBody))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.NotContains(t, rec.Body.String(), `{"counts":`)

	select {
	case err := <-lateErr:
		assert.True(t, errors.Is(err, http.ErrHandlerTimeout), "late write error = %v", err)
	case <-time.After(time.Second):
		t.Fatal("handler did not return after the deadline")
	}
}
