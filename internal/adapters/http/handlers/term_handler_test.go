package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
	"github.com/jsamuelsen11/go-content-blueprints/mocks"
)

func termRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return withChiParams(r, map[string]string{"taxonomy": "tags", "slug": "go"})
}

func newTermHandler(t *testing.T) (*handlers.TermHandler, *mocks.MockTermService, *mocks.MockFieldsetService) {
	t.Helper()
	terms := mocks.NewMockTermService(t)
	fieldsets := mocks.NewMockFieldsetService(t)
	return handlers.NewTermHandler(terms, fieldsets), terms, fieldsets
}

// --- Taxonomies and blueprints ---

func TestListTaxonomies(t *testing.T) {
	t.Parallel()
	h, terms, _ := newTermHandler(t)
	terms.EXPECT().Taxonomies(mock.Anything).Return([]*taxonomy.Taxonomy{tagsTaxonomy()}, nil)

	rec := httptest.NewRecorder()
	h.ListTaxonomies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/taxonomies", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaxonomyListResponse](t, rec)
	if resp.Count != 1 || resp.Taxonomies[0].Handle != "tags" {
		t.Errorf("Taxonomies = %+v, want [tags]", resp.Taxonomies)
	}
}

func TestListBlueprints(t *testing.T) {
	t.Parallel()
	h, terms, _ := newTermHandler(t)
	terms.EXPECT().TermBlueprints(mock.Anything, "tags").Return([]*fields.Fieldset{
		fields.NewFieldset("tag").SetNamespace("taxonomies/tags"),
	}, nil)

	rec := httptest.NewRecorder()
	h.ListBlueprints(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/blueprints", ""))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.FieldsetListResponse](t, rec)
	if resp.Count != 1 || resp.Fieldsets[0].Namespace != "taxonomies/tags" {
		t.Errorf("Fieldsets = %+v, want [taxonomies/tags/tag]", resp.Fieldsets)
	}
}

func TestSaveBlueprint(t *testing.T) {
	t.Parallel()

	t.Run("saves into the taxonomy namespace", func(t *testing.T) {
		t.Parallel()
		h, terms, fieldsets := newTermHandler(t)
		terms.EXPECT().Taxonomy(mock.Anything, "tags").Return(tagsTaxonomy(), nil)
		fieldsets.EXPECT().Find(mock.Anything, "taxonomies/tags/topic").Return(nil, domain.ErrNotFound)
		fieldsets.EXPECT().Make("topic").Return(fields.NewFieldset("topic"))
		fieldsets.EXPECT().Save(mock.Anything, mock.MatchedBy(func(fs *fields.Fieldset) bool {
			return fs.Key() == "taxonomies/tags/topic" && fs.Hidden()
		})).Return(true, nil)

		req := withChiParams(
			httptest.NewRequest(http.MethodPut, "/api/v1/taxonomies/tags/blueprints/topic", strings.NewReader(`{"hide":true}`)),
			map[string]string{"taxonomy": "tags", "handle": "topic"},
		)
		rec := httptest.NewRecorder()
		h.SaveBlueprint(rec, req)

		requireStatus(t, rec, http.StatusCreated)
	})

	t.Run("unknown taxonomy", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().Taxonomy(mock.Anything, "colors").Return(nil, domain.ErrNotFound)

		req := withChiParams(
			httptest.NewRequest(http.MethodPut, "/api/v1/taxonomies/colors/blueprints/x", strings.NewReader(`{}`)),
			map[string]string{"taxonomy": "colors", "handle": "x"},
		)
		rec := httptest.NewRecorder()
		h.SaveBlueprint(rec, req)

		requireStatus(t, rec, http.StatusNotFound)
	})
}

func TestDeleteBlueprint(t *testing.T) {
	t.Parallel()
	h, terms, fieldsets := newTermHandler(t)
	terms.EXPECT().Taxonomy(mock.Anything, "tags").Return(tagsTaxonomy(), nil)
	fieldsets.EXPECT().Make("topic").Return(fields.NewFieldset("topic"))
	fieldsets.EXPECT().Delete(mock.Anything, mock.MatchedBy(func(fs *fields.Fieldset) bool {
		return fs.Key() == "taxonomies/tags/topic"
	})).Return(nil)

	req := withChiParams(
		httptest.NewRequest(http.MethodDelete, "/api/v1/taxonomies/tags/blueprints/topic", nil),
		map[string]string{"taxonomy": "tags", "handle": "topic"},
	)
	rec := httptest.NewRecorder()
	h.DeleteBlueprint(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

// --- Terms ---

func TestGetTerm(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		term := tagsTaxonomy().MakeTerm("go").Set("title", "Go")
		terms.EXPECT().Find(mock.Anything, "tags", "go").Return(term, nil)

		rec := httptest.NewRecorder()
		h.GetTerm(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/terms/go", ""))

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.TermResponse](t, rec)
		if resp.ID != "tags::go" || resp.Title != "Go" {
			t.Errorf("response = %+v, want tags::go titled Go", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().Find(mock.Anything, "tags", "go").Return(nil, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		h.GetTerm(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/terms/go", ""))

		requireStatus(t, rec, http.StatusNotFound)
	})
}

func TestSaveTerm(t *testing.T) {
	t.Parallel()

	t.Run("creates term with blueprint override", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().Find(mock.Anything, "tags", "go").Return(nil, domain.ErrNotFound)
		terms.EXPECT().Make(mock.Anything, "tags", "go").Return(tagsTaxonomy().MakeTerm("go"), nil)
		terms.EXPECT().Save(mock.Anything, mock.MatchedBy(func(term *taxonomy.Term) bool {
			return term.BlueprintHandle() == "topic" && term.Title() == "Go"
		})).Return(true, nil)

		rec := httptest.NewRecorder()
		h.SaveTerm(rec, termRequest(http.MethodPut, "/api/v1/taxonomies/tags/terms/go",
			`{"title":"Go","blueprint":"topic","data":{"color":"cyan"}}`))

		requireStatus(t, rec, http.StatusCreated)
		resp := decodeJSON[dto.TermResponse](t, rec)
		if resp.Data["color"] != "cyan" {
			t.Errorf("Data[color] = %v, want cyan", resp.Data["color"])
		}
	})

	t.Run("quiet update", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().Find(mock.Anything, "tags", "go").Return(tagsTaxonomy().MakeTerm("go"), nil)
		terms.EXPECT().SaveQuietly(mock.Anything, mock.Anything).Return(true, nil)

		rec := httptest.NewRecorder()
		h.SaveTerm(rec, termRequest(http.MethodPut, "/api/v1/taxonomies/tags/terms/go?quiet=1", `{}`))

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("halted save is a conflict", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().Find(mock.Anything, "tags", "go").Return(tagsTaxonomy().MakeTerm("go"), nil)
		terms.EXPECT().Save(mock.Anything, mock.Anything).Return(false, nil)

		rec := httptest.NewRecorder()
		h.SaveTerm(rec, termRequest(http.MethodPut, "/api/v1/taxonomies/tags/terms/go", `{}`))

		requireStatus(t, rec, http.StatusConflict)
	})

	t.Run("unknown taxonomy", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().Find(mock.Anything, "tags", "go").Return(nil, domain.ErrNotFound)
		terms.EXPECT().Make(mock.Anything, "tags", "go").Return(nil, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		h.SaveTerm(rec, termRequest(http.MethodPut, "/api/v1/taxonomies/tags/terms/go", `{}`))

		requireStatus(t, rec, http.StatusNotFound)
	})
}

func TestDeleteTerm(t *testing.T) {
	t.Parallel()
	h, terms, _ := newTermHandler(t)
	term := tagsTaxonomy().MakeTerm("go")
	terms.EXPECT().Make(mock.Anything, "tags", "go").Return(term, nil)
	terms.EXPECT().Delete(mock.Anything, term).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteTerm(rec, termRequest(http.MethodDelete, "/api/v1/taxonomies/tags/terms/go", ""))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestGetTermBlueprint(t *testing.T) {
	t.Parallel()

	t.Run("resolved", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		term := tagsTaxonomy().MakeTerm("go")
		terms.EXPECT().Find(mock.Anything, "tags", "go").Return(term, nil)
		terms.EXPECT().Blueprint(mock.Anything, term).Return(fields.NewFieldset("tag").SetNamespace("taxonomies/tags"), nil)

		rec := httptest.NewRecorder()
		h.GetTermBlueprint(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/terms/go/blueprint", ""))

		requireStatus(t, rec, http.StatusOK)
		if resp := decodeJSON[dto.FieldsetResponse](t, rec); resp.Handle != "tag" {
			t.Errorf("Handle = %q, want %q", resp.Handle, "tag")
		}
	})

	t.Run("no blueprint", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		term := tagsTaxonomy().MakeTerm("go")
		terms.EXPECT().Find(mock.Anything, "tags", "go").Return(nil, domain.ErrNotFound)
		terms.EXPECT().Make(mock.Anything, "tags", "go").Return(term, nil)
		terms.EXPECT().Blueprint(mock.Anything, term).Return(nil, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		h.GetTermBlueprint(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/terms/go/blueprint", ""))

		requireStatus(t, rec, http.StatusNotFound)
	})
}

// --- Entries counts ---

func TestGetEntriesCount(t *testing.T) {
	t.Parallel()
	h, terms, _ := newTermHandler(t)
	term := tagsTaxonomy().MakeTerm("go")
	terms.EXPECT().Make(mock.Anything, "tags", "go").Return(term, nil)
	terms.EXPECT().EntriesCount(mock.Anything, term).Return(7, nil)

	rec := httptest.NewRecorder()
	h.GetEntriesCount(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/terms/go/entries-count", ""))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EntriesCountResponse](t, rec)
	if resp.ID != "tags::go" || resp.Count != 7 {
		t.Errorf("response = %+v, want tags::go with 7", resp)
	}
}

func TestGetEntriesCounts(t *testing.T) {
	t.Parallel()

	t.Run("collects repeated and comma separated slugs", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().EntriesCounts(mock.Anything, "tags", []string{"go", "rust", "zig"}).
			Return(map[string]int{"go": 2, "rust": 1, "zig": 0}, nil)

		rec := httptest.NewRecorder()
		h.GetEntriesCounts(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/entries-counts?slug=go,rust&slug=zig&slug=go", ""))

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.EntriesCountsResponse](t, rec)
		if resp.Counts["go"] != 2 || resp.Error != "" {
			t.Errorf("response = %+v, want go=2 and no error", resp)
		}
	})

	t.Run("partial failure is reported", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().EntriesCounts(mock.Anything, "tags", []string{"go", "bad"}).
			Return(map[string]int{"go": 2}, errors.New(`term "bad": unavailable`))

		rec := httptest.NewRecorder()
		h.GetEntriesCounts(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/entries-counts?slug=go,bad", ""))

		requireStatus(t, rec, http.StatusOK)
		if resp := decodeJSON[dto.EntriesCountsResponse](t, rec); resp.Error == "" {
			t.Error("Error is empty, want partial failure reported")
		}
	})

	t.Run("missing slugs", func(t *testing.T) {
		t.Parallel()
		h, _, _ := newTermHandler(t)

		rec := httptest.NewRecorder()
		h.GetEntriesCounts(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/entries-counts", ""))

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("total failure", func(t *testing.T) {
		t.Parallel()
		h, terms, _ := newTermHandler(t)
		terms.EXPECT().EntriesCounts(mock.Anything, "tags", []string{"go"}).Return(nil, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		h.GetEntriesCounts(rec, termRequest(http.MethodGet, "/api/v1/taxonomies/tags/entries-counts?slug=go", ""))

		requireStatus(t, rec, http.StatusNotFound)
	})
}
