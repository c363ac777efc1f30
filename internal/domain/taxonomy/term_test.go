package taxonomy

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
)

func TestTerm_Blueprint_DefinedOnItself(t *testing.T) {
	t.Parallel()
	bps, first, second := tagBlueprints()
	finder := stubFinder{"tags": New("tags", bps)}

	term := NewTerm(finder).SetTaxonomyHandle("tags").SetBlueprint("second")
	term.Set(KeyBlueprint, "first")

	got, err := term.Blueprint(context.Background())
	if err != nil {
		t.Fatalf("Blueprint() error = %v", err)
	}
	if got != second {
		t.Errorf("Blueprint() = %q, want second", got.Handle())
	}
	if first == second {
		t.Fatal("fixture blueprints must differ")
	}
}

func TestTerm_Blueprint_DefinedInValue(t *testing.T) {
	t.Parallel()
	bps, _, second := tagBlueprints()
	finder := stubFinder{"tags": New("tags", bps)}

	term := NewTerm(finder).SetTaxonomyHandle("tags").Set(KeyBlueprint, "second")

	got, err := term.Blueprint(context.Background())
	if err != nil {
		t.Fatalf("Blueprint() error = %v", err)
	}
	if got != second {
		t.Errorf("Blueprint() = %q, want second", got.Handle())
	}
}

func TestTerm_Blueprint_TaxonomyDefault(t *testing.T) {
	t.Parallel()
	bps, first, _ := tagBlueprints()

	term := NewTerm(nil).SetTaxonomy(New("tags", bps))

	got, err := term.Blueprint(context.Background())
	if err != nil {
		t.Fatalf("Blueprint() error = %v", err)
	}
	if got != first {
		t.Errorf("Blueprint() = %q, want first", got.Handle())
	}
}

func TestTerm_Blueprint_MemoizedUntilSet(t *testing.T) {
	t.Parallel()

	oldBP := fields.NewFieldset("old")
	newBP := fields.NewFieldset("new")

	type call struct {
		explicit string
		term     *Term
	}
	var calls []call

	tax := New("tags", nil, WithTermBlueprintPolicy(
		func(_ context.Context, explicit string, tm *Term) (*fields.Fieldset, error) {
			calls = append(calls, call{explicit: explicit, term: tm})
			if explicit == "new" {
				return newBP, nil
			}
			return oldBP, nil
		},
	))
	term := NewTerm(stubFinder{"tags": tax}).SetTaxonomyHandle("tags")
	ctx := context.Background()

	for range 2 {
		got, err := term.Blueprint(ctx)
		if err != nil {
			t.Fatalf("Blueprint() error = %v", err)
		}
		if got != oldBP {
			t.Errorf("Blueprint() = %q, want old", got.Handle())
		}
	}
	if len(calls) != 1 {
		t.Fatalf("policy calls = %d, want 1", len(calls))
	}
	if calls[0].explicit != "" || calls[0].term != term {
		t.Errorf("policy called with (%q, %p), want (\"\", %p)", calls[0].explicit, calls[0].term, term)
	}

	term.SetBlueprint("new")

	for range 2 {
		got, err := term.Blueprint(ctx)
		if err != nil {
			t.Fatalf("Blueprint() error = %v", err)
		}
		if got != newBP {
			t.Errorf("Blueprint() = %q, want new", got.Handle())
		}
	}
	if len(calls) != 2 {
		t.Fatalf("policy calls = %d, want 2", len(calls))
	}
	if calls[1].explicit != "new" {
		t.Errorf("second policy call explicit = %q, want %q", calls[1].explicit, "new")
	}
}

func TestTerm_Blueprint_DataChangesDoNotInvalidate(t *testing.T) {
	t.Parallel()
	bps, first, _ := tagBlueprints()
	term := New("tags", bps).MakeTerm("go")
	ctx := context.Background()

	if got, _ := term.Blueprint(ctx); got != first {
		t.Fatalf("Blueprint() = %v, want first", got)
	}

	term.Set(KeyBlueprint, "second")

	if got, _ := term.Blueprint(ctx); got != first {
		t.Errorf("Blueprint() after data change = %q, want memoized first", got.Handle())
	}
	if bps.calls != 1 {
		t.Errorf("repository calls = %d, want 1", bps.calls)
	}
}

func TestTerm_Blueprint_AbsenceIsMemoized(t *testing.T) {
	t.Parallel()
	bps := &stubBlueprints{}
	term := New("tags", bps).MakeTerm("go")
	ctx := context.Background()

	for range 2 {
		bp, err := term.Blueprint(ctx)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Blueprint() error = %v, want ErrNotFound", err)
		}
		if bp != nil {
			t.Errorf("Blueprint() = %v, want nil", bp)
		}
	}
	if bps.calls != 1 {
		t.Errorf("repository calls = %d, want 1", bps.calls)
	}
}

func TestTerm_Blueprint_ErrorsAreNotMemoized(t *testing.T) {
	t.Parallel()
	boom := errors.New("unavailable")
	bps := &stubBlueprints{err: boom}
	term := New("tags", bps).MakeTerm("go")
	ctx := context.Background()

	if _, err := term.Blueprint(ctx); !errors.Is(err, boom) {
		t.Fatalf("Blueprint() error = %v, want %v", err, boom)
	}

	first := fields.NewFieldset("first")
	bps.err = nil
	bps.byNamespace = map[string][]*fields.Fieldset{"taxonomies/tags": {first}}

	got, err := term.Blueprint(ctx)
	if err != nil {
		t.Fatalf("Blueprint() retry error = %v", err)
	}
	if got != first {
		t.Errorf("Blueprint() retry = %v, want first", got)
	}
}

func TestTerm_Blueprint_PolicyReturningNothing(t *testing.T) {
	t.Parallel()
	tax := New("tags", nil, WithTermBlueprintPolicy(
		func(context.Context, string, *Term) (*fields.Fieldset, error) { return nil, nil },
	))

	_, err := tax.MakeTerm("go").Blueprint(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Blueprint() error = %v, want ErrNotFound", err)
	}
}

func TestTerm_Taxonomy(t *testing.T) {
	t.Parallel()

	t.Run("missing handle", func(t *testing.T) {
		t.Parallel()
		_, err := NewTerm(stubFinder{}).Taxonomy(context.Background())
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Taxonomy() error = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown handle", func(t *testing.T) {
		t.Parallel()
		_, err := NewTerm(stubFinder{}).SetTaxonomyHandle("tags").Taxonomy(context.Background())
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Taxonomy() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("no finder", func(t *testing.T) {
		t.Parallel()
		_, err := NewTerm(nil).SetTaxonomyHandle("tags").Taxonomy(context.Background())
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Taxonomy() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("rebinding handle drops resolved taxonomy", func(t *testing.T) {
		t.Parallel()
		tags := New("tags", nil)
		cats := New("categories", nil)
		term := NewTerm(stubFinder{"categories": cats}).SetTaxonomy(tags).SetTaxonomyHandle("categories")

		got, err := term.Taxonomy(context.Background())
		if err != nil {
			t.Fatalf("Taxonomy() error = %v", err)
		}
		if got != cats {
			t.Errorf("Taxonomy() = %q, want categories", got.Handle())
		}
	})
}

func TestTerm_Data(t *testing.T) {
	t.Parallel()

	src := map[string]any{"title": "Golang"}
	term := NewTerm(nil).SetTaxonomyHandle("tags").SetSlug("go").SetData(src)
	src["title"] = "mutated"

	if got := term.Title(); got != "Golang" {
		t.Errorf("Title() = %q, want %q", got, "Golang")
	}

	term.Merge(map[string]any{"color": "blue"})
	if v, ok := term.Get("color"); !ok || v != "blue" {
		t.Errorf("Get(color) = %v, %v; want blue, true", v, ok)
	}

	out := term.Data()
	out["color"] = "red"
	if v, _ := term.Get("color"); v != "blue" {
		t.Errorf("Data() leaked mutation, Get(color) = %v", v)
	}

	if got := NewTerm(nil).SetSlug("go").Title(); got != "go" {
		t.Errorf("Title() = %q, want slug fallback", got)
	}
}

func TestTerm_BlueprintHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		term *Term
		want string
	}{
		{name: "none", term: NewTerm(nil), want: ""},
		{name: "data value", term: NewTerm(nil).Set(KeyBlueprint, "tag"), want: "tag"},
		{name: "non-string data value", term: NewTerm(nil).Set(KeyBlueprint, 3), want: ""},
		{name: "override beats data", term: NewTerm(nil).Set(KeyBlueprint, "tag").SetBlueprint("topic"), want: "topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.term.BlueprintHandle(); got != tt.want {
				t.Errorf("BlueprintHandle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerm_Validate(t *testing.T) {
	t.Parallel()

	err := NewTerm(nil).Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	for _, field := range []string{"taxonomy", "slug"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("ValidationError.Fields missing %q, got %v", field, verr.Fields)
		}
	}

	if err := NewTerm(nil).SetTaxonomyHandle("tags").SetSlug("go").Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestTerm_Clone(t *testing.T) {
	t.Parallel()
	bps, first, _ := tagBlueprints()

	term := New("tags", bps).MakeTerm("go").Set("title", "Go")
	term.AfterSave(func(*Term) {})
	if _, err := term.Blueprint(context.Background()); err != nil {
		t.Fatalf("Blueprint() error = %v", err)
	}

	clone := term.Clone()
	clone.Set("title", "Golang")

	if got := term.Title(); got != "Go" {
		t.Errorf("original Title() = %q after clone mutation, want %q", got, "Go")
	}
	if clone.ID() != "tags::go" {
		t.Errorf("clone ID() = %q, want %q", clone.ID(), "tags::go")
	}
	if n := len(clone.TakeAfterSave()); n != 0 {
		t.Errorf("clone has %d pending callbacks, want 0", n)
	}

	calls := bps.calls
	got, err := clone.Blueprint(context.Background())
	if err != nil {
		t.Fatalf("clone Blueprint() error = %v", err)
	}
	if got != first {
		t.Errorf("clone Blueprint() = %q, want first", got.Handle())
	}
	if bps.calls != calls+1 {
		t.Errorf("clone resolved %d times, want a fresh resolution", bps.calls-calls)
	}
}

func TestTerm_CloneCopiesNestedData(t *testing.T) {
	t.Parallel()

	term := NewTerm(nil).SetTaxonomyHandle("tags").SetSlug("go").
		Set("seo", map[string]any{"keywords": []any{"go", "golang"}})

	clone := term.Clone()
	clone.Data()["seo"].(map[string]any)["keywords"].([]any)[0] = "rust"

	keywords := term.Data()["seo"].(map[string]any)["keywords"].([]any)
	if keywords[0] != "go" {
		t.Errorf("original keywords[0] = %v after clone mutation, want go", keywords[0])
	}
}
