package fields

import (
	"reflect"
	"testing"
)

func TestFieldset_SetContentsNormalizesLegacyFields(t *testing.T) {
	t.Parallel()

	fs := NewFieldset("seo")
	err := fs.SetContents(map[string]any{
		"title": "SEO",
		"fields": OrderedMap{
			{Key: "meta_title", Value: map[string]any{"type": "text"}},
			{Key: "meta_description", Value: map[string]any{"type": "textarea"}},
		},
	})
	if err != nil {
		t.Fatalf("SetContents() error = %v, want nil", err)
	}

	want := []Entry{
		{Handle: "meta_title", Field: map[string]any{"type": "text"}},
		{Handle: "meta_description", Field: map[string]any{"type": "textarea"}},
	}
	if got := fs.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %#v, want %#v", got, want)
	}
	if got := fs.Contents()["fields"]; !reflect.DeepEqual(got, want) {
		t.Errorf("Contents()[fields] = %#v, want %#v", got, want)
	}
	if got := fs.Title(); got != "SEO" {
		t.Errorf("Title() = %q, want %q", got, "SEO")
	}
}

func TestFieldset_SetContentsInvalidKeepsPrevious(t *testing.T) {
	t.Parallel()

	fs := NewFieldset("seo")
	if err := fs.SetContents(map[string]any{"fields": []Entry{{Handle: "a"}}}); err != nil {
		t.Fatalf("SetContents() error = %v", err)
	}

	if err := fs.SetContents(map[string]any{"fields": 7}); err == nil {
		t.Fatal("SetContents(invalid) = nil, want error")
	}
	if got := len(fs.Entries()); got != 1 {
		t.Errorf("len(Entries()) = %d, want 1 after rejected update", got)
	}
}

func TestFieldset_ContentsIsCopy(t *testing.T) {
	t.Parallel()

	fs := NewFieldset("seo")
	c := fs.Contents()
	c["title"] = "mutated"

	if got := fs.Title(); got != "Seo" {
		t.Errorf("Title() = %q, want %q", got, "Seo")
	}
}

func TestFieldset_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handle   string
		contents map[string]any
		want     string
	}{
		{name: "configured", handle: "seo", contents: map[string]any{"title": "Search"}, want: "Search"},
		{name: "humanized snake", handle: "blog_post", contents: map[string]any{}, want: "Blog post"},
		{name: "humanized kebab", handle: "main-nav", contents: map[string]any{}, want: "Main nav"},
		{name: "empty title falls back", handle: "tags", contents: map[string]any{"title": ""}, want: "Tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs := NewFieldset(tt.handle)
			if err := fs.SetContents(tt.contents); err != nil {
				t.Fatalf("SetContents() error = %v", err)
			}
			if got := fs.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldset_Field(t *testing.T) {
	t.Parallel()

	fs := NewFieldset("article")
	err := fs.SetContents(map[string]any{
		"fields": []any{
			map[string]any{"handle": "title", "field": map[string]any{"type": "text", "display": "Headline"}},
			map[string]any{"handle": "body", "field": map[string]any{}},
		},
	})
	if err != nil {
		t.Fatalf("SetContents() error = %v", err)
	}

	title, ok := fs.Field("title")
	if !ok {
		t.Fatal("Field(title) ok = false, want true")
	}
	if title.Display() != "Headline" {
		t.Errorf("Display() = %q, want %q", title.Display(), "Headline")
	}

	body, ok := fs.Field("body")
	if !ok {
		t.Fatal("Field(body) ok = false, want true")
	}
	if body.Type() != "text" {
		t.Errorf("Type() = %q, want default %q", body.Type(), "text")
	}
	if body.Display() != "Body" {
		t.Errorf("Display() = %q, want %q", body.Display(), "Body")
	}

	if _, ok := fs.Field("missing"); ok {
		t.Error("Field(missing) ok = true, want false")
	}

	if got := fs.Fields().Handles(); !reflect.DeepEqual(got, []string{"title", "body"}) {
		t.Errorf("Handles() = %v, want [title body]", got)
	}
}

func TestFieldset_Key(t *testing.T) {
	t.Parallel()

	if got := NewFieldset("seo").Key(); got != "seo" {
		t.Errorf("Key() = %q, want %q", got, "seo")
	}
	if got := NewFieldset("tag").SetNamespace("/taxonomies/tags/").Key(); got != "taxonomies/tags/tag" {
		t.Errorf("Key() = %q, want %q", got, "taxonomies/tags/tag")
	}
}

func TestFieldset_AfterSaveQueueDrains(t *testing.T) {
	t.Parallel()

	var order []int
	fs := NewFieldset("seo").
		AfterSave(func(*Fieldset) { order = append(order, 1) }).
		AfterSave(func(*Fieldset) { order = append(order, 2) })

	cbs := fs.TakeAfterSave()
	if len(cbs) != 2 {
		t.Fatalf("TakeAfterSave() len = %d, want 2", len(cbs))
	}
	for _, cb := range cbs {
		cb(fs)
	}
	if !reflect.DeepEqual(order, []int{1, 2}) {
		t.Errorf("callback order = %v, want [1 2]", order)
	}
	if got := fs.TakeAfterSave(); len(got) != 0 {
		t.Errorf("second TakeAfterSave() len = %d, want 0", len(got))
	}
}

func TestFieldset_Clone(t *testing.T) {
	t.Parallel()

	fs := NewFieldset("tag").SetNamespace("taxonomies/tags")
	if err := fs.SetContents(map[string]any{
		"hide":   true,
		"fields": []any{map[string]any{"handle": "body", "field": map[string]any{"type": "markdown"}}},
	}); err != nil {
		t.Fatalf("SetContents() error = %v", err)
	}
	fs.AfterSave(func(*Fieldset) {})

	clone := fs.Clone()
	clone.Entries()[0].Field["type"] = "text"

	if got := fs.Entries()[0].Field["type"]; got != "markdown" {
		t.Errorf("original field type = %v after clone mutation, want markdown", got)
	}
	if clone.Key() != "taxonomies/tags/tag" {
		t.Errorf("clone Key() = %q, want %q", clone.Key(), "taxonomies/tags/tag")
	}
	if !clone.Hidden() {
		t.Error("clone Hidden() = false, want true")
	}
	if n := len(clone.TakeAfterSave()); n != 0 {
		t.Errorf("clone has %d pending callbacks, want 0", n)
	}
}

func TestFieldset_CloneIsDeep(t *testing.T) {
	t.Parallel()

	fs := NewFieldset("tag")
	if err := fs.SetContents(map[string]any{
		"sections": map[string]any{"main": map[string]any{"display": "Main"}},
		"fields": []any{map[string]any{
			"handle": "color",
			"field":  map[string]any{"type": "select", "options": map[string]any{"red": "Red"}},
		}},
	}); err != nil {
		t.Fatalf("SetContents() error = %v", err)
	}

	clone := fs.Clone()
	clone.Entries()[0].Field["options"].(map[string]any)["red"] = "Crimson"
	clone.Contents()["sections"].(map[string]any)["main"].(map[string]any)["display"] = "Changed"

	options := fs.Entries()[0].Field["options"].(map[string]any)
	if options["red"] != "Red" {
		t.Errorf("original options[red] = %v after clone mutation, want Red", options["red"])
	}
	main := fs.Contents()["sections"].(map[string]any)["main"].(map[string]any)
	if main["display"] != "Main" {
		t.Errorf("original sections.main.display = %v after clone mutation, want Main", main["display"])
	}
}

func TestFields_DuplicateHandleLastWins(t *testing.T) {
	t.Parallel()

	fs := NewFields([]Entry{
		{Handle: "a", Field: map[string]any{"type": "text"}},
		{Handle: "b", Field: map[string]any{}},
		{Handle: "a", Field: map[string]any{"type": "toggle"}},
	})

	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
	a, _ := fs.Get("a")
	if a.Type() != "toggle" {
		t.Errorf("Get(a).Type() = %q, want toggle", a.Type())
	}
	if got := fs.Handles(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Handles() = %v, want [a b]", got)
	}
}
