package flatfile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/storage/flatfile"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
)

func TestDecodeFieldset_LegacyMappingKeepsAuthoredOrder(t *testing.T) {
	t.Parallel()

	doc := []byte(`
title: SEO
fields:
  zeta:
    type: text
    display: Zeta
  alpha:
    type: select
    options: [a, b]
`)

	fs, err := flatfile.DecodeFieldset("seo", "", doc)
	require.NoError(t, err)

	assert.Equal(t, "SEO", fs.Title())
	assert.Equal(t, []fields.Entry{
		{Handle: "zeta", Field: map[string]any{"type": "text", "display": "Zeta"}},
		{Handle: "alpha", Field: map[string]any{"type": "select", "options": []any{"a", "b"}}},
	}, fs.Entries())
}

func TestDecodeFieldset_Sequence(t *testing.T) {
	t.Parallel()

	doc := []byte(`
fields:
  - handle: title
    field:
      type: text
  - handle: body
    field:
      type: markdown
`)

	fs, err := flatfile.DecodeFieldset("article", "taxonomies/tags", doc)
	require.NoError(t, err)

	assert.Equal(t, "taxonomies/tags/article", fs.Key())
	assert.Equal(t, []string{"title", "body"}, fs.Fields().Handles())
}

func TestDecodeFieldset_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed yaml", doc: "fields: [\n"},
		{name: "top level sequence", doc: "- a\n- b\n"},
		{name: "field list scalar", doc: "fields: nope\n"},
		{name: "sequence item without handle", doc: "fields:\n  - field: {type: text}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := flatfile.DecodeFieldset("broken", "", []byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation), "error %v should wrap ErrValidation", err)
		})
	}
}

func TestDecodeFieldset_EmptyDocument(t *testing.T) {
	t.Parallel()

	fs, err := flatfile.DecodeFieldset("empty", "", nil)
	require.NoError(t, err)
	assert.Empty(t, fs.Entries())
	assert.Equal(t, "Empty", fs.Title())
}

func TestEncodeFieldset_RoundTripWritesSequence(t *testing.T) {
	t.Parallel()

	fs := fields.NewFieldset("seo")
	require.NoError(t, fs.SetContents(map[string]any{
		"title":  "SEO",
		"hide":   true,
		"icon":   "search",
		"fields": fields.OrderedMap{{Key: "b", Value: map[string]any{"type": "text"}}, {Key: "a", Value: nil}},
	}))

	out, err := flatfile.EncodeFieldset(fs)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "title: SEO\nhide: true\nicon: search\nfields:\n"),
		"encoded document should lead with title, hide, other keys, then fields; got:\n%s", out)

	back, err := flatfile.DecodeFieldset("seo", "", out)
	require.NoError(t, err)
	assert.Equal(t, fs.Entries(), back.Entries())
	assert.True(t, back.Hidden())
}

func TestTermCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	term := taxonomy.NewTerm(nil).
		SetTaxonomyHandle("tags").
		SetSlug("go").
		SetData(map[string]any{"title": "Go", "weight": 3}).
		SetBlueprint("featured")

	out, err := flatfile.EncodeTerm(term)
	require.NoError(t, err)

	back, err := flatfile.DecodeTerm(nil, "tags", "go", out)
	require.NoError(t, err)

	assert.Equal(t, "tags::go", back.ID())
	assert.Equal(t, "Go", back.Title())
	assert.Equal(t, "featured", back.BlueprintHandle())
	weight, _ := back.Get("weight")
	assert.Equal(t, 3, weight)
}
