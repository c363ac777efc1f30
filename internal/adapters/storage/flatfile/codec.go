package flatfile

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/yamlvalue"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
)

// DecodeFieldset parses a fieldset document. A legacy "fields" mapping keyed
// by handle keeps its authored order.
func DecodeFieldset(handle, namespace string, data []byte) (*fields.Fieldset, error) {
	contents, err := yamlvalue.Document(data, fields.KeyFields)
	if err != nil {
		return nil, fmt.Errorf("decoding fieldset %q: %w", handle, err)
	}

	fs := fields.NewFieldset(handle).SetNamespace(namespace)
	if err := fs.SetContents(contents); err != nil {
		return nil, fmt.Errorf("decoding fieldset %q: %w", handle, err)
	}
	return fs, nil
}

// EncodeFieldset renders a fieldset document. "title" and "hide" lead, other
// keys follow in sorted order and "fields" comes last as a sequence.
func EncodeFieldset(fs *fields.Fieldset) ([]byte, error) {
	contents := fs.Contents()

	keys := make([]string, 0, len(contents))
	for k := range contents {
		switch k {
		case fields.KeyTitle, fields.KeyHide, fields.KeyFields:
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	ordered := make([]string, 0, len(keys)+3)
	for _, k := range []string{fields.KeyTitle, fields.KeyHide} {
		if _, ok := contents[k]; ok {
			ordered = append(ordered, k)
		}
	}
	ordered = append(ordered, keys...)
	ordered = append(ordered, fields.KeyFields)
	contents[fields.KeyFields] = fs.Entries()

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range ordered {
		var value yaml.Node
		if err := value.Encode(contents[k]); err != nil {
			return nil, fmt.Errorf("encoding fieldset %q key %q: %w", fs.Handle(), k, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding fieldset %q: %w", fs.Handle(), err)
	}
	return out, nil
}

// DecodeTerm parses a term document into a term of the given taxonomy.
func DecodeTerm(finder taxonomy.Finder, taxonomyHandle, slug string, data []byte) (*taxonomy.Term, error) {
	values, err := yamlvalue.Document(data, "")
	if err != nil {
		return nil, fmt.Errorf("decoding term %s::%s: %w", taxonomyHandle, slug, err)
	}

	return taxonomy.NewTerm(finder).
		SetTaxonomyHandle(taxonomyHandle).
		SetSlug(slug).
		SetData(values), nil
}

// EncodeTerm renders a term document. An explicit blueprint override is
// written under the reserved "blueprint" key.
func EncodeTerm(term *taxonomy.Term) ([]byte, error) {
	values := term.Data()
	if h := term.BlueprintHandle(); h != "" {
		values[taxonomy.KeyBlueprint] = h
	}

	out, err := yaml.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encoding term %s: %w", term.ID(), err)
	}
	return out, nil
}
