// Package yamlvalue decodes YAML (and therefore JSON) documents into plain Go
// values while keeping the authored key order of selected mappings as a
// fields.OrderedMap. It is the single decode path for legacy "fields"
// mappings, whether they arrive as flat-file YAML or as an HTTP JSON body.
package yamlvalue

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/fields"
)

// Decode parses a single value. A top-level mapping becomes a
// fields.OrderedMap; anything nested below it is plain. Empty input decodes
// to nil.
func Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	root, err := parse(data)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	if root.Kind == yaml.MappingNode {
		return Ordered(root)
	}
	return Plain(root)
}

// Document parses a mapping document into plain values. The value under
// orderedKey, when it is a mapping, becomes a fields.OrderedMap. An empty
// document yields an empty map.
func Document(data []byte, orderedKey string) (map[string]any, error) {
	root, err := parse(data)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return map[string]any{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &domain.ValidationError{Fields: map[string]string{"document": "must be a mapping"}}
	}

	out := make(map[string]any, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, valueNode := root.Content[i].Value, resolve(root.Content[i+1])

		var (
			value any
			err   error
		)
		if key == orderedKey && valueNode.Kind == yaml.MappingNode {
			value, err = Ordered(valueNode)
		} else {
			value, err = Plain(valueNode)
		}
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = value
	}
	return out, nil
}

// Ordered decodes a mapping node into an OrderedMap whose values are plain.
func Ordered(n *yaml.Node) (fields.OrderedMap, error) {
	n = resolve(n)

	om := make(fields.OrderedMap, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		v, err := Plain(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		om = append(om, fields.KeyValue{Key: n.Content[i].Value, Value: v})
	}
	return om, nil
}

// Plain decodes a node into map[string]any, []any, or a scalar.
func Plain(n *yaml.Node) (any, error) {
	n = resolve(n)

	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := Plain(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		seq := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := Plain(c)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return v, nil
	}
}

// parse returns the root content node, or nil for an empty document.
func parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return nil, nil
	}
	return resolve(root), nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
