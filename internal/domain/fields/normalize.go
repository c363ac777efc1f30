package fields

import (
	"fmt"
	"sort"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
)

// Entry is one normalized {handle, field} pair of a fieldset's field list.
type Entry struct {
	Handle string         `json:"handle" yaml:"handle"`
	Field  map[string]any `json:"field" yaml:"field"`
}

// KeyValue is a single key of an OrderedMap.
type KeyValue struct {
	Key   string
	Value any
}

// OrderedMap is a mapping that remembers the order its keys were authored in.
// Decoders produce it for the legacy field syntax, where fields are keyed by
// handle instead of listed, so that normalization can keep authored order.
type OrderedMap []KeyValue

// Get returns the value stored under key.
func (m OrderedMap) Get(key string) (any, bool) {
	for _, kv := range m {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Normalize converts an authored field list into the ordered sequence form.
//
// Accepted shapes:
//
//	[]Entry          already normalized, returned as is
//	[]any            sequence of {handle, field} mappings
//	OrderedMap       legacy syntax keyed by handle, authored order kept
//	map[string]any   legacy syntax keyed by handle, ordered by handle
//	nil              empty field list
//
// Normalizing the output again is a no-op.
func Normalize(raw any) ([]Entry, error) {
	switch v := raw.(type) {
	case nil:
		return []Entry{}, nil
	case []Entry:
		return v, nil
	case []any:
		return fromSequence(v)
	case []map[string]any:
		seq := make([]any, len(v))
		for i, m := range v {
			seq[i] = m
		}
		return fromSequence(seq)
	case OrderedMap:
		return fromLegacy(v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		om := make(OrderedMap, 0, len(keys))
		for _, k := range keys {
			om = append(om, KeyValue{Key: k, Value: v[k]})
		}
		return fromLegacy(om)
	default:
		return nil, &domain.ValidationError{
			Fields: map[string]string{"fields": fmt.Sprintf("unsupported field list type %T", raw)},
		}
	}
}

func fromSequence(seq []any) ([]Entry, error) {
	entries := make([]Entry, 0, len(seq))
	for i, item := range seq {
		m, err := asMap(item)
		if err != nil {
			return nil, &domain.ValidationError{
				Fields: map[string]string{fmt.Sprintf("fields.%d", i): err.Error()},
			}
		}

		handle, _ := m.Get("handle")
		h, ok := handle.(string)
		if !ok || h == "" {
			return nil, &domain.ValidationError{
				Fields: map[string]string{fmt.Sprintf("fields.%d.handle", i): domain.MsgRequired},
			}
		}

		field, _ := m.Get("field")
		config, err := fieldConfig(field)
		if err != nil {
			return nil, &domain.ValidationError{
				Fields: map[string]string{fmt.Sprintf("fields.%d.field", i): err.Error()},
			}
		}
		entries = append(entries, Entry{Handle: h, Field: config})
	}
	return entries, nil
}

func fromLegacy(m OrderedMap) ([]Entry, error) {
	entries := make([]Entry, 0, len(m))
	for _, kv := range m {
		config, err := fieldConfig(kv.Value)
		if err != nil {
			return nil, &domain.ValidationError{
				Fields: map[string]string{"fields." + kv.Key: err.Error()},
			}
		}
		entries = append(entries, Entry{Handle: kv.Key, Field: config})
	}
	return entries, nil
}

// fieldConfig accepts a field definition in any decoded mapping shape.
func fieldConfig(v any) (map[string]any, error) {
	switch f := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return f, nil
	case OrderedMap:
		return f.toMap(), nil
	default:
		return nil, fmt.Errorf("must be a mapping, got %T", v)
	}
}

func asMap(v any) (OrderedMap, error) {
	switch m := v.(type) {
	case OrderedMap:
		return m, nil
	case map[string]any:
		om := make(OrderedMap, 0, len(m))
		for k, val := range m {
			om = append(om, KeyValue{Key: k, Value: val})
		}
		return om, nil
	case Entry:
		return OrderedMap{{Key: "handle", Value: m.Handle}, {Key: "field", Value: m.Field}}, nil
	default:
		return nil, fmt.Errorf("must be a mapping, got %T", v)
	}
}

func (m OrderedMap) toMap() map[string]any {
	out := make(map[string]any, len(m))
	for _, kv := range m {
		if nested, ok := kv.Value.(OrderedMap); ok {
			out[kv.Key] = nested.toMap()
			continue
		}
		out[kv.Key] = kv.Value
	}
	return out
}
