package domain

import "github.com/mitchellh/copystructure"

// CloneData deep-copies a contents or data mapping, nested maps and slices
// included. Nil stays nil.
func CloneData(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return copystructure.Must(copystructure.Copy(m)).(map[string]any)
}
