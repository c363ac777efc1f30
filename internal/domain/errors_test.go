package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{"slug": MsgRequired, "handle": MsgRequired}}
	want := "validation error: handle: is required; slug: is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	original := &ValidationError{Fields: map[string]string{"taxonomy": MsgRequired}}
	wrapped := fmt.Errorf("saving term: %w", original)

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if verr.Fields["taxonomy"] != MsgRequired {
		t.Errorf("Fields[\"taxonomy\"] = %q, want %q", verr.Fields["taxonomy"], MsgRequired)
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrValidation", ErrValidation},
		{"ErrConflict", ErrConflict},
		{"ErrUnavailable", ErrUnavailable},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false", tt.name)
			}
		})
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
