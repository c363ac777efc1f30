package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
)

// errSaveHalted reports a save that a saving listener halted. It maps to
// 409 Conflict.
var errSaveHalted = fmt.Errorf("save halted by a listener: %w", domain.ErrConflict)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// quiet reports whether the request asks for a quiet save (?quiet=true).
// An unparsable value is a validation error.
func quiet(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("quiet")
	if raw == "" {
		return false, nil
	}
	q, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &domain.ValidationError{
			Fields: map[string]string{"quiet": "must be a boolean"},
		}
	}
	return q, nil
}

// slugsParam collects term slugs from repeated or comma-separated ?slug
// parameters, dropping blanks and duplicates.
func slugsParam(r *http.Request) []string {
	seen := make(map[string]bool)
	var slugs []string
	for _, raw := range r.URL.Query()["slug"] {
		for s := range strings.SplitSeq(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			slugs = append(slugs, s)
		}
	}
	return slugs
}

// isNotFound reports whether err means the looked-up entity does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// saveStatus picks the response status for a successful PUT.
func saveStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}
