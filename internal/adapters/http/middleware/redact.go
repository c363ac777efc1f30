package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders returns one attribute per header, sorted by name. Values of
// headers listed in logging.SensitiveHeaders are replaced with "[REDACTED]";
// multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
