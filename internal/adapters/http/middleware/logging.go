package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
)

// contentParams are the route parameters naming the content a request acts
// on. They are copied onto the access log line when the route has them.
var contentParams = []string{"taxonomy", "slug", "handle"}

// Logging returns access-log middleware. The request logger carries the
// request and correlation IDs and is stored in the context for handlers and
// lifecycle listeners. The completion line adds the matched route, the
// content identifiers from the route parameters, the status, the response
// size and the duration; it is logged at warn for 4xx and error for 5xx.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Group("headers", headerArgs(r.Header)...),
				)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
			}
			attrs = append(attrs, routeParams(r)...)
			attrs = append(attrs,
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)

			reqLogger.LogAttrs(ctx, statusLevel(rw.statusCode), "request completed", attrs...)
		})
	}
}

// routeParams returns the non-empty content identifiers of the matched route.
func routeParams(r *http.Request) []slog.Attr {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	var attrs []slog.Attr
	for _, key := range contentParams {
		if v := rctx.URLParam(key); v != "" {
			attrs = append(attrs, slog.String(key, v))
		}
	}
	return attrs
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func headerArgs(h http.Header) []any {
	attrs := RedactHeaders(h)
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return args
}
