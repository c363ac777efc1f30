package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/dto"
)

// errInternalServer is what clients see for a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a 500 problem
// response, unless the handler already started writing. The log entry names
// the matched route, the content identifiers from its parameters and the
// request ID set by RequestID further down the chain.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []slog.Attr{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r)),
				}
				attrs = append(attrs, routeParams(r)...)
				attrs = append(attrs,
					slog.String("request_id", rw.Header().Get(headerRequestID)),
					slog.String("stack", string(debug.Stack())),
				)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
