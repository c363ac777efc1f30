package middleware

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/dto"
)

// RateLimit returns middleware that throttles requests with a single token
// bucket refilled at rps tokens per second. Requests arriving with an empty
// bucket get a 429 problem response with a Retry-After hint. An rps of zero
// or less disables throttling.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(rps), max(burst, 1))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				dto.WriteErrorResponse(w, r, dto.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
