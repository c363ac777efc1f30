// Package health provides a thread-safe health check registry for tracking
// the health of the storage backend and other dependencies. The registry is
// used by the readiness endpoint to determine whether the service can accept
// traffic.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single health check.
const DefaultCheckTimeout = 2 * time.Second

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked concurrently on each readiness request.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Zero disables the bound.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks concurrently and returns
// results keyed by checker name. Nil values indicate healthy components.
// When two checkers share a name, the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			checkCtx := ctx
			if r.timeout > 0 {
				var cancel context.CancelFunc
				checkCtx, cancel = context.WithTimeout(ctx, r.timeout)
				defer cancel()
			}
			errs[i] = c.HealthCheck(checkCtx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// CheckFunc adapts a function into a named [ports.HealthChecker].
type CheckFunc struct {
	name  string
	check func(ctx context.Context) error
}

// Compile-time interface check.
var _ ports.HealthChecker = CheckFunc{}

// NewCheckFunc creates a named checker backed by fn.
func NewCheckFunc(name string, fn func(ctx context.Context) error) CheckFunc {
	return CheckFunc{name: name, check: fn}
}

// Name implements [ports.HealthChecker].
func (c CheckFunc) Name() string { return c.name }

// HealthCheck implements [ports.HealthChecker].
func (c CheckFunc) HealthCheck(ctx context.Context) error { return c.check(ctx) }
