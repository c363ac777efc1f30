// Package fanout runs one call per key with bounded concurrency and keeps
// every outcome. Unlike a bare errgroup, a failing key does not cancel the
// others: callers get the values that were computed next to the errors that
// were not.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Each calls fn once per distinct key, with at most workers calls in flight
// (unbounded when workers < 1). Keys whose call succeeded are in values,
// the others in failed. Keys still waiting when ctx is done are not called
// and fail with ctx.Err().
func Each[K comparable, V any](ctx context.Context, workers int, keys []K, fn func(context.Context, K) (V, error)) (values map[K]V, failed map[K]error) {
	values = make(map[K]V, len(keys))
	failed = make(map[K]error)

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	if workers > 0 {
		g.SetLimit(workers)
	}

	seen := make(map[K]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		g.Go(func() error {
			var (
				v   V
				err = ctx.Err()
			)
			if err == nil {
				v, err = fn(ctx, key)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[key] = err
			} else {
				values[key] = v
			}
			return nil
		})
	}

	_ = g.Wait()
	return values, failed
}
