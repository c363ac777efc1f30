// Package eventbus provides the in-process lifecycle event bus, a recorder for
// asserting on dispatched events, and a telemetry listener.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/events"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time interface check.
var _ ports.EventBus = (*Bus)(nil)

// Listener handles a dispatched event. Returning false halts a cancellable
// event; the return value of other events is ignored.
type Listener func(ctx context.Context, e events.Event) bool

// Observer adapts a listener that never halts.
func Observer(fn func(ctx context.Context, e events.Event)) Listener {
	return func(ctx context.Context, e events.Event) bool {
		fn(ctx, e)
		return true
	}
}

// Bus is a synchronous, in-process event bus. Listeners run on the
// dispatching goroutine in registration order; wildcard listeners run after
// the listeners of the specific event name. Safe for concurrent use.
type Bus struct {
	mu        sync.RWMutex
	listeners map[events.Name][]Listener
	wildcard  []Listener
	logger    *slog.Logger
}

// NewBus creates an empty Bus. A nil logger discards log output.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		listeners: make(map[events.Name][]Listener),
		logger:    logging.OrDiscard(logger),
	}
}

// Listen registers l for the named event.
func (b *Bus) Listen(name events.Name, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[name] = append(b.listeners[name], l)
}

// ListenAll registers l for every event.
func (b *Bus) ListenAll(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wildcard = append(b.wildcard, l)
}

// Dispatch implements ports.EventBus. The listener slice is copied under a
// read lock so listeners may register further listeners without deadlock.
func (b *Bus) Dispatch(ctx context.Context, e events.Event) bool {
	b.mu.RLock()
	specific := b.listeners[e.Name]
	ls := make([]Listener, 0, len(specific)+len(b.wildcard))
	ls = append(ls, specific...)
	ls = append(ls, b.wildcard...)
	b.mu.RUnlock()

	cancellable := e.Name.Cancellable()
	for _, l := range ls {
		if !l(ctx, e) && cancellable {
			b.logger.DebugContext(ctx, "event halted by listener",
				slog.String("event", e.Name.String()),
			)
			return false
		}
	}
	return true
}
