package ports

import (
	"context"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/events"
)

// EventBus dispatches lifecycle events to registered listeners.
type EventBus interface {
	// Dispatch delivers e to its listeners in registration order. For a
	// cancellable event the first listener returning false stops delivery
	// and Dispatch returns false. Non-cancellable events always return true.
	Dispatch(ctx context.Context, e events.Event) bool
}
