package eventbus

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/events"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/telemetry"
)

// keyed is implemented by fieldsets and terms.
type keyed interface {
	Key() string
}

// MetricsListener returns an observer counting every dispatched event by
// name. Safe to call with nil metrics.
func MetricsListener(metrics *telemetry.Metrics) Listener {
	return Observer(func(ctx context.Context, e events.Event) {
		if metrics == nil {
			return
		}
		metrics.LifecycleEventTotal.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrEventName.String(e.Name.String())),
		)
	})
}

// LoggingListener returns an observer logging every dispatched event at
// debug level through the logger carried by ctx.
func LoggingListener() Listener {
	return Observer(func(ctx context.Context, e events.Event) {
		attrs := []any{slog.String("event", e.Name.String())}
		if k, ok := e.Entity.(keyed); ok {
			attrs = append(attrs, slog.String("key", k.Key()))
		}
		logging.FromContext(ctx).DebugContext(ctx, "lifecycle event", attrs...)
	})
}
