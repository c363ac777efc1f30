// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http"
	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/eventbus"
	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/storage/flatfile"
	"github.com/jsamuelsen11/go-content-blueprints/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/go-content-blueprints/internal/app"
	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/taxonomy"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/config"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/health"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/logging"
	"github.com/jsamuelsen11/go-content-blueprints/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerStorage(injector, cfg, logger)
	registerDependencies(injector, cfg, logger)

	// Register configured taxonomies before serving.
	if err := seedTaxonomies(ctx, injector, cfg); err != nil {
		return fmt.Errorf("registering taxonomies: %w", err)
	}
	if cfg.Storage.Driver == config.DriverMemory {
		seedEntries(injector, cfg, logger)
	}

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registerHealthChecks(injector, cfg)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// registerStorage provides the repositories for the configured driver.
// Taxonomies are always held in memory; they come from configuration.
func registerStorage(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*memory.TaxonomyRepository, error) {
		return memory.NewTaxonomyRepository(), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TaxonomyRepository, error) {
		return do.MustInvoke[*memory.TaxonomyRepository](i), nil
	})

	switch cfg.Storage.Driver {
	case config.DriverFlatFile:
		logger.Info("using flat-file storage", slog.String("path", cfg.Storage.Path))

		do.Provide(injector, func(_ do.Injector) (*flatfile.Store, error) {
			return flatfile.New(cfg.Storage.Path), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.FieldsetRepository, error) {
			return flatfile.NewFieldsetRepository(do.MustInvoke[*flatfile.Store](i)), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.TermRepository, error) {
			store := do.MustInvoke[*flatfile.Store](i)
			taxonomies := do.MustInvoke[*memory.TaxonomyRepository](i)
			return flatfile.NewTermRepository(store, taxonomies), nil
		})
	default:
		logger.Info("using in-memory storage")

		do.Provide(injector, func(_ do.Injector) (ports.FieldsetRepository, error) {
			return memory.NewFieldsetRepository(), nil
		})
		do.Provide(injector, func(_ do.Injector) (*memory.TermRepository, error) {
			return memory.NewTermRepository(), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.TermRepository, error) {
			return do.MustInvoke[*memory.TermRepository](i), nil
		})
	}
}

// seedTaxonomies registers every configured taxonomy. Term blueprints are
// listed from the fieldset repository.
func seedTaxonomies(ctx context.Context, injector *do.RootScope, cfg *config.Config) error {
	repo := do.MustInvoke[ports.TaxonomyRepository](injector)
	blueprints := do.MustInvoke[ports.FieldsetRepository](injector)

	for _, tc := range cfg.Taxonomies {
		tax := taxonomy.New(tc.Handle, blueprints, taxonomy.WithTitle(tc.Title))
		if err := repo.Save(ctx, tax); err != nil {
			return fmt.Errorf("taxonomy %q: %w", tc.Handle, err)
		}
	}
	return nil
}

// seedEntries records the configured entry references in the memory term
// repository.
func seedEntries(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if len(cfg.Storage.Entries) == 0 {
		return
	}
	terms := do.MustInvoke[*memory.TermRepository](injector)
	for _, entry := range cfg.Storage.Entries {
		terms.TagSlugs(entry.ID, entry.Terms)
	}
	logger.Info("seeded entry references", slog.Int("entries", len(cfg.Storage.Entries)))
}

func registerHealthChecks(injector *do.RootScope, cfg *config.Config) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	if cfg.Storage.Driver == config.DriverFlatFile {
		registry.Register(do.MustInvoke[*flatfile.Store](injector))
	}

	taxonomies := do.MustInvoke[ports.TaxonomyRepository](injector)
	registry.Register(health.NewCheckFunc("taxonomies", func(ctx context.Context) error {
		all, err := taxonomies.All(ctx)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			return errors.New("no taxonomies registered")
		}
		return nil
	}))
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.EventBus, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		bus := eventbus.NewBus(logger)
		bus.ListenAll(eventbus.LoggingListener())
		bus.ListenAll(eventbus.MetricsListener(metrics))
		return bus, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FieldsetService, error) {
		repo := do.MustInvoke[ports.FieldsetRepository](i)
		bus := do.MustInvoke[ports.EventBus](i)
		return app.NewFieldsetService(repo, bus, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TermService, error) {
		terms := do.MustInvoke[ports.TermRepository](i)
		taxonomies := do.MustInvoke[ports.TaxonomyRepository](i)
		bus := do.MustInvoke[ports.EventBus](i)
		return app.NewTermService(terms, taxonomies, bus, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.FieldsetHandler, error) {
		svc := do.MustInvoke[ports.FieldsetService](i)
		return handlers.NewFieldsetHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TermHandler, error) {
		terms := do.MustInvoke[ports.TermService](i)
		fieldsets := do.MustInvoke[ports.FieldsetService](i)
		return handlers.NewTermHandler(terms, fieldsets), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		h := adapthttp.Handlers{
			Fieldsets: do.MustInvoke[*handlers.FieldsetHandler](i),
			Terms:     do.MustInvoke[*handlers.TermHandler](i),
			Health:    do.MustInvoke[*handlers.HealthHandler](i),
		}

		var api []func(nethttp.Handler) nethttp.Handler
		api = append(api, middleware.RateLimit(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst))
		if cfg.Server.RequestTimeout > 0 {
			api = append(api, middleware.Timeout(cfg.Server.RequestTimeout))
		}

		return adapthttp.NewRouter(h, api,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
