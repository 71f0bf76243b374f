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
	"slices"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http"
	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/merchant-dashboard/internal/app"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/config"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/health"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	merchantAPIName = "merchant-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logOut, logCloser := logging.Output(os.Stderr, logging.FileOptions{
		Path:       cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	})
	defer func() { _ = logCloser.Close() }()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

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

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	views := do.MustInvoke[*app.ViewService](injector)
	registry.Register(views)

	// Expire idle views in the background.
	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	go views.RunSweeper(sweepCtx, cfg.Dashboard.Views.SweepInterval)
	server.OnShutdown(views.CloseAll)

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

	// Graceful shutdown: the OnShutdown hook drops the open views so their
	// streams and pending fetches end while HTTP requests drain.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	stopSweeper()
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

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
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

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, merchantAPIName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MerchantClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewMerchantClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		client := do.MustInvoke[ports.MerchantClient](i)
		return app.NewDashboardService(client, cfg.Dashboard.WeekStartDay(), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ViewService, error) {
		client := do.MustInvoke[ports.MerchantClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewViewService(client, app.ViewSettings{
			PageSize:    cfg.Dashboard.PageSize,
			SearchDelay: cfg.Dashboard.SearchDebounce,
			WeekStart:   cfg.Dashboard.WeekStartDay(),
			MaxOpen:     cfg.Dashboard.Views.MaxOpen,
			IdleTTL:     cfg.Dashboard.Views.IdleTTL,
		}, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ViewService, error) {
		return do.MustInvoke[*app.ViewService](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		views := do.MustInvoke[ports.ViewService](i)
		svc := do.MustInvoke[ports.DashboardService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)

		return adapthttp.Handlers{
			Health:   handlers.NewHealthHandler(registry),
			Views:    handlers.NewViewHandler(views, cfg.Dashboard.Views.AwaitTimeout),
			Stream:   handlers.NewStreamHandler(views, originChecker(cfg.Server.AllowedOrigins)),
			Export:   handlers.NewExportHandler(views),
			Points:   handlers.NewPointsHandler(svc, cfg.Dashboard.PageSize),
			Merchant: handlers.NewMerchantHandler(svc),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, cfg.Server.RequestTimeout,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.ForwardAuthorization(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// originChecker allows websocket upgrades from the listed origins. Nil keeps
// the same-origin default.
func originChecker(allowed []string) func(*nethttp.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	if slices.Contains(allowed, "*") {
		return func(*nethttp.Request) bool { return true }
	}
	return func(r *nethttp.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
