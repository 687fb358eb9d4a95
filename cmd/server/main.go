package main

import (
	"context"
	"encoding/json"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/ahrav/enumkit/internal/api"
	"github.com/ahrav/enumkit/internal/api/debug"
	"github.com/ahrav/enumkit/internal/api/mux"
	"github.com/ahrav/enumkit/internal/api/routes"
	appcatalog "github.com/ahrav/enumkit/internal/app/catalog"
	"github.com/ahrav/enumkit/internal/config"
	"github.com/ahrav/enumkit/internal/config/fileloader"
	_ "github.com/ahrav/enumkit/internal/refdata"
	"github.com/ahrav/enumkit/pkg/catalog"
	"github.com/ahrav/enumkit/pkg/common/logger"
	"github.com/ahrav/enumkit/pkg/common/otel"
)

var build = "develop"

const serviceType = "enumkit-server"

func main() {
	// Set the correct number of threads for the service.
	_, _ = maxprocs.Set()

	hostname, err := os.Hostname()
	if err != nil {
		stdlog.Fatalf("failed to get hostname: %v", err)
	}

	logEvents := logger.Events{
		Error: func(ctx context.Context, r logger.Record) {
			errorAttrs := map[string]any{
				"error_message": r.Message,
				"error_time":    r.Time.UTC().Format(time.RFC3339),
				"trace_id":      otel.GetTraceID(ctx),
			}
			for k, v := range r.Attributes {
				errorAttrs[k] = v
			}

			errorAttrsJSON, err := json.Marshal(errorAttrs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to marshal error attributes: %v\n", err)
				return
			}

			fmt.Fprintf(os.Stderr, "Error event: %s, details: %s\n", r.Message, errorAttrsJSON)
		},
	}

	traceIDFn := func(ctx context.Context) string {
		return otel.GetTraceID(ctx)
	}

	svcName := fmt.Sprintf("ENUMKIT-SERVER-%s", hostname)
	metadata := map[string]string{
		"service":  svcName,
		"hostname": hostname,
		"app":      serviceType,
	}

	log := logger.NewWithMetadata(os.Stdout, logger.LevelInfo, svcName, traceIDFn, logEvents, metadata)

	ctx := context.Background()

	if err := run(ctx, log, hostname); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, hostname string) error {
	// -------------------------------------------------------------------------
	// GOMAXPROCS
	log.Info(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// -------------------------------------------------------------------------
	// Configuration
	cfg := config.Default()
	if path := os.Getenv("ENUMKIT_CONFIG"); path != "" {
		loaded, err := fileloader.NewFileLoader(path).Load(ctx)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	applyEnvOverrides(cfg)

	// -------------------------------------------------------------------------
	// Start Tracing Support
	log.Info(ctx, "startup", "status", "initializing tracing support")

	traceProvider, teardown, err := otel.InitTelemetry(log, otel.Config{
		ServiceName:      cfg.Service.Name,
		ExporterEndpoint: cfg.Otel.Endpoint,
		ExcludedRoutes:   otel.DefaultExcludedRoutes(),
		Probability:      cfg.Otel.Probability,
		ResourceAttributes: map[string]string{
			"library.language": "go",
			"hostname":         hostname,
		},
		InsecureExporter: cfg.Otel.Insecure,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer teardown(ctx)

	tracer := traceProvider.Tracer(cfg.Service.Name)

	// -------------------------------------------------------------------------
	// Start Debug Service

	go func() {
		log.Info(ctx, "startup", "status", "debug router started", "host", cfg.Debug.Host)

		if err := http.ListenAndServe(cfg.Debug.Host, debug.Mux()); err != nil {
			log.Error(ctx, "shutdown", "status", "debug router closed", "host", cfg.Debug.Host, "msg", err)
		}
	}()

	// -------------------------------------------------------------------------
	// Catalog Service

	metrics, err := api.NewAPIMetrics(otel.GetMeterProvider())
	if err != nil {
		return fmt.Errorf("creating metrics collector: %w", err)
	}

	catalogSvc := appcatalog.NewService(log, tracer, metrics)

	// Deployed catalog files, when configured, are checked for drift against
	// the registered sets. Drift is reported, never applied: registries are
	// immutable once built.
	if cfg.Catalog.Dir != "" {
		deployed, err := catalog.LoadDir(ctx, cfg.Catalog.Dir)
		if err != nil {
			return fmt.Errorf("loading catalog dir: %w", err)
		}

		for name, changes := range catalogSvc.Drift(ctx, deployed) {
			log.Warn(ctx, "startup", "status", "catalog drift", "set", name, "changes", len(changes))
		}
	}

	// -------------------------------------------------------------------------
	// Start API Service

	log.Info(ctx, "startup", "status", "initializing API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	cfgMux := mux.Config{
		Build:   build,
		Log:     log,
		Tracer:  tracer,
		Metrics: metrics,
		Catalog: catalogSvc,
	}

	webAPI := mux.WebAPI(cfgMux,
		routes.Routes(),
		mux.WithCORS(cfg.API.CORSAllowedOrigins),
	)

	apiSrv := http.Server{
		Addr:         cfg.API.Host,
		Handler:      webAPI,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		IdleTimeout:  cfg.API.IdleTimeout,
		ErrorLog:     logger.NewStdLogger(log, logger.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info(ctx, "startup", "status", "api router started", "host", apiSrv.Addr)
		serverErrors <- apiSrv.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.Info(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, cfg.API.ShutdownTimeout)
		defer cancel()

		if err := apiSrv.Shutdown(ctx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// applyEnvOverrides lets deployment env vars win over file values.
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("DEBUG_HOST"); v != "" {
		cfg.Debug.Host = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.Otel.Endpoint = v
	}
	if v := os.Getenv("CATALOG_DIR"); v != "" {
		cfg.Catalog.Dir = v
	}
}
