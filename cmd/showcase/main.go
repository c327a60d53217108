package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"showcase/internal/app"
	"showcase/internal/config"
	"showcase/internal/logging"
	"showcase/internal/metrics"
	"showcase/internal/otel"
)

// Command-line arguments are ignored; the program always exits 0 unless setup fails.
func main() {
	if err := run(context.Background(), config.Load(), os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
}

// run writes the program output to stdout and diagnostics to stderr.
func run(ctx context.Context, cfg *config.AppConfig, stdout, stderr io.Writer) error {
	logger := logging.New(cfg.Log, stderr)

	tp, shutdown, err := otel.Init(ctx, cfg.Tracing, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Error("tracing_shutdown_failed", "error", err.Error())
		}
	}()

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg, cfg.Metrics.Buckets)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	a := app.New(
		app.WithLogger(logger),
		app.WithTracer(tp.Tracer("showcase")),
		app.WithMetrics(m),
	)
	if err := a.Run(ctx, stdout); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	if cfg.Metrics.Dump {
		if err := metrics.Dump(reg, stderr); err != nil {
			logger.Error("metrics_dump_failed", "error", err.Error())
		}
	}
	return nil
}
