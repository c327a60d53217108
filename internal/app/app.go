// Package app runs the whole program: build banner, every demo section inside
// the total timer, and the completion banner.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"showcase/internal/buildinfo"
	"showcase/internal/console"
	"showcase/internal/demo"
	"showcase/internal/logging"
	"showcase/internal/metrics"
	"showcase/internal/section"
	"showcase/internal/section/middleware"
	"showcase/internal/timer"
)

// TotalTimerName labels the timer wrapped around all sections.
const TotalTimerName = "Total Execution"

// ErrNilWriter is returned by Run when no output writer is given.
var ErrNilWriter = errors.New("output writer is nil")

// App sequences the program's output.
type App struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *metrics.Metrics
	sections []section.Section
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the diagnostics logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithTracer sets the tracer used for the run and section spans.
func WithTracer(t trace.Tracer) Option {
	return func(a *App) { a.tracer = t }
}

// WithMetrics enables section and run metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *App) { a.metrics = m }
}

// WithSections replaces the demo sections.
func WithSections(s ...section.Section) Option {
	return func(a *App) { a.sections = s }
}

// New creates an App running demo.Sections by default.
func New(opts ...Option) *App {
	a := &App{
		logger:   logging.Discard(),
		tracer:   noop.NewTracerProvider().Tracer("showcase"),
		sections: demo.Sections(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run writes the full program output to out. A panic inside a section is not
// recovered; the total timer still reports before it propagates.
func (a *App) Run(ctx context.Context, out io.Writer) error {
	if out == nil {
		return ErrNilWriter
	}

	ctx, runID := middleware.EnsureRunID(ctx)
	info := buildinfo.Current()
	a.logger.Info("run_started",
		"run_id", runID,
		"version", info.Version,
		"build_type", info.BuildType,
		"go_version", info.GoVersion,
	)

	info.Print(out)

	opts := []timer.Option{timer.WithWriter(out), timer.WithTracer(a.tracer)}
	if a.metrics != nil {
		opts = append(opts, timer.WithObserver(a.metrics.TotalDuration))
	}
	elapsed := timer.Scope(ctx, TotalTimerName, func(ctx context.Context) {
		mws := a.middlewares()
		for _, s := range a.sections {
			section.Run(ctx, out, s, mws...)
		}
	}, opts...)

	console.Separator(out, "Program Completed")

	a.logger.Info("run_completed", "run_id", runID, "elapsed", elapsed)
	return nil
}

func (a *App) middlewares() []section.Middleware {
	mws := []section.Middleware{
		middleware.RunID(),
		middleware.Logger(a.logger),
		middleware.Tracing(a.tracer),
	}
	if a.metrics != nil {
		mws = append(mws, middleware.Metrics(a.metrics))
	}
	return mws
}
