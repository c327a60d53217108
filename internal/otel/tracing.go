package otel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"showcase/internal/buildinfo"
	"showcase/internal/config"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Init builds the tracer provider. Spans stay in-process unless the OTLP
// exporter is selected with OTEL_TRACES_EXPORTER=otlp. Extra span processors
// (for example a tracetest.SpanRecorder) can be passed in procs.
func Init(ctx context.Context, cfg config.TracingConfig, logger *slog.Logger, procs ...trace.SpanProcessor) (oteltrace.TracerProvider, ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if cfg.Disabled {
		logger.Debug("tracing_configured", "tracing_enabled", false)
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(buildinfo.Version),
		),
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil && !errors.Is(err, resource.ErrPartialResource) {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []trace.TracerProviderOption{
		trace.WithResource(res),
		trace.WithSampler(getSampler()),
	}
	for _, p := range procs {
		opts = append(opts, trace.WithSpanProcessor(p))
	}

	if cfg.Exporter == "otlp" {
		exporter, expErr := newExporter(ctx, cfg.Protocol)
		if expErr != nil {
			// Degrade gracefully: keep spans in-process.
			logger.Error("tracing_init_failed", "error", expErr.Error())
		} else {
			opts = append(opts, trace.WithBatcher(exporter))
		}
	}

	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	logger.Debug("tracing_configured",
		"tracing_enabled", true,
		"exporter", cfg.Exporter,
		"otlp_protocol", cfg.Protocol,
		"sampler", samplerName(),
	)

	return tp, tp.Shutdown, nil
}

func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf":
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}
}

// defaultSampler is used when OTEL_TRACES_SAMPLER is unset or unknown.
const defaultSampler = "parentbased_always_on"

// samplerName returns the sampler getSampler builds, as an OTEL_TRACES_SAMPLER value.
func samplerName() string {
	switch name := os.Getenv("OTEL_TRACES_SAMPLER"); name {
	case "always_on", "always_off", "traceidratio",
		"parentbased_always_on", "parentbased_always_off", "parentbased_traceidratio":
		return name
	default:
		return defaultSampler
	}
}

func samplerRatio() float64 {
	ratio := 1.0
	if arg := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); arg != "" {
		fmt.Sscanf(arg, "%f", &ratio)
	}
	return ratio
}

func getSampler() trace.Sampler {
	switch samplerName() {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(samplerRatio())
	case "parentbased_always_on":
		return trace.ParentBased(trace.AlwaysSample())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(samplerRatio()))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}
