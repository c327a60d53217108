package middleware

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"showcase/internal/section"
)

// Tracing wraps each section in a span named after it.
func Tracing(tracer trace.Tracer) section.Middleware {
	return func(next section.Handler) section.Handler {
		return func(ctx context.Context, w io.Writer) {
			ctx, span := tracer.Start(ctx, section.NameFrom(ctx),
				trace.WithAttributes(attribute.String("showcase.run_id", RunIDFrom(ctx))),
			)
			defer span.End()

			next(ctx, w)
		}
	}
}
