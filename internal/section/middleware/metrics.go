package middleware

import (
	"context"
	"io"

	"showcase/internal/metrics"
	"showcase/internal/section"
	"showcase/internal/timer"
)

// Metrics counts every section and records its duration.
func Metrics(m *metrics.Metrics) section.Middleware {
	return func(next section.Handler) section.Handler {
		return func(ctx context.Context, w io.Writer) {
			name := section.NameFrom(ctx)

			ctx, t := timer.Start(ctx, name,
				timer.Quiet(),
				timer.WithObserver(m.SectionDuration.WithLabelValues(name)),
			)
			defer t.Stop()

			m.SectionsTotal.WithLabelValues(name).Inc()
			next(ctx, w)
		}
	}
}
