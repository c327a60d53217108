package middleware

import (
	"context"
	"io"
	"log/slog"
	"time"

	"showcase/internal/section"
)

// Logger logs one structured line per completed section.
// Fields:
// - run_id (set by RunID)
// - section
// - latency_ms
func Logger(logger *slog.Logger) section.Middleware {
	return func(next section.Handler) section.Handler {
		return func(ctx context.Context, w io.Writer) {
			start := time.Now()

			next(ctx, w)

			logger.LogAttrs(ctx, slog.LevelInfo, "section_completed",
				slog.String("run_id", RunIDFrom(ctx)),
				slog.String("section", section.NameFrom(ctx)),
				slog.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
			)
		}
	}
}
