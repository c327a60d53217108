package middleware

import (
	"context"
	"io"

	"github.com/google/uuid"

	"showcase/internal/section"
)

type runIDKey struct{}

// WithRunID stores id in ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFrom returns the run id carried by ctx, or "".
func RunIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// EnsureRunID returns ctx unchanged if it already carries a run id,
// otherwise a child context with a new UUID.
func EnsureRunID(ctx context.Context) (context.Context, string) {
	if id := RunIDFrom(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRunID(ctx, id), id
}

// RunID makes sure every section sees a run id. An id set by the caller is
// preserved so all sections of one run share it.
func RunID() section.Middleware {
	return func(next section.Handler) section.Handler {
		return func(ctx context.Context, w io.Writer) {
			ctx, _ = EnsureRunID(ctx)
			next(ctx, w)
		}
	}
}
