// Package section runs named units of console output through a middleware chain.
package section

import (
	"context"
	"io"
)

// Handler writes one section of output.
type Handler func(ctx context.Context, w io.Writer)

// Middleware wraps a Handler with cross-cutting behavior.
type Middleware func(Handler) Handler

// Section is a named Handler.
type Section struct {
	Name string
	Run  Handler
}

type nameKey struct{}

// WithName stores the running section's name in ctx.
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, nameKey{}, name)
}

// NameFrom returns the running section's name, or "" outside a section.
func NameFrom(ctx context.Context) string {
	name, _ := ctx.Value(nameKey{}).(string)
	return name
}

// Chain wraps h so that mws[0] is the outermost middleware.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Run executes s through mws with its name available via NameFrom.
func Run(ctx context.Context, w io.Writer, s Section, mws ...Middleware) {
	Chain(s.Run, mws...)(WithName(ctx, s.Name), w)
}
