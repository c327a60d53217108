package middleware

import "showcase/internal/section"

// Noop is a pass-through middleware, handy as a placeholder in a chain.
func Noop() section.Middleware {
	return func(next section.Handler) section.Handler {
		return next
	}
}
