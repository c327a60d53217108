package demo

import (
	"context"
	"io"

	"showcase/internal/section"
)

// Sections returns the demos in the order they run.
func Sections() []section.Section {
	return []section.Section{
		{Name: "Ownership Demo", Run: func(_ context.Context, w io.Writer) { Ownership(w) }},
		{Name: "Lazy Sequences Demo", Run: func(_ context.Context, w io.Writer) { Sequences(w) }},
		{Name: "Closures Demo", Run: func(_ context.Context, w io.Writer) { Closures(w) }},
		{Name: "Destructuring Demo", Run: func(_ context.Context, w io.Writer) { Destructuring(w) }},
	}
}
