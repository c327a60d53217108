// Package ownership provides explicit ownership handles for values that
// need deterministic lifetimes:
//
//   - Unique: a value reachable through exactly one owning handle. Moving
//     the handle empties the source.
//   - Shared: a reference-counted value kept alive while any handle owns it.
//     The last Release drops the value and runs the optional drop hook.
//   - Weak: a non-owning handle that yields a Shared only while the value is
//     still alive.
//
// Counts are atomic, so handles may be passed between goroutines. Each handle
// must be released at most once; Release on an already released handle is a
// no-op.
package ownership
