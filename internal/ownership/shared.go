package ownership

import (
	"sync/atomic"
)

type control[T any] struct {
	strong atomic.Int64
	value  T
	drop   func(T)
}

// release decrements the count and drops the value when it reaches zero.
func (c *control[T]) release() {
	if c.strong.Add(-1) != 0 {
		return
	}
	v := c.value
	var zero T
	c.value = zero
	if c.drop != nil {
		c.drop(v)
	}
}

// acquire increments the count unless it already reached zero.
func (c *control[T]) acquire() bool {
	for {
		n := c.strong.Load()
		if n == 0 {
			return false
		}
		if c.strong.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Shared is one owning handle of a reference-counted value.
type Shared[T any] struct {
	c        *control[T]
	released atomic.Bool
}

// SharedOption configures a Shared value.
type SharedOption[T any] func(*control[T])

// WithDrop registers fn to run once with the value when the last owner releases it.
func WithDrop[T any](fn func(T)) SharedOption[T] {
	return func(c *control[T]) { c.drop = fn }
}

// NewShared wraps v in a new control block with a count of one.
func NewShared[T any](v T, opts ...SharedOption[T]) *Shared[T] {
	c := &control[T]{value: v}
	for _, opt := range opts {
		opt(c)
	}
	c.strong.Store(1)
	return &Shared[T]{c: c}
}

// Clone returns another owning handle to the same value.
// It returns nil if s has been released.
func (s *Shared[T]) Clone() *Shared[T] {
	if !s.Valid() || !s.c.acquire() {
		return nil
	}
	return &Shared[T]{c: s.c}
}

// Get returns a pointer to the shared value, or nil after Release.
func (s *Shared[T]) Get() *T {
	if !s.Valid() {
		return nil
	}
	return &s.c.value
}

// Valid reports whether the handle still owns the value.
func (s *Shared[T]) Valid() bool {
	return s != nil && !s.released.Load()
}

// UseCount returns the number of live owning handles, or 0 for a nil handle.
func (s *Shared[T]) UseCount() int64 {
	if s == nil {
		return 0
	}
	return s.c.strong.Load()
}

// Release gives up this handle's ownership. Releasing a nil handle is a no-op.
func (s *Shared[T]) Release() {
	if s == nil {
		return
	}
	if s.released.CompareAndSwap(false, true) {
		s.c.release()
	}
}

// Downgrade returns a non-owning handle to the value. A nil handle yields an
// expired Weak.
func (s *Shared[T]) Downgrade() Weak[T] {
	if s == nil {
		return Weak[T]{}
	}
	return Weak[T]{c: s.c}
}
