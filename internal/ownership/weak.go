package ownership

// Weak refers to a shared value without keeping it alive.
type Weak[T any] struct {
	c *control[T]
}

// Lock returns a new owning handle if the value is still alive.
// The caller must Release it.
func (w Weak[T]) Lock() (*Shared[T], bool) {
	if w.c == nil || !w.c.acquire() {
		return nil, false
	}
	return &Shared[T]{c: w.c}, true
}

// Expired reports whether every owner has released the value.
func (w Weak[T]) Expired() bool {
	return w.UseCount() == 0
}

// UseCount returns the number of live owning handles.
func (w Weak[T]) UseCount() int64 {
	if w.c == nil {
		return 0
	}
	return w.c.strong.Load()
}
