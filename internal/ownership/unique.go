package ownership

// Unique owns a value exclusively.
type Unique[T any] struct {
	value *T
}

// NewUnique takes ownership of v.
func NewUnique[T any](v T) *Unique[T] {
	return &Unique[T]{value: &v}
}

// Get returns a pointer to the owned value, or nil if the handle is empty.
func (u *Unique[T]) Get() *T {
	return u.value
}

// Valid reports whether the handle owns a value.
func (u *Unique[T]) Valid() bool {
	return u.value != nil
}

// Take moves the value out of the handle, leaving it empty.
func (u *Unique[T]) Take() (T, bool) {
	var zero T
	if u.value == nil {
		return zero, false
	}
	v := *u.value
	u.value = nil
	return v, true
}

// Move transfers ownership to a new handle and empties u.
func (u *Unique[T]) Move() *Unique[T] {
	n := &Unique[T]{value: u.value}
	u.value = nil
	return n
}

// Reset drops the owned value.
func (u *Unique[T]) Reset() {
	u.value = nil
}
