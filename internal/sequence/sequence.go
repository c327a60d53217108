package sequence

import (
	"iter"
	"slices"
)

// Range yields lo through hi inclusive.
func Range(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := lo; i <= hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Of yields vs in order.
func Of[T any](vs ...T) iter.Seq[T] {
	return slices.Values(vs)
}

// Filter yields the values of seq for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields fn applied to each value of seq.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Collect materializes seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// ForEach calls fn for every value of seq.
func ForEach[T any](seq iter.Seq[T], fn func(T)) {
	for v := range seq {
		fn(v)
	}
}

// TransformInPlace replaces every element of s with fn applied to it.
func TransformInPlace[S ~[]T, T any](s S, fn func(T) T) {
	for i, v := range s {
		s[i] = fn(v)
	}
}
