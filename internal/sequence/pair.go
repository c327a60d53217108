package sequence

import "iter"

// Pair is an ordered two-component value.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Pairs yields the components of each pair, so callers can range with two
// loop variables.
func Pairs[A, B any](ps []Pair[A, B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for _, p := range ps {
			if !yield(p.Unpack()) {
				return
			}
		}
	}
}
