package demo

import (
	"fmt"
	"io"

	"showcase/internal/console"
	"showcase/internal/sequence"
)

// printer returns a closure writing any value followed by a space.
func printer[T any](w io.Writer) func(T) {
	return func(v T) { fmt.Fprintf(w, "%v ", v) }
}

// Closures prints a slice, multiplies it in place by a captured constant and
// prints it again.
func Closures(w io.Writer) []int {
	console.Separator(w, "Closures Demo")

	printValue := printer[int](w)

	multiplier := 3
	multiply := func(x int) int { return x * multiplier }

	nums := []int{1, 2, 3, 4, 5}
	fmt.Fprint(w, "Original: ")
	sequence.ForEach(sequence.Of(nums...), printValue)

	fmt.Fprintf(w, "\nMultiplied by %d: ", multiplier)
	sequence.TransformInPlace(nums, multiply)
	sequence.ForEach(sequence.Of(nums...), printValue)
	fmt.Fprintln(w)

	return nums
}
