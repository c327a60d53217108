package demo

import (
	"fmt"
	"io"

	"showcase/internal/console"
	"showcase/internal/sequence"
)

// Sequences keeps the even numbers of 1..10 and squares them lazily.
func Sequences(w io.Writer) []int {
	console.Separator(w, "Lazy Sequences Demo")

	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	result := sequence.Map(
		sequence.Filter(sequence.Of(numbers...), func(n int) bool { return n%2 == 0 }),
		func(n int) int { return n * n },
	)

	fmt.Fprint(w, "Even squares: ")
	for n := range result {
		fmt.Fprintf(w, "%d ", n)
	}
	fmt.Fprintln(w)

	return sequence.Collect(result)
}
