package demo

import (
	"fmt"
	"io"

	"showcase/internal/console"
	"showcase/internal/sequence"
)

// Destructuring ranges over (name, age) pairs with one variable per component.
func Destructuring(w io.Writer) []sequence.Pair[string, int] {
	console.Separator(w, "Destructuring Demo")

	data := []sequence.Pair[string, int]{
		{First: "Alice", Second: 25},
		{First: "Bob", Second: 30},
		{First: "Charlie", Second: 35},
	}

	for name, age := range sequence.Pairs(data) {
		fmt.Fprintf(w, "%s is %d years old\n", name, age)
	}

	return data
}
