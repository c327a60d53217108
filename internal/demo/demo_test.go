package demo

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/internal/console"
	"showcase/internal/sequence"
)

func banner(title string) string {
	return "\n" + console.Rule + "\n  " + title + "\n" + console.Rule + "\n"
}

func TestOwnership(t *testing.T) {
	var buf bytes.Buffer

	res := Ownership(&buf)

	assert.EqualValues(t, 2, res.SharedCount)
	assert.Equal(t, "Shared", res.Resolved)
	assert.True(t, res.Expired)
	assert.Equal(t, banner("Ownership Demo")+
		"Example: Unique\n"+
		"Shared count: 2\n"+
		"Example: Shared\n", buf.String())
}

func TestSequences(t *testing.T) {
	var buf bytes.Buffer

	got := Sequences(&buf)

	assert.Equal(t, []int{4, 16, 36, 64, 100}, got)
	assert.Equal(t, banner("Lazy Sequences Demo")+"Even squares: 4 16 36 64 100 \n", buf.String())
}

func TestClosures(t *testing.T) {
	var buf bytes.Buffer

	got := Closures(&buf)

	assert.Equal(t, []int{3, 6, 9, 12, 15}, got)
	assert.Equal(t, banner("Closures Demo")+
		"Original: 1 2 3 4 5 \n"+
		"Multiplied by 3: 3 6 9 12 15 \n", buf.String())
}

func TestDestructuring(t *testing.T) {
	var buf bytes.Buffer

	got := Destructuring(&buf)

	assert.Equal(t, []sequence.Pair[string, int]{
		sequence.MakePair("Alice", 25),
		sequence.MakePair("Bob", 30),
		sequence.MakePair("Charlie", 35),
	}, got)
	assert.Equal(t, banner("Destructuring Demo")+
		"Alice is 25 years old\n"+
		"Bob is 30 years old\n"+
		"Charlie is 35 years old\n", buf.String())
}

func TestPrinterIsGeneric(t *testing.T) {
	var buf bytes.Buffer
	printer[string](&buf)("a")
	printer[float64](&buf)(1.5)

	assert.Equal(t, "a 1.5 ", buf.String())
}

func TestSections(t *testing.T) {
	sections := Sections()
	require.Len(t, sections, 4)

	var names []string
	var buf bytes.Buffer
	for _, s := range sections {
		names = append(names, s.Name)
		s.Run(t.Context(), &buf)
	}

	assert.Equal(t, []string{"Ownership Demo", "Lazy Sequences Demo", "Closures Demo", "Destructuring Demo"}, names)
	for _, name := range names {
		assert.Equal(t, 1, strings.Count(buf.String(), "  "+name+"\n"), name)
	}
}

func TestDemosAreRepeatable(t *testing.T) {
	var first, second bytes.Buffer
	Sequences(&first)
	Sequences(&second)

	assert.Equal(t, first.String(), second.String())
	assert.NotPanics(t, func() { Ownership(io.Discard) })
}
