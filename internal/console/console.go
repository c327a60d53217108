// Package console holds the banner primitives shared by every section of the program output.
package console

import (
	"fmt"
	"io"
)

// Rule is the horizontal line framing banners.
const Rule = "═══════════════════════════════════════════════════════════"

// Separator writes a blank line and a rule. A non-empty title is written
// indented under the rule and closed by a second rule.
func Separator(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", Rule)
	if title != "" {
		fmt.Fprintf(w, "  %s\n", title)
		fmt.Fprintf(w, "%s\n", Rule)
	}
}
