package art

import (
	"fmt"
	"io"
	"strings"
)

// Gallery draws every pattern in sequence, one framed piece per pattern.
func Gallery(w io.Writer, width, height int, seed int64) {
	rule := strings.Repeat("=", 100)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, strings.Repeat(" ", 30)+"GENERATIVE ART GALLERY")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	c := NewCanvas(width, height)
	for i, p := range Patterns {
		fmt.Fprintf(w, "  [%d] %s - %s\n", i+1, p.Title, p.Desc)
		fmt.Fprintln(w, "  "+strings.Repeat("─", 80))
		p.Draw(c, seed)
		fmt.Fprint(w, c.String())
		fmt.Fprintln(w)
		c.Clear()
	}
}
