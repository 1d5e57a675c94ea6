package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/kaelum/glimmer/internal/particle"
	"github.com/kaelum/glimmer/internal/sim"
)

const (
	clearScreen = "\033[2J\033[H"
	homeCursor  = "\033[1;1H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	colorReset  = "\033[0m"
)

// Bright foreground codes indexed by particle.Color.
var colorCodes = [particle.NumColors]string{
	"\033[91m", "\033[92m", "\033[93m", "\033[94m", "\033[95m", "\033[96m", "\033[97m",
}

// Renderer writes frames to a terminal as raw ANSI. The first frame takes
// over the screen and hides the cursor; Close hands both back.
type Renderer struct {
	out     io.Writer
	started bool
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) Present(f *particle.Frame) error {
	var b strings.Builder
	b.Grow(f.Width*f.Height + f.Height*16)

	if !r.started {
		b.WriteString(hideCursor)
		b.WriteString(clearScreen)
		r.started = true
	} else {
		b.WriteString(homeCursor)
	}

	for y := 0; y < f.Height; y++ {
		active := ""
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			if c.Glyph == particle.GlyphNone {
				b.WriteByte(' ')
				continue
			}
			if code := colorCodes[c.Color]; code != active {
				b.WriteString(code)
				active = code
			}
			b.WriteRune(c.Glyph.Rune())
		}
		if active != "" {
			b.WriteString(colorReset)
		}
		if y < f.Height-1 {
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) Close(s sim.Summary) error {
	rule := strings.Repeat("=", 40)

	var b strings.Builder
	b.WriteString(colorReset)
	b.WriteString(showCursor)
	b.WriteString("\n\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "total frames rendered: %d\n", s.Ticks)
	fmt.Fprintf(&b, "final particles: %d\n", s.Particles)
	b.WriteString(rule + "\n")

	_, err := io.WriteString(r.out, b.String())
	return err
}
