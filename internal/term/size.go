package term

import (
	"os"

	xterm "golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Size reports the terminal dimensions, falling back to 80x24 when stdout
// is not a terminal.
func Size() (width, height int) {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}
