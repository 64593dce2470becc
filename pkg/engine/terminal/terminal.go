// Package terminal reports the dimensions of the controlling terminal
// so renderers can clamp their viewport.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size holds terminal dimensions in character cells.
type Size struct {
	Width  int
	Height int
}

// GetSize returns the current terminal size.
// Falls back to the defaults when the size cannot be determined,
// e.g. when stdout is not a terminal.
func GetSize() Size {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	return Size{Width: width, Height: height}
}

// Fits reports whether a block of the given dimensions fits on screen.
func (s Size) Fits(width, height int) bool {
	return width <= s.Width && height <= s.Height
}
