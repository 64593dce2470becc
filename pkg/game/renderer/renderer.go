// Package renderer defines the seam between the exploration core and
// its display backends. The core produces frames; backends draw them.
package renderer

import (
	"mazecrawl/pkg/engine/world"
)

// Outcome is the end state of an exploration shown to the user.
type Outcome int

// Outcomes
const (
	OutcomeRunning Outcome = iota
	OutcomeEscaped
	OutcomeExhausted
)

// Frame is an immutable snapshot of one exploration moment: the grid
// (shared by reference, never mutated by renderers), the crawler pose,
// and progress counters.
type Frame struct {
	Grid    *world.Grid
	X       int
	Y       int
	Dir     world.Direction
	Move    int
	Outcome Outcome
}

// Renderer is a display backend. Implementations include the terminal
// renderer and the ebiten playback window.
type Renderer interface {
	// Init prepares the backend (colors, window, ...)
	Init()

	// RenderFrame draws one exploration snapshot
	RenderFrame(f *Frame)

	// ShowMessage displays a user-facing message
	ShowMessage(msg string)

	// Close releases whatever Init acquired
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// RenderFrame draws a frame on the current renderer, if any
func RenderFrame(f *Frame) {
	if Current != nil {
		Current.RenderFrame(f)
	}
}

// ShowMessage displays a message on the current renderer, if any
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
