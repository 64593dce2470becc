// Package tui renders exploration frames as colored text in the
// terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazecrawl/pkg/engine/terminal"
	"mazecrawl/pkg/engine/world"
	"mazecrawl/pkg/game/renderer"
)

// Icon constants
const (
	IconCrawler      = "@"
	IconWall         = "▒"
	IconFloor        = " "
	IconKey          = "⚷"
	IconDoorLocked   = "▣"
	IconDoorUnlocked = "□"
)

// TUIRenderer draws frames with ANSI colors, clamped to the terminal
// size. A non-zero frame delay paces playback so a human can follow.
type TUIRenderer struct {
	frameDelay time.Duration

	colorWall    color.Style
	colorKey     color.Style
	colorDoor    color.Style
	colorCrawler color.Style
	colorStatus  color.Style
}

// New creates a terminal renderer
func New(frameDelay time.Duration) *TUIRenderer {
	return &TUIRenderer{frameDelay: frameDelay}
}

// Init sets up the color styles
func (r *TUIRenderer) Init() {
	r.colorWall = color.New(color.FgGray)
	r.colorKey = color.New(color.FgYellow, color.OpBold)
	r.colorDoor = color.New(color.FgCyan)
	r.colorCrawler = color.New(color.FgGreen, color.OpBold)
	r.colorStatus = color.New(color.FgWhite)
}

// RenderFrame draws the grid with the crawler on top, then a one-line
// status bar, clamped to the terminal size.
func (r *TUIRenderer) RenderFrame(f *renderer.Frame) {
	size := terminal.GetSize()

	// Home the cursor and clear before each frame
	fmt.Print("\033[H\033[2J")

	maxRows := min(f.Grid.Height(), size.Height-2)
	maxCols := min(f.Grid.Width(), size.Width)

	var b strings.Builder
	for y := 0; y < maxRows; y++ {
		for x := 0; x < maxCols; x++ {
			b.WriteString(r.styledCell(f, x, y))
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
	fmt.Println(r.statusLine(f))

	if r.frameDelay > 0 {
		time.Sleep(r.frameDelay)
	}
}

// styledCell returns the colored icon for one grid cell
func (r *TUIRenderer) styledCell(f *renderer.Frame, x, y int) string {
	if x == f.X && y == f.Y {
		return r.colorCrawler.Sprint(IconCrawler)
	}

	switch tile := f.Grid.TileAt(x, y).(type) {
	case *world.Room:
		if tile.HasItem() {
			return r.colorKey.Sprint(IconKey)
		}
		return IconFloor
	case *world.Door:
		if tile.IsLocked() {
			return r.colorDoor.Sprint(IconDoorLocked)
		}
		return r.colorDoor.Sprint(IconDoorUnlocked)
	default:
		return r.colorWall.Sprint(IconWall)
	}
}

// statusLine formats the one-line progress bar under the map
func (r *TUIRenderer) statusLine(f *renderer.Frame) string {
	status := fmt.Sprintf("%s %d  (%d,%d) %s",
		gotext.Get("Move"), f.Move, f.X, f.Y, f.Dir)

	switch f.Outcome {
	case renderer.OutcomeEscaped:
		status += "  " + r.colorKey.Sprint(gotext.Get("Escaped!"))
	case renderer.OutcomeExhausted:
		status += "  " + gotext.Get("Out of moves")
	}
	return r.colorStatus.Sprint(status)
}

// ShowMessage prints a message below the map
func (r *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// Close resets terminal colors
func (r *TUIRenderer) Close() {
	fmt.Print("\033[0m")
}
