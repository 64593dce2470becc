// Package ebiten replays a recorded exploration in a graphical window.
// The exploration itself runs instantly; this backend buffers every
// frame and plays them back a few ticks apart.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazecrawl/pkg/engine/world"
	"mazecrawl/pkg/game/renderer"
)

const (
	cellSize       = 24
	ticksPerFrame  = 12
	windowTitleMax = 64
)

var (
	colorBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorWall       = color.RGBA{R: 0x5a, G: 0x5a, B: 0x66, A: 0xff}
	colorFloor      = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	colorKey        = color.RGBA{R: 0xe0, G: 0xc0, B: 0x30, A: 0xff}
	colorDoor       = color.RGBA{R: 0x30, G: 0xa0, B: 0xc0, A: 0xff}
	colorDoorOpen   = color.RGBA{R: 0x30, G: 0x60, B: 0x70, A: 0xff}
	colorCrawler    = color.RGBA{R: 0x40, G: 0xd0, B: 0x50, A: 0xff}
)

// Playback implements renderer.Renderer by recording frames during the
// exploration and replaying them once Run is called.
type Playback struct {
	frames []renderer.Frame
	title  string

	idx  int
	tick int
}

// New creates a playback renderer with the given window title
func New(title string) *Playback {
	return &Playback{title: title}
}

// Init is a no-op; the window opens in Run
func (p *Playback) Init() {}

// RenderFrame buffers one frame for later playback
func (p *Playback) RenderFrame(f *renderer.Frame) {
	p.frames = append(p.frames, *f)
}

// ShowMessage folds a message into the window title
func (p *Playback) ShowMessage(msg string) {
	title := p.title + " - " + msg
	if len(title) > windowTitleMax {
		title = title[:windowTitleMax]
	}
	ebiten.SetWindowTitle(title)
}

// Close is a no-op; the user closes the window
func (p *Playback) Close() {}

// Run opens the window and blocks until it is closed. It must be
// called from the main goroutine after the exploration finished.
func (p *Playback) Run() error {
	if len(p.frames) == 0 {
		return nil
	}
	grid := p.frames[0].Grid
	ebiten.SetWindowSize(grid.Width()*cellSize, grid.Height()*cellSize)
	ebiten.SetWindowTitle(p.title)
	return ebiten.RunGame(p)
}

// Update advances playback by one tick
func (p *Playback) Update() error {
	p.tick++
	if p.tick >= ticksPerFrame && p.idx < len(p.frames)-1 {
		p.tick = 0
		p.idx++
	}
	return nil
}

// Draw renders the current playback frame as colored cells
func (p *Playback) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	f := &p.frames[p.idx]

	f.Grid.ForEachTile(func(x, y int, tile world.Tile) {
		vector.DrawFilledRect(screen,
			float32(x*cellSize), float32(y*cellSize),
			cellSize-1, cellSize-1,
			tileColor(tile), false)
	})

	// Crawler on top, slightly inset
	vector.DrawFilledRect(screen,
		float32(f.X*cellSize)+3, float32(f.Y*cellSize)+3,
		cellSize-7, cellSize-7,
		colorCrawler, false)
}

// Layout fixes the logical screen size to the grid size
func (p *Playback) Layout(_, _ int) (int, int) {
	grid := p.frames[0].Grid
	return grid.Width() * cellSize, grid.Height() * cellSize
}

// tileColor maps a tile variant to its playback color
func tileColor(tile world.Tile) color.Color {
	switch t := tile.(type) {
	case *world.Room:
		if t.HasItem() {
			return colorKey
		}
		return colorFloor
	case *world.Door:
		if t.IsLocked() {
			return colorDoor
		}
		return colorDoorOpen
	default:
		return colorWall
	}
}
