package maze

import (
	"errors"

	"mazecrawl/pkg/engine/world"
)

// ErrNoStart is returned by Construct when the map contains no 'x'.
var ErrNoStart = errors.New("map has no start marker")

// Maze owns a finished tile grid and the chosen start coordinate.
// It is the factory for crawlers.
type Maze struct {
	grid   *world.Grid
	startX int
	startY int
}

// Construct parses a text map into a maze. When the map contains more
// than one start marker the last one in row-major scan order wins; a
// map with none fails with ErrNoStart. Parse errors propagate as-is.
func Construct(text string) (*Maze, error) {
	startX, startY := -1, -1
	found := false

	grid, err := ParseGrid(text, func(x, y int) {
		startX, startY = x, y
		found = true
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoStart
	}

	return &Maze{grid: grid, startX: startX, startY: startY}, nil
}

// Grid returns the maze's tile grid
func (m *Maze) Grid() *world.Grid {
	return m.grid
}

// Start returns the recorded start coordinate
func (m *Maze) Start() (x, y int) {
	return m.startX, m.startY
}

// NewCrawler returns a crawler positioned at the start, facing North,
// sharing this maze's grid by reference.
func (m *Maze) NewCrawler() *Crawler {
	return &Crawler{
		grid: m.grid,
		x:    m.startX,
		y:    m.startY,
		dir:  world.North,
	}
}
