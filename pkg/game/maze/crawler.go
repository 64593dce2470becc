package maze

import (
	"errors"

	"mazecrawl/pkg/engine/world"
)

// ErrBlocked is returned by Walk when the faced tile cannot be entered:
// a wall, a locked door, or the outside of the grid.
var ErrBlocked = errors.New("walk blocked")

// Crawler is the live navigating agent: an always-in-bounds position
// plus a facing direction over a maze grid. The crawler is the sole
// owner of its direction; rotation happens only through TurnLeft and
// TurnRight.
type Crawler struct {
	grid *world.Grid
	x    int
	y    int
	dir  world.Direction
}

// Position returns the crawler's current coordinates
func (c *Crawler) Position() (x, y int) {
	return c.x, c.y
}

// Direction returns the crawler's current facing direction
func (c *Crawler) Direction() world.Direction {
	return c.dir
}

// TurnLeft rotates the crawler a quarter turn counter-clockwise
func (c *Crawler) TurnLeft() {
	c.dir = c.dir.Left()
}

// TurnRight rotates the crawler a quarter turn clockwise
func (c *Crawler) TurnRight() {
	c.dir = c.dir.Right()
}

// FacingTile returns the tile one step ahead of the crawler. It is
// recomputed on every call; a step beyond the grid bounds yields the
// Outside sentinel.
func (c *Crawler) FacingTile() world.Tile {
	return c.grid.TileRelative(c.x, c.y, c.dir)
}

// Walk advances one step in the facing direction if the faced tile is
// traversable and returns whatever the entered tile yielded, wrapped in
// an inventory slot (empty if the tile held nothing). A wall, a locked
// door or the outside rejects the walk with ErrBlocked and leaves
// position and direction untouched.
func (c *Crawler) Walk() (*world.Inventory, error) {
	tile := c.FacingTile()
	if !tile.Traversable() {
		return nil, ErrBlocked
	}

	dx, dy := c.dir.Delta()
	c.x += dx
	c.y += dy

	yield := world.NewInventory(nil)
	if room, ok := tile.(*world.Room); ok {
		yield.Put(room.PickUp())
	}
	return yield, nil
}
