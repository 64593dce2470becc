package world

// Grid represents a fixed-size rectangular tile map. The shape never
// changes after construction; only door tiles mutate their lock state.
type Grid struct {
	tiles  [][]Tile
	width  int
	height int
}

// NewGrid builds a grid from a rectangular tile matrix indexed
// tiles[y][x]. The matrix must be non-empty and all rows must have the
// same length; callers (the parser) are expected to have validated that.
func NewGrid(tiles [][]Tile) *Grid {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		panic("grid dimensions must be positive")
	}
	return &Grid{
		tiles:  tiles,
		width:  len(tiles[0]),
		height: len(tiles),
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TileAt returns the tile at the given position. Every out-of-bounds
// coordinate yields the same Outside sentinel, however far out it is.
func (g *Grid) TileAt(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TheOutside
	}
	return g.tiles[y][x]
}

// TileRelative returns the tile one step from (x, y) in the given
// direction, or the Outside sentinel when that step leaves the grid.
func (g *Grid) TileRelative(x, y int, dir Direction) Tile {
	dx, dy := dir.Delta()
	return g.TileAt(x+dx, y+dy)
}

// ForEachTile iterates over all tiles in row-major order, calling the
// provided function for each
func (g *Grid) ForEachTile(fn func(x, y int, tile Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[y][x])
		}
	}
}
