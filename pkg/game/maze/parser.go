// Package maze turns a text map into a tile grid and binds a crawler
// to it. The map legend: '+', '-' and '|' draw walls, a space is empty
// floor, 'x' marks a start position, '/' is a locked door and 'k' is a
// floor tile holding the key for the next door.
package maze

import (
	"fmt"
	"strings"

	"mazecrawl/pkg/engine/world"
)

// FormatError describes a malformed map, naming the offending cell.
// Row and Col are zero-based.
type FormatError struct {
	Row    int
	Col    int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad map at row %d, col %d: %s", e.Row, e.Col, e.Reason)
}

// keyForge mints keys for door/key pairing during a single parse.
// It keeps at most one pending key: a 'k' cell leaves its key pending
// so that the next '/' pairs with it, while a '/' with nothing pending
// pairs with a fresh key that exists nowhere in the maze.
type keyForge struct {
	pending *world.Item
}

// roomKey returns the key a 'k' cell should hold, minting one if none
// is pending. The key stays pending for the next door.
func (f *keyForge) roomKey() *world.Item {
	if f.pending == nil {
		f.pending = world.NewKey()
	}
	return f.pending
}

// doorKey returns the key a new door pairs with and clears the pending
// slot, so every door consumes exactly one key.
func (f *keyForge) doorKey() *world.Item {
	key := f.roomKey()
	f.pending = nil
	return key
}

// ParseGrid converts a rectangular block of text into a tile grid.
// Every 'x' encountered is reported through onStart synchronously, in
// row-major scan order; it is the caller's job to decide which
// occurrence to keep. onStart may be nil. Ragged rows or unrecognized
// characters abort the parse with a FormatError and no grid.
func ParseGrid(text string, onStart func(x, y int)) (*world.Grid, error) {
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(rows) == 0 || rows[0] == "" {
		return nil, &FormatError{Row: 0, Col: 0, Reason: "empty map"}
	}

	width := len(rows[0])
	forge := &keyForge{}
	tiles := make([][]world.Tile, len(rows))

	for y, row := range rows {
		if len(row) != width {
			return nil, &FormatError{
				Row:    y,
				Col:    len(row),
				Reason: fmt.Sprintf("row has %d cells, want %d", len(row), width),
			}
		}

		tiles[y] = make([]world.Tile, width)
		for x, c := range []byte(row) {
			switch c {
			case '+', '-', '|':
				tiles[y][x] = world.TheWall
			case ' ':
				tiles[y][x] = world.NewRoom()
			case 'x':
				tiles[y][x] = world.NewRoom()
				if onStart != nil {
					onStart(x, y)
				}
			case '/':
				tiles[y][x] = world.NewDoor(forge.doorKey())
			case 'k':
				tiles[y][x] = world.NewRoomWithItem(forge.roomKey())
			default:
				return nil, &FormatError{
					Row:    y,
					Col:    x,
					Reason: fmt.Sprintf("unrecognized character %q", c),
				}
			}
		}
	}

	return world.NewGrid(tiles), nil
}
