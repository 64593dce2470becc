// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based simulation.
package world

import (
	"github.com/google/uuid"
)

// Tile is one grid cell. The variant set is closed: Room, Wall, Door
// and the Outside sentinel. Traversable is the single capability the
// navigation engine relies on.
type Tile interface {
	// Traversable reports whether an agent may step onto this tile
	Traversable() bool

	// Rune returns the display character for this tile
	Rune() rune

	sealed()
}

// Room is a traversable floor tile optionally holding one item.
type Room struct {
	item *Item
}

// NewRoom creates an empty room tile
func NewRoom() *Room {
	return &Room{}
}

// NewRoomWithItem creates a room tile holding the given item
func NewRoomWithItem(item *Item) *Room {
	return &Room{item: item}
}

// Traversable is always true for a room
func (r *Room) Traversable() bool {
	return true
}

// HasItem returns true if the room still holds its item
func (r *Room) HasItem() bool {
	return r.item != nil
}

// PickUp yields the room's item to the caller and empties the room.
// A second pickup yields nil.
func (r *Room) PickUp() *Item {
	item := r.item
	r.item = nil
	return item
}

// Rune returns the display character for this tile
func (r *Room) Rune() rune {
	if r.item != nil {
		return 'k'
	}
	return ' '
}

func (r *Room) sealed() {}

// wall is the stateless impassable tile. All wall cells share one value.
type wall struct{}

// TheWall is the shared wall singleton
var TheWall Tile = wall{}

func (wall) Traversable() bool { return false }
func (wall) Rune() rune        { return '#' }
func (wall) sealed()           {}

// outside is the sentinel for any coordinate beyond the grid bounds.
// It is never traversable; facing it is the escape condition.
type outside struct{}

// TheOutside is the shared out-of-bounds sentinel
var TheOutside Tile = outside{}

func (outside) Traversable() bool { return false }
func (outside) Rune() rune        { return '.' }
func (outside) sealed()           {}

// Door is a tile whose traversability depends on its lock state.
// Each door is paired at construction with exactly one key identity;
// no other key can ever open it.
type Door struct {
	keyID  uuid.UUID
	locked bool
}

// NewDoor creates a locked door paired with the given key
func NewDoor(key *Item) *Door {
	return &Door{keyID: key.ID, locked: true}
}

// IsLocked returns true while the door has not been opened
func (d *Door) IsLocked() bool {
	return d.locked
}

// Traversable is true only once the door has been unlocked
func (d *Door) Traversable() bool {
	return !d.locked
}

// Open attempts to unlock the door with the item held by inv. It
// succeeds only when inv holds this door's paired key; the key is then
// consumed and the door stays unlocked permanently. A non-matching or
// empty inventory leaves both the door and the inventory unchanged.
func (d *Door) Open(inv *Inventory) bool {
	if !d.locked {
		return true
	}
	item := inv.Item()
	if item == nil || item.Kind != KeyItem || item.ID != d.keyID {
		return false
	}
	inv.Take()
	d.locked = false
	return true
}

// Rune returns the display character for this tile
func (d *Door) Rune() rune {
	return '/'
}

func (d *Door) sealed() {}
