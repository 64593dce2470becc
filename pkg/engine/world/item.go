package world

import (
	"github.com/google/uuid"
)

// ItemKind classifies what an item is.
type ItemKind int

// Item kinds
const (
	// KeyItem is a key paired with exactly one door.
	KeyItem ItemKind = iota
)

// String returns the string representation of an item kind
func (k ItemKind) String() string {
	switch k {
	case KeyItem:
		return "Key"
	default:
		return "Unknown"
	}
}

// Item represents a collectible item in the world.
// Keys carry the identity of the door pairing they belong to.
type Item struct {
	Kind ItemKind
	ID   uuid.UUID
}

// NewKey creates a new key item with a fresh pairing identity
func NewKey() *Item {
	return &Item{Kind: KeyItem, ID: uuid.New()}
}

// Inventory is a single-item slot. It is used both for what a step
// onto a tile yields and for what an explorer carries.
type Inventory struct {
	item *Item
}

// NewInventory creates an inventory slot holding the given item,
// which may be nil for an empty slot.
func NewInventory(item *Item) *Inventory {
	return &Inventory{item: item}
}

// HasItem returns true if the slot currently holds an item
func (inv *Inventory) HasItem() bool {
	return inv.item != nil
}

// Item returns the held item, or nil if the slot is empty
func (inv *Inventory) Item() *Item {
	return inv.item
}

// ItemKind returns the kind of the held item. The second return value
// is false when the slot is empty.
func (inv *Inventory) ItemKind() (ItemKind, bool) {
	if inv.item == nil {
		return 0, false
	}
	return inv.item.Kind, true
}

// Put stores an item in the slot, replacing any previous item
func (inv *Inventory) Put(item *Item) {
	inv.item = item
}

// Take removes and returns the held item, leaving the slot empty
func (inv *Inventory) Take() *Item {
	item := inv.item
	inv.item = nil
	return item
}

// TransferTo moves the held item into dst in a single step: the source
// ends up empty and the destination holds the item.
func (inv *Inventory) TransferTo(dst *Inventory) {
	dst.item = inv.item
	inv.item = nil
}
