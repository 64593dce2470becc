package explore

import (
	"errors"
	"math/rand"
	"time"

	"mazecrawl/pkg/engine/world"
)

// ErrNilNavigator is returned when an explorer is constructed without
// a crawler to drive.
var ErrNilNavigator = errors.New("explorer needs a navigator")

// Navigator is the full crawler surface the explorer depends on.
type Navigator interface {
	Mover
	FacingTile() world.Tile
	Position() (x, y int)
	Direction() world.Direction
}

// ChangeFunc observes a position or direction change. Callbacks run
// synchronously inside GetOut, at most once per iteration per kind and
// only when the value actually changed.
type ChangeFunc func(x, y int, dir world.Direction)

// Stats counts what happened during exploration.
type Stats struct {
	Moves       int // strategy cycles consumed, blocked ones included
	Blocked     int // walk attempts rejected by the crawler
	KeysPicked  int // items that ended up in the bag
	DoorsOpened int // locked doors opened with a carried key
}

// Explorer repeatedly applies a movement strategy to a crawler,
// opportunistically unlocking doors with carried keys, until the
// crawler faces the outside of the grid or the move budget runs out.
type Explorer struct {
	nav      Navigator
	strategy Strategy

	// bag holds every non-empty yield picked up while walking, in
	// pickup order. It persists across GetOut calls.
	bag []*world.Inventory

	stats Stats

	// OnPositionChanged and OnDirectionChanged, when set, observe the
	// crawler during GetOut.
	OnPositionChanged  ChangeFunc
	OnDirectionChanged ChangeFunc
}

// NewExplorer creates an explorer driving nav. A nil strategy selects
// the production random walk seeded from the clock; pass an explicit
// strategy for reproducible runs.
func NewExplorer(nav Navigator, strategy Strategy) (*Explorer, error) {
	if nav == nil {
		return nil, ErrNilNavigator
	}
	if strategy == nil {
		strategy = NewRandomWalk(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return &Explorer{nav: nav, strategy: strategy}, nil
}

// Bag returns the carried inventory slots in pickup order
func (e *Explorer) Bag() []*world.Inventory {
	return e.bag
}

// Stats returns counters accumulated so far
func (e *Explorer) Stats() Stats {
	return e.stats
}

// GetOut runs up to maxMoves strategy cycles and reports whether the
// crawler ended up facing the outside of the grid. Blocked walks are
// swallowed here and count against the budget like any other move.
func (e *Explorer) GetOut(maxMoves int) bool {
	for move := 0; move < maxMoves; move++ {
		e.unlockFacingDoor()

		prevX, prevY := e.nav.Position()
		prevDir := e.nav.Direction()

		yield, err := e.strategy.Execute(e.nav)
		e.stats.Moves++
		if err != nil {
			e.stats.Blocked++
		} else if yield != nil && yield.HasItem() {
			e.bag = append(e.bag, yield)
			e.stats.KeysPicked++
		}

		x, y := e.nav.Position()
		if (x != prevX || y != prevY) && e.OnPositionChanged != nil {
			e.OnPositionChanged(x, y, e.nav.Direction())
		}
		if dir := e.nav.Direction(); dir != prevDir && e.OnDirectionChanged != nil {
			e.OnDirectionChanged(x, y, dir)
		}

		if e.nav.FacingTile() == world.TheOutside {
			return true
		}
	}
	return false
}

// unlockFacingDoor tries every carried key against a locked door ahead.
// On success the emptied slot leaves the bag. The explorer never plans
// for a key it does not already carry.
func (e *Explorer) unlockFacingDoor() {
	door, ok := e.nav.FacingTile().(*world.Door)
	if !ok || !door.IsLocked() {
		return
	}
	for i, slot := range e.bag {
		if !slot.HasItem() {
			continue
		}
		if door.Open(slot) {
			e.bag = append(e.bag[:i], e.bag[i+1:]...)
			e.stats.DoorsOpened++
			return
		}
	}
}
