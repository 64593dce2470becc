// Package history records what an exploration did: the ordered trail
// of positions, the set of distinct cells visited, and turn counts.
package history

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"mazecrawl/pkg/engine/world"
)

// Position is one visited coordinate.
type Position struct {
	X int
	Y int
}

// Recorder accumulates exploration events. Hook RecordPosition and
// RecordDirection into an explorer's change callbacks; everything runs
// synchronously on the exploration goroutine.
type Recorder struct {
	trail   []Position
	visited mapset.Set[Position]
	turns   int
}

// NewRecorder creates an empty recorder primed with the start position
func NewRecorder(startX, startY int) *Recorder {
	r := &Recorder{visited: mapset.New[Position]()}
	r.RecordPosition(startX, startY, world.North)
	return r
}

// RecordPosition appends a position-changed event
func (r *Recorder) RecordPosition(x, y int, _ world.Direction) {
	pos := Position{X: x, Y: y}
	r.trail = append(r.trail, pos)
	r.visited.Put(pos)
}

// RecordDirection appends a direction-changed event
func (r *Recorder) RecordDirection(_, _ int, _ world.Direction) {
	r.turns++
}

// Trail returns every recorded position in order, the start included
func (r *Recorder) Trail() []Position {
	return r.trail
}

// DistinctVisited returns how many different cells the trail covers
func (r *Recorder) DistinctVisited() int {
	return r.visited.Size()
}

// Turns returns how many direction changes were observed
func (r *Recorder) Turns() int {
	return r.turns
}

// Visited reports whether the trail ever covered (x, y)
func (r *Recorder) Visited(x, y int) bool {
	return r.visited.Has(Position{X: x, Y: y})
}

// Summary renders a short human-readable report of the run
func (r *Recorder) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "steps taken:    %d\n", len(r.trail)-1)
	fmt.Fprintf(&b, "cells visited:  %d\n", r.DistinctVisited())
	fmt.Fprintf(&b, "turns made:     %d\n", r.turns)
	return b.String()
}
