// Package explore drives a crawler through a maze until it faces the
// outside of the grid or runs out of moves.
package explore

import (
	"mazecrawl/pkg/engine/world"
)

// Mover is the part of a crawler a movement strategy steers.
type Mover interface {
	TurnLeft()
	TurnRight()
	Walk() (*world.Inventory, error)
}

// Strategy decides one atomic move cycle: optionally rotate, then
// attempt exactly one walk. A blocked walk propagates to the caller;
// the strategy never swallows it.
type Strategy interface {
	Execute(m Mover) (*world.Inventory, error)
}

// Rand is the random source a RandomWalk draws from. *math/rand.Rand
// satisfies it; tests inject scripted sequences.
type Rand interface {
	Intn(n int) int
}

// Rotation outcomes drawn by RandomWalk.
const (
	keepStraight = iota
	turnRight
	turnLeft
)

// RandomWalk is the default movement strategy: one uniform draw from
// {straight, right, left}, then always a walk attempt.
type RandomWalk struct {
	rng Rand
}

// NewRandomWalk creates a random-walk strategy drawing from rng.
// Injecting a seeded source makes the walk fully reproducible.
func NewRandomWalk(rng Rand) *RandomWalk {
	return &RandomWalk{rng: rng}
}

// Execute performs one rotate-then-walk cycle on m
func (s *RandomWalk) Execute(m Mover) (*world.Inventory, error) {
	switch s.rng.Intn(3) {
	case turnRight:
		m.TurnRight()
	case turnLeft:
		m.TurnLeft()
	}
	return m.Walk()
}
