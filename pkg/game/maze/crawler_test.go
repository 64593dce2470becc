package maze

import (
	"errors"
	"testing"

	"mazecrawl/pkg/engine/world"
)

// corridorCrawler builds a 3-cell vertical corridor with the crawler at
// the bottom: a key room above the start, a wall-free top border cell.
func corridorCrawler(t *testing.T) *Crawler {
	t.Helper()
	m := mustConstruct(t, "+ +\n|k|\n|x|\n+-+")
	return m.NewCrawler()
}

func TestCrawler_WalkIntoRoomAdvances(t *testing.T) {
	c := corridorCrawler(t)
	yield, err := c.Walk()
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	x, y := c.Position()
	if x != 1 || y != 1 {
		t.Errorf("position after Walk() = (%d,%d), want (1,1)", x, y)
	}
	if !yield.HasItem() {
		t.Error("walking onto a key room yielded no item")
	}
}

func TestCrawler_WalkOntoEmptyRoomYieldsEmptySlot(t *testing.T) {
	m := mustConstruct(t, "+ +\n| |\n|x|\n+-+")
	c := m.NewCrawler()
	yield, err := c.Walk()
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if yield == nil || yield.HasItem() {
		t.Errorf("Walk() yield = %v, want an empty inventory slot", yield)
	}
}

func TestCrawler_WalkIntoWallIsBlocked(t *testing.T) {
	m := mustConstruct(t, "+--+\n| x|\n+--+")
	c := m.NewCrawler()

	yield, err := c.Walk()
	if !errors.Is(err, ErrBlocked) {
		t.Fatalf("Walk() into wall error = %v, want ErrBlocked", err)
	}
	if yield != nil {
		t.Errorf("blocked Walk() yield = %v, want nil", yield)
	}
	x, y := c.Position()
	if x != 2 || y != 1 || c.Direction() != world.North {
		t.Errorf("blocked walk changed state: (%d,%d) %v, want (2,1) North", x, y, c.Direction())
	}
}

func TestCrawler_WalkIntoOutsideIsBlocked(t *testing.T) {
	m := mustConstruct(t, "+x+\n| |\n+-+")
	c := m.NewCrawler()

	if got := c.FacingTile(); got != world.TheOutside {
		t.Fatalf("FacingTile() = %v, want the outside sentinel", got)
	}
	if _, err := c.Walk(); !errors.Is(err, ErrBlocked) {
		t.Errorf("Walk() toward outside error = %v, want ErrBlocked", err)
	}
	x, y := c.Position()
	if x != 1 || y != 0 {
		t.Errorf("position after blocked walk = (%d,%d), want (1,0)", x, y)
	}
}

func TestCrawler_WalkIntoLockedDoorIsBlocked(t *testing.T) {
	m := mustConstruct(t, "+-+\n|/|\n|x|\n+-+")
	c := m.NewCrawler()

	if _, err := c.Walk(); !errors.Is(err, ErrBlocked) {
		t.Errorf("Walk() into locked door error = %v, want ErrBlocked", err)
	}
}

func TestCrawler_WalkThroughUnlockedDoor(t *testing.T) {
	// Key room precedes its door in scan order; the path runs south.
	m := mustConstruct(t, "+-+\n|x|\n|k|\n|/|\n+-+")
	c := m.NewCrawler()
	c.TurnRight()
	c.TurnRight() // face South

	yield, err := c.Walk() // onto the key room
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	door := c.FacingTile().(*world.Door)
	if !door.Open(yield) {
		t.Fatal("door refused the key picked up on the way")
	}
	if _, err := c.Walk(); err != nil {
		t.Errorf("Walk() through unlocked door error = %v", err)
	}
	x, y := c.Position()
	if x != 1 || y != 3 {
		t.Errorf("position = (%d,%d), want the door cell (1,3)", x, y)
	}
}

func TestCrawler_BoundaryFacingOutwardReportsOutside(t *testing.T) {
	// An all-floor map puts every cell on the boundary.
	m := mustConstruct(t, "  \nx ")
	c := m.NewCrawler()

	// (0,1) facing West and South are out of bounds; facing North and
	// East are rooms.
	c.TurnLeft() // West
	if got := c.FacingTile(); got != world.TheOutside {
		t.Errorf("facing West off the edge = %v, want the outside sentinel", got)
	}
	c.TurnLeft() // South
	if got := c.FacingTile(); got != world.TheOutside {
		t.Errorf("facing South off the edge = %v, want the outside sentinel", got)
	}
	c.TurnLeft() // East
	if _, ok := c.FacingTile().(*world.Room); !ok {
		t.Errorf("facing East = %T, want *Room", c.FacingTile())
	}
}

func TestCrawler_TurnsRotateFacing(t *testing.T) {
	c := corridorCrawler(t)
	c.TurnRight()
	if c.Direction() != world.East {
		t.Errorf("after TurnRight: %v, want East", c.Direction())
	}
	c.TurnLeft()
	c.TurnLeft()
	if c.Direction() != world.West {
		t.Errorf("after two TurnLeft: %v, want West", c.Direction())
	}
}

func TestCrawler_FacingTileRecomputedAfterMoves(t *testing.T) {
	c := corridorCrawler(t)
	if _, err := c.Walk(); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	// Now at (1,1); North is the border gap room at (1,0)
	if _, ok := c.FacingTile().(*world.Room); !ok {
		t.Errorf("FacingTile() = %T, want *Room after advancing", c.FacingTile())
	}
}
