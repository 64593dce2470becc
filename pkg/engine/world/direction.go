package world

// Direction represents a cardinal facing direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Right returns the direction after a quarter turn clockwise.
// Right from West wraps back around to North.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Left returns the direction after a quarter turn counter-clockwise.
// Left from North wraps around to West.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the x and y offsets for one step in this direction.
// The grid origin is the top-left corner, so North decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
