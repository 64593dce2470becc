// Package generator produces random maze maps in the text legend the
// parser understands, so generated and hand-written mazes flow through
// the same pipeline.
package generator

// Rand is the random source maze generation draws from.
type Rand interface {
	Intn(n int) int
}

// Cell characters emitted into generated maps.
const (
	charCorner  = '+'
	charHWall   = '-'
	charVWall   = '|'
	charFloor   = ' '
	charStart   = 'x'
	charKeyRoom = 'k'
	charDoor    = '/'
)

// Generate carves a random perfect maze of the given room dimensions
// and returns it as map text. The maze always has one start marker and
// one escape opening in the bottom border; when withDoor is set the
// opening is a locked door whose key lies somewhere inside.
func Generate(roomsWide, roomsHigh int, rng Rand, withDoor bool) string {
	if roomsWide < 1 {
		roomsWide = 1
	}
	if roomsHigh < 1 {
		roomsHigh = 1
	}

	width := roomsWide*2 + 1
	height := roomsHigh*2 + 1

	cells := make([][]byte, height)
	for y := range cells {
		cells[y] = make([]byte, width)
		for x := range cells[y] {
			cells[y][x] = wallChar(x, y)
		}
	}
	for ry := 0; ry < roomsHigh; ry++ {
		for rx := 0; rx < roomsWide; rx++ {
			cells[ry*2+1][rx*2+1] = charFloor
		}
	}

	carve(cells, roomsWide, roomsHigh, rng)

	startX := rng.Intn(roomsWide)
	startY := rng.Intn(roomsHigh)
	cells[startY*2+1][startX*2+1] = charStart

	// Escape opening in the bottom border. With a door, the key room
	// must come first in row-major order so the parser pairs them; any
	// interior room precedes the bottom border row.
	exitX := rng.Intn(roomsWide)*2 + 1
	if withDoor {
		cells[height-1][exitX] = charDoor
		placeKey(cells, roomsWide, roomsHigh, startX, startY, rng)
	} else {
		cells[height-1][exitX] = charFloor
	}

	lines := make([]byte, 0, height*(width+1))
	for y, row := range cells {
		lines = append(lines, row...)
		if y < height-1 {
			lines = append(lines, '\n')
		}
	}
	return string(lines)
}

// wallChar picks the wall drawing character for an uncarved cell
func wallChar(x, y int) byte {
	switch {
	case x%2 == 0 && y%2 == 0:
		return charCorner
	case y%2 == 0:
		return charHWall
	default:
		return charVWall
	}
}

// carve opens walls between rooms with an iterative depth-first walk,
// producing a perfect maze where every room is reachable.
func carve(cells [][]byte, roomsWide, roomsHigh int, rng Rand) {
	type room struct{ x, y int }

	visited := make(map[room]bool, roomsWide*roomsHigh)
	start := room{rng.Intn(roomsWide), rng.Intn(roomsHigh)}
	visited[start] = true
	stack := []room{start}

	deltas := [4]room{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []room
		for _, d := range deltas {
			n := room{cur.x + d.x, cur.y + d.y}
			if n.x >= 0 && n.x < roomsWide && n.y >= 0 && n.y < roomsHigh && !visited[n] {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.Intn(len(next))]
		// Knock out the wall between cur and n
		cells[cur.y+n.y+1][cur.x+n.x+1] = charFloor
		visited[n] = true
		stack = append(stack, n)
	}
}

// placeKey drops a key into a random room that is not the start
func placeKey(cells [][]byte, roomsWide, roomsHigh, startX, startY int, rng Rand) {
	if roomsWide*roomsHigh == 1 {
		// Nowhere else to put it; the start room keeps the marker and
		// the key goes unplaced, leaving the door permanently locked.
		return
	}
	for {
		kx, ky := rng.Intn(roomsWide), rng.Intn(roomsHigh)
		if kx != startX || ky != startY {
			cells[ky*2+1][kx*2+1] = charKeyRoom
			return
		}
	}
}
