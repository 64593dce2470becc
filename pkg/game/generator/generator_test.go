package generator

import (
	"math/rand"
	"strings"
	"testing"

	"mazecrawl/pkg/game/maze"
)

func TestGenerate_ProducesParsableMaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		text := Generate(6, 4, rng, i%2 == 0)
		if _, err := maze.Construct(text); err != nil {
			t.Fatalf("Construct(generated map %d) error = %v\n%s", i, err, text)
		}
	}
}

func TestGenerate_RowsAreRectangular(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	text := Generate(5, 3, rng, true)
	rows := strings.Split(text, "\n")

	if len(rows) != 7 {
		t.Fatalf("map has %d rows, want 7 for 3 rooms high", len(rows))
	}
	for i, row := range rows {
		if len(row) != 11 {
			t.Errorf("row %d has %d cells, want 11 for 5 rooms wide", i, len(row))
		}
	}
}

func TestGenerate_ExactlyOneStart(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	text := Generate(8, 6, rng, false)
	if got := strings.Count(text, "x"); got != 1 {
		t.Errorf("generated map has %d start markers, want 1", got)
	}
}

func TestGenerate_WithDoorPlacesKeyBeforeDoor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		text := Generate(4, 4, rng, true)
		keyAt := strings.IndexByte(text, 'k')
		doorAt := strings.IndexByte(text, '/')
		if keyAt < 0 || doorAt < 0 {
			t.Fatalf("map %d missing key or door:\n%s", i, text)
		}
		if keyAt > doorAt {
			t.Errorf("map %d: key at offset %d after door at %d; parser would not pair them", i, keyAt, doorAt)
		}
	}
}

func TestGenerate_WithoutDoorLeavesAnOpening(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	text := Generate(3, 3, rng, false)
	rows := strings.Split(text, "\n")
	bottom := rows[len(rows)-1]
	if !strings.Contains(bottom, " ") {
		t.Errorf("bottom border has no opening: %q", bottom)
	}
}

func TestGenerate_ClampsTinyDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	text := Generate(0, -3, rng, false)
	if _, err := maze.Construct(text); err != nil {
		t.Errorf("Construct(1x1 clamped map) error = %v\n%s", err, text)
	}
}
