package history

import (
	"strings"
	"testing"

	"mazecrawl/pkg/engine/world"
)

func TestRecorder_TrailStartsAtStartPosition(t *testing.T) {
	r := NewRecorder(2, 1)
	trail := r.Trail()
	if len(trail) != 1 {
		t.Fatalf("fresh recorder trail length = %d, want 1", len(trail))
	}
	if trail[0] != (Position{X: 2, Y: 1}) {
		t.Errorf("trail[0] = %v, want (2,1)", trail[0])
	}
}

func TestRecorder_DistinctVisitedIgnoresRevisits(t *testing.T) {
	r := NewRecorder(0, 0)
	r.RecordPosition(1, 0, world.East)
	r.RecordPosition(0, 0, world.West)
	r.RecordPosition(1, 0, world.East)

	if got := len(r.Trail()); got != 4 {
		t.Errorf("trail length = %d, want 4 (revisits kept in order)", got)
	}
	if got := r.DistinctVisited(); got != 2 {
		t.Errorf("DistinctVisited() = %d, want 2", got)
	}
}

func TestRecorder_Visited(t *testing.T) {
	r := NewRecorder(0, 0)
	r.RecordPosition(3, 4, world.South)

	if !r.Visited(3, 4) {
		t.Error("Visited(3,4) = false after recording it")
	}
	if r.Visited(9, 9) {
		t.Error("Visited(9,9) = true for a never-seen cell")
	}
}

func TestRecorder_CountsTurns(t *testing.T) {
	r := NewRecorder(0, 0)
	r.RecordDirection(0, 0, world.East)
	r.RecordDirection(0, 0, world.South)

	if got := r.Turns(); got != 2 {
		t.Errorf("Turns() = %d, want 2", got)
	}
}

func TestRecorder_SummaryMentionsCounts(t *testing.T) {
	r := NewRecorder(0, 0)
	r.RecordPosition(1, 0, world.East)
	r.RecordDirection(1, 0, world.East)

	summary := r.Summary()
	for _, want := range []string{"steps taken", "cells visited", "turns made"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() missing %q:\n%s", want, summary)
		}
	}
}
