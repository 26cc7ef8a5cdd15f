package raycast

import (
	"slices"
	"testing"

	"gridcast/internal/core"
)

func TestWalkKnownLine(t *testing.T) {
	got := Walk(0, 0, 4, 2)
	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 4, Y: 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("Walk(0,0,4,2) = %v, expected %v", got, want)
	}

	back := Walk(4, 2, 0, 0)
	slices.Reverse(want)
	if !slices.Equal(back, want) {
		t.Fatalf("Walk(4,2,0,0) = %v, expected %v", back, want)
	}
}

func TestWalkExclusiveDropsFarEnd(t *testing.T) {
	got := WalkExclusive(0, 0, 4, 2)
	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("WalkExclusive(0,0,4,2) = %v, expected %v", got, want)
	}

	// Ordered by increasing major axis: the start is the excluded cell.
	got = WalkExclusive(4, 2, 0, 0)
	if !slices.Equal(got, want) {
		t.Fatalf("WalkExclusive(4,2,0,0) = %v, expected %v", got, want)
	}

	if got := WalkExclusive(3, 3, 3, 3); len(got) != 0 {
		t.Fatalf("zero-length line should be empty, got %v", got)
	}
}

func TestWalkProperties(t *testing.T) {
	for x0 := -3; x0 <= 3; x0++ {
		for y0 := -3; y0 <= 3; y0++ {
			for x1 := -6; x1 <= 6; x1 += 3 {
				for y1 := -6; y1 <= 6; y1 += 2 {
					checkWalk(t, x0, y0, x1, y1)
				}
			}
		}
	}
}

func checkWalk(t *testing.T, x0, y0, x1, y1 int) {
	t.Helper()
	path := Walk(x0, y0, x1, y1)
	major := max(abs(x1-x0), abs(y1-y0))

	if len(path) != major+1 {
		t.Fatalf("Walk(%d,%d,%d,%d) len=%d, expected %d", x0, y0, x1, y1, len(path), major+1)
	}
	if path[0] != (core.Point{X: x0, Y: y0}) {
		t.Fatalf("Walk(%d,%d,%d,%d) starts at %v", x0, y0, x1, y1, path[0])
	}
	if path[len(path)-1] != (core.Point{X: x1, Y: y1}) {
		t.Fatalf("Walk(%d,%d,%d,%d) ends at %v", x0, y0, x1, y1, path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		ddx := abs(path[i].X - path[i-1].X)
		ddy := abs(path[i].Y - path[i-1].Y)
		if ddx > 1 || ddy > 1 || (ddx == 0 && ddy == 0) {
			t.Fatalf("Walk(%d,%d,%d,%d) step %d not 8-connected: %v -> %v", x0, y0, x1, y1, i, path[i-1], path[i])
		}
	}

	excl := WalkExclusive(x0, y0, x1, y1)
	if len(excl) != major {
		t.Fatalf("WalkExclusive(%d,%d,%d,%d) len=%d, expected %d", x0, y0, x1, y1, len(excl), major)
	}
}
