package raycast

import (
	"math"

	"gridcast/internal/core"
)

// Caster traces rays through a grid until they hit a wall, leave the grid
// or run past their radius.
type Caster struct {
	grid *core.Grid

	// ExclusiveEnd traces with WalkExclusive instead of Walk. Rays then stop
	// one cell short of their far endpoint and, when cast towards decreasing
	// coordinates, start next to the origin rather than on it.
	ExclusiveEnd bool
}

// NewCaster returns a Caster reading from grid.
func NewCaster(grid *core.Grid) *Caster {
	return &Caster{grid: grid}
}

// Grid returns the grid the caster reads.
func (c *Caster) Grid() *core.Grid { return c.grid }

// Distance is the Euclidean distance between two cells.
func Distance(a, b core.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Endpoint returns the cell radius cells from origin along angleDeg, rounded
// half to even.
func Endpoint(origin core.Point, angleDeg, radius float64) core.Point {
	rad := angleDeg * math.Pi / 180
	return core.Point{
		X: int(math.RoundToEven(float64(origin.X) + radius*math.Cos(rad))),
		Y: int(math.RoundToEven(float64(origin.Y) + radius*math.Sin(rad))),
	}
}

// Cast returns the visible cells from origin along angleDeg, ordered outward.
// The last cell is the wall that stopped the ray, if one did. An in-bounds
// origin always yields at least one cell.
func (c *Caster) Cast(origin core.Point, angleDeg, radius float64) []core.Point {
	end := Endpoint(origin, angleDeg, radius)

	var path []core.Point
	if c.ExclusiveEnd {
		path = WalkExclusive(origin.X, origin.Y, end.X, end.Y)
	} else {
		path = Walk(origin.X, origin.Y, end.X, end.Y)
	}
	if len(path) > 0 && path[0] != origin {
		reverse(path)
	}

	out := path[:0]
	for _, p := range path {
		if !c.grid.InBounds(p.X, p.Y) {
			break
		}
		if Distance(origin, p) > radius {
			break
		}
		out = append(out, p)
		if p != origin && c.grid.IsWall(p.X, p.Y) {
			break
		}
	}
	if len(out) == 0 && c.grid.InBounds(origin.X, origin.Y) {
		// Exclusive walks can skip the origin entirely, and the cell next to
		// it may already be off the grid.
		out = append(out, origin)
	}
	return out
}

// Hit returns the last cell of a Cast and whether it is a wall.
func (c *Caster) Hit(origin core.Point, angleDeg, radius float64) (core.Point, bool) {
	ray := c.Cast(origin, angleDeg, radius)
	if len(ray) == 0 {
		return origin, false
	}
	last := ray[len(ray)-1]
	return last, c.grid.IsWall(last.X, last.Y)
}
