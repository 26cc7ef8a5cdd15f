// Package raycast walks grid lines and casts occlusion rays across a level.
package raycast

import "gridcast/internal/core"

// Walk returns the cells on the Bresenham line from (x0, y0) to (x1, y1),
// both endpoints included, ordered from the start.
func Walk(x0, y0, x1, y1 int) []core.Point {
	cells, flipped := bresenham(x0, y0, x1, y1, true)
	if flipped {
		reverse(cells)
	}
	return cells
}

// WalkExclusive reproduces the classic loop bound used by older map tools:
// the line is ordered by increasing major axis (so it may run end to start)
// and the last major-axis cell is dropped. A line whose major extent is zero
// yields no cells.
func WalkExclusive(x0, y0, x1, y1 int) []core.Point {
	cells, _ := bresenham(x0, y0, x1, y1, false)
	return cells
}

// bresenham walks the shallow-slope reduction of the line. flipped reports
// whether the endpoints were swapped to make the major axis increase.
func bresenham(x0, y0, x1, y1 int, inclusive bool) (cells []core.Point, flipped bool) {
	steep := abs(x1-x0) < abs(y1-y0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		flipped = true
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	ystep := sign(y1 - y0)

	end := x1
	if inclusive {
		end++
	}
	cells = make([]core.Point, 0, end-x0)

	e := 0
	y := y0
	for x := x0; x < end; x++ {
		if steep {
			cells = append(cells, core.Point{X: y, Y: x})
		} else {
			cells = append(cells, core.Point{X: x, Y: y})
		}
		e += dy
		if dx <= 2*e {
			y += ystep
			e -= dx
		}
	}
	return cells, flipped
}

func reverse(p []core.Point) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
