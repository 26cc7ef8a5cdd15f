package core

// Cell is the occupancy state of a single grid square.
type Cell uint8

const (
	// Empty cells can be walked through and seen across.
	Empty Cell = iota
	// Wall cells stop rays and block movement.
	Wall
	// Occupant marks the square the player currently stands on.
	Occupant
)

// String returns a short label used in logs and test failures.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Occupant:
		return "occupant"
	default:
		return "unknown"
	}
}

// Grid stores the level occupancy in row-major order. Its topology is fixed
// once built; only the occupant marker moves afterwards.
type Grid struct {
	W, H int
	data []Cell

	occupant    Point
	hasOccupant bool
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for (col, row).
func (g *Grid) Index(col, row int) int { return row*g.W + col }

// InBounds reports whether (col, row) addresses a cell of the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.W && row < g.H
}

// At returns the cell at (col, row). Out of range coordinates read as Empty.
func (g *Grid) At(col, row int) Cell {
	if !g.InBounds(col, row) {
		return Empty
	}
	return g.data[g.Index(col, row)]
}

// Set writes a cell value. Out of range writes are ignored.
func (g *Grid) Set(col, row int, c Cell) {
	if !g.InBounds(col, row) {
		return
	}
	g.data[g.Index(col, row)] = c
}

// IsWall reports whether (col, row) is an in-bounds wall.
func (g *Grid) IsWall(col, row int) bool {
	return g.At(col, row) == Wall
}

// Occupant returns the position of the occupant marker, if one is placed.
func (g *Grid) Occupant() (Point, bool) {
	return g.occupant, g.hasOccupant
}

// PlaceOccupant moves the occupant marker to p, clearing the previous one.
// Walls and out of range targets are refused.
func (g *Grid) PlaceOccupant(p Point) bool {
	if !g.InBounds(p.X, p.Y) || g.IsWall(p.X, p.Y) {
		return false
	}
	if g.hasOccupant {
		g.Set(g.occupant.X, g.occupant.Y, Empty)
	}
	g.Set(p.X, p.Y, Occupant)
	g.occupant = p
	g.hasOccupant = true
	return true
}

// FirstEmpty returns the first non-wall cell in row-major order.
func (g *Grid) FirstEmpty() (Point, bool) {
	for i, c := range g.data {
		if c != Wall {
			return Point{X: i % g.W, Y: i / g.W}, true
		}
	}
	return Point{}, false
}

// Walls counts wall cells.
func (g *Grid) Walls() int {
	n := 0
	for _, c := range g.data {
		if c == Wall {
			n++
		}
	}
	return n
}

// Border walls off the outermost ring of cells.
func (g *Grid) Border() {
	for col := 0; col < g.W; col++ {
		g.Set(col, 0, Wall)
		g.Set(col, g.H-1, Wall)
	}
	for row := 0; row < g.H; row++ {
		g.Set(0, row, Wall)
		g.Set(g.W-1, row, Wall)
	}
}
