package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n). n <= 0 yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// ScatterWalls turns interior cells into walls with the given density. The
// outermost ring and the grid centre are left untouched.
func ScatterWalls(g *Grid, r *RNG, density float64) {
	cx, cy := g.W/2, g.H/2
	for row := 1; row < g.H-1; row++ {
		for col := 1; col < g.W-1; col++ {
			if col == cx && row == cy {
				continue
			}
			if r.Chance(density) {
				g.Set(col, row, Wall)
			}
		}
	}
}
