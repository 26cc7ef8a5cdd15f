// Package player holds the viewer's position and heading on the grid.
package player

import (
	"math"

	"gridcast/internal/core"
)

// Player is a viewer standing on a whole grid cell.
type Player struct {
	X, Y int
	// Angle is the heading in degrees, kept in [0, 360). 0 faces +x (east),
	// 90 faces +y (down the rows).
	Angle float64

	MovementSpeed float64
	AngularSpeed  float64
}

// New places a player at the grid centre, or at the first open cell when the
// centre is a wall, and marks the occupant on the grid.
func New(grid *core.Grid, movementSpeed, angularSpeed float64) *Player {
	start := core.Point{X: grid.W / 2, Y: grid.H / 2}
	if grid.IsWall(start.X, start.Y) {
		if p, ok := grid.FirstEmpty(); ok {
			start = p
		}
	}
	grid.PlaceOccupant(start)
	return &Player{
		X:             start.X,
		Y:             start.Y,
		MovementSpeed: movementSpeed,
		AngularSpeed:  angularSpeed,
	}
}

// Position returns the player's cell.
func (p *Player) Position() core.Point { return core.Point{X: p.X, Y: p.Y} }

// Rotate turns the player by delta degrees.
func (p *Player) Rotate(delta float64) {
	p.Angle = NormalizeAngle(p.Angle + delta)
}

// Step returns the unrounded displacement for one move in direction
// (-1 backward, 0 none, 1 forward).
func (p *Player) Step(direction int) (h, v float64) {
	rad := math.Abs(p.Angle) * math.Pi / 180
	d := p.MovementSpeed * float64(direction)
	return math.Cos(rad) * d, math.Sin(rad) * d
}

// Move advances the player in direction and reports whether the move was
// taken. Moves into a wall or off the grid are dropped silently.
func (p *Player) Move(grid *core.Grid, direction int) bool {
	if direction == 0 {
		return false
	}
	h, v := p.Step(direction)
	next := core.Point{
		X: int(math.RoundToEven(float64(p.X) + h)),
		Y: int(math.RoundToEven(float64(p.Y) + v)),
	}
	if !grid.InBounds(next.X, next.Y) || grid.IsWall(next.X, next.Y) {
		return false
	}
	grid.PlaceOccupant(next)
	p.X, p.Y = next.X, next.Y
	return true
}

// Heading returns the unit vector the player faces.
func (p *Player) Heading() (x, y float64) {
	rad := p.Angle * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// NormalizeAngle wraps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
