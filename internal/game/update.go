// Package game wires player updates and frame projection into a session the
// presentation back ends drive once per tick.
package game

import (
	"gridcast/internal/core"
	"gridcast/internal/player"
	"gridcast/internal/projection"
)

// Input is the key state sampled for one tick.
type Input struct {
	Quit        bool
	FirstPerson bool
	TopDown     bool
	RotateLeft  bool
	RotateRight bool
	Forward     bool
	Backward    bool
}

// Event flags what an update changed.
type Event uint8

const (
	// Moved is set when the player changed position.
	Moved Event = 1 << iota
	// Blocked is set when a requested move hit a wall or the grid edge.
	Blocked
	// Rotated is set when the heading changed.
	Rotated
	// ViewChanged is set when the view switched.
	ViewChanged
	// Quit is set when the input asked to stop.
	Quit
)

// Has reports whether all bits of f are set.
func (e Event) Has(f Event) bool { return e&f == f }

// State is everything a frame depends on besides the grid.
type State struct {
	Player player.Player
	View   projection.View
}

// UpdatePlayer applies one tick of input. The returned state is a copy; grid
// is updated only to move the occupant marker.
func UpdatePlayer(s State, grid *core.Grid, in Input) (State, Event) {
	var ev Event
	if in.Quit {
		return s, Quit
	}

	switch {
	case in.FirstPerson:
		if s.View != projection.FirstPerson {
			s.View = projection.FirstPerson
			ev |= ViewChanged
		}
	case in.TopDown:
		if s.View != projection.TopDown {
			s.View = projection.TopDown
			ev |= ViewChanged
		}
	}

	if turn := axis(in.RotateRight, in.RotateLeft); turn != 0 {
		s.Player.Rotate(float64(turn) * s.Player.AngularSpeed)
		ev |= Rotated
	}

	if dir := axis(in.Forward, in.Backward); dir != 0 {
		before := s.Player.Position()
		if s.Player.Move(grid, dir) {
			if s.Player.Position() != before {
				ev |= Moved
			}
		} else {
			ev |= Blocked
		}
	}
	return s, ev
}

// RenderFrame projects the state into draw commands.
func RenderFrame(e *projection.Engine, s State, grid *core.Grid) []projection.DrawCommand {
	return e.Render(s.View, grid, &s.Player)
}

func axis(pos, neg bool) int {
	v := 0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
