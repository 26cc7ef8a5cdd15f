package game

import (
	"gridcast/internal/audio"
	"gridcast/internal/config"
	"gridcast/internal/core"
	"gridcast/internal/player"
	"gridcast/internal/projection"

	"github.com/sirupsen/logrus"
)

// Session owns the mutable per-run state and is driven by a back end.
// It is not safe for concurrent use; back ends call it from their frame loop.
type Session struct {
	cfg    *config.Config
	grid   *core.Grid
	engine *projection.Engine
	state  State
	log    logrus.FieldLogger
	bumper *audio.Bumper

	frames uint64
}

// NewSession places the player on grid and prepares the projection engine.
func NewSession(cfg *config.Config, grid *core.Grid, view projection.View, log logrus.FieldLogger) *Session {
	p := player.New(grid, cfg.MovementSpeed, cfg.AngularSpeed)
	s := &Session{
		cfg:    cfg,
		grid:   grid,
		engine: projection.New(cfg),
		state:  State{Player: *p, View: view},
		log:    log.WithField("component", "session"),
		bumper: audio.NewBumper(cfg.Sound, log),
	}
	s.log.WithFields(logrus.Fields{
		"grid":  grid.Size(),
		"start": p.Position(),
		"walls": grid.Walls(),
		"view":  view,
	}).Info("session started")
	return s
}

// Tick applies one frame of input and reports whether the session should end.
func (s *Session) Tick(in Input) (quit bool) {
	var ev Event
	s.state, ev = UpdatePlayer(s.state, s.grid, in)
	s.frames++

	if ev.Has(Quit) {
		s.log.WithField("frames", s.frames).Info("quit requested")
		return true
	}
	if ev.Has(ViewChanged) {
		s.log.WithField("view", s.state.View).Debug("view switched")
	}
	if ev.Has(Blocked) {
		s.log.WithFields(logrus.Fields{
			"at":    s.state.Player.Position(),
			"angle": s.state.Player.Angle,
		}).Debug("move blocked")
		s.bumper.Bump()
	}
	return false
}

// Frame renders the current state.
func (s *Session) Frame() []projection.DrawCommand {
	return RenderFrame(s.engine, s.state, s.grid)
}

// Surface is the pixel size of the current view.
func (s *Session) Surface() core.Size {
	return s.engine.Surface(s.state.View, s.grid)
}

// Title is the window caption for the current view.
func (s *Session) Title() string { return s.state.View.Title() }

// State returns a copy of the current state.
func (s *Session) State() State { return s.state }

// Config returns the session settings.
func (s *Session) Config() *config.Config { return s.cfg }

// Grid returns the level grid.
func (s *Session) Grid() *core.Grid { return s.grid }

// Frames counts ticks processed so far.
func (s *Session) Frames() uint64 { return s.frames }

// Log returns the session logger for back ends.
func (s *Session) Log() logrus.FieldLogger { return s.log }
