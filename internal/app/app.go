//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"

	"gridcast/internal/core"
	"gridcast/internal/game"
	"gridcast/internal/projection"
	"gridcast/internal/render"
	"gridcast/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// WindowName is the registry key of the ebiten window back end.
const WindowName = "ebiten"

// Game adapts a game session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	session *game.Session
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	view    projection.View
	log     logrus.FieldLogger
}

// New constructs a Game for the provided session.
func New(s *game.Session) *Game {
	cfg := s.Config()
	return &Game{
		ctx:     context.Background(),
		session: s,
		painter: render.NewPainter(true),
		hud:     ui.NewHUD(cfg.Parameters(), cfg.HUD),
		overlay: ui.NewOverlay(s.Grid(), cfg.RaycastLineColor.RGBA()),
		view:    s.State().View,
		log:     s.Log().WithField("backend", WindowName),
	}
}

// Name implements core.Backend.
func (g *Game) Name() string { return WindowName }

// Run opens the window and blocks until the player quits or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	g.ctx = ctx
	size := g.session.Surface()
	ebiten.SetTPS(g.session.Config().FrameRate)
	ebiten.SetWindowSize(size.W, size.H)
	ebiten.SetWindowTitle(g.session.Title())
	g.log.WithField("tps", g.session.Config().FrameRate).Info("window opened")

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return g.ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Update handles per-frame logic and advances the session.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.hud.Update()
	g.overlay.Update()
	if g.session.Tick(pollInput()) {
		return ebiten.Termination
	}
	if v := g.session.State().View; v != g.view {
		g.view = v
		size := g.session.Surface()
		ebiten.SetWindowSize(size.W, size.H)
		ebiten.SetWindowTitle(g.session.Title())
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Frame())
	state := g.session.State()
	g.overlay.Draw(screen, state)
	g.hud.Draw(screen, state)
}

// Layout returns the logical screen size of the current view.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Surface()
	return max(s.W, 1), max(s.H, 1)
}

// pollInput reads held keys. Keys are sampled every tick, so holding a key
// repeats its action once per frame.
func pollInput() game.Input {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return game.Input{
		Quit:        held(ebiten.KeyEscape, ebiten.KeySlash),
		FirstPerson: held(ebiten.KeyDigit1),
		TopDown:     held(ebiten.KeyDigit2),
		RotateLeft:  held(ebiten.KeyA, ebiten.KeyArrowLeft),
		RotateRight: held(ebiten.KeyD, ebiten.KeyArrowRight),
		Forward:     held(ebiten.KeyW, ebiten.KeyArrowUp),
		Backward:    held(ebiten.KeyS, ebiten.KeyArrowDown),
	}
}

func init() {
	core.RegisterBackend(WindowName, func(env any) (core.Backend, error) {
		e, err := game.EnvFrom(env)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", WindowName, err)
		}
		return New(e.Session), nil
	})
}
