// Package term presents frames in a terminal using tcell half-block cells.
package term

import (
	"context"
	"fmt"
	"image"

	"gridcast/internal/config"
	"gridcast/internal/core"
	"gridcast/internal/game"
	"gridcast/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Name is the registry key of the terminal back end.
const Name = config.TerminalBackend

// upperHalf paints the top pixel of a cell in the foreground colour and the
// bottom pixel in the background colour.
const upperHalf = '▀'

// Backend drives a game session from a tcell screen.
type Backend struct {
	session *game.Session
	screen  tcell.Screen
	step    *core.FixedStep
	log     logrus.FieldLogger

	frame *image.RGBA
}

// New returns a terminal back end. When screen is nil a real terminal screen
// is opened on Run.
func New(s *game.Session, screen tcell.Screen) *Backend {
	return &Backend{
		session: s,
		screen:  screen,
		step:    core.NewFixedStep(s.Config().FrameRate),
		log:     s.Log().WithField("backend", Name),
	}
}

// Name implements core.Backend.
func (b *Backend) Name() string { return Name }

// Run initialises the screen and runs the frame loop until quit or ctx ends.
func (b *Backend) Run(ctx context.Context) error {
	if b.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		b.screen = screen
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer b.screen.Fini()
	b.screen.HideCursor()
	b.screen.Clear()

	events := make(chan tcell.Event, 64)
	go pump(b.screen, events)

	w, h := b.screen.Size()
	b.log.WithFields(logrus.Fields{"cols": w, "rows": h}).Info("terminal ready")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		in := b.drain(events)
		if b.session.Tick(in) {
			return nil
		}
		b.draw()
		b.step.Wait()
	}
}

// pump forwards screen events until the screen is finalised. Events are
// dropped while the frame loop is behind.
func pump(screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		default:
		}
	}
}

// drain folds every pending event into one tick of input. Terminals only
// report presses, so a key seen since the last frame counts as held.
func (b *Backend) drain(events <-chan tcell.Event) game.Input {
	var in game.Input
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				in.Quit = true
				return in
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in = in.Merge(KeyInput(ev))
			case *tcell.EventResize:
				b.screen.Sync()
			}
		default:
			return in
		}
	}
}

func (b *Backend) draw() {
	size := b.session.Surface()
	if b.frame == nil || b.frame.Bounds().Dx() != size.W || b.frame.Bounds().Dy() != size.H {
		b.frame = image.NewRGBA(image.Rect(0, 0, max(size.W, 1), max(size.H, 1)))
	}
	render.Paint(b.frame, b.session.Frame())
	Present(b.screen, b.frame)
	b.screen.Show()
}

// KeyInput maps a terminal key event to the input it represents.
func KeyInput(ev *tcell.EventKey) game.Input {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Input{Quit: true}
	case tcell.KeyUp:
		return game.Input{Forward: true}
	case tcell.KeyDown:
		return game.Input{Backward: true}
	case tcell.KeyLeft:
		return game.Input{RotateLeft: true}
	case tcell.KeyRight:
		return game.Input{RotateRight: true}
	case tcell.KeyRune:
		return game.KeyInput(ev.Rune())
	}
	return game.Input{}
}

// Present scales img to the screen, two image rows per terminal row.
func Present(screen tcell.Screen, img *image.RGBA) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	b := img.Bounds()
	sample := func(cx, py int) tcell.Color {
		x := b.Min.X + (2*cx+1)*b.Dx()/(2*cols)
		y := b.Min.Y + (2*py+1)*b.Dy()/(4*rows)
		c := img.RGBAAt(x, y)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			style := tcell.StyleDefault.
				Foreground(sample(cx, 2*cy)).
				Background(sample(cx, 2*cy+1))
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

func init() {
	core.RegisterBackend(Name, func(env any) (core.Backend, error) {
		e, err := game.EnvFrom(env)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", Name, err)
		}
		return New(e.Session, nil), nil
	})
}
