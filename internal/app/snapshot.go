// Package app hosts the window and snapshot back ends.
package app

import (
	"context"
	"errors"
	"fmt"

	"gridcast/internal/core"
	"gridcast/internal/game"
	"gridcast/internal/render"

	"github.com/sirupsen/logrus"
)

// ErrNoWindow reports a headless build asked for the window back end.
var ErrNoWindow = errors.New("the ebiten back end requires building with the 'ebiten' tag; use -backend terminal or -backend snapshot")

// SnapshotName is the registry key of the headless snapshot back end.
const SnapshotName = "snapshot"

// Snapshot runs a fixed number of ticks without a display and writes the
// final frame to a PNG file.
type Snapshot struct {
	session *game.Session
	out     string
	inputs  []game.Input
	log     logrus.FieldLogger
}

// NewSnapshot builds the back end. The session ticks max(frames, len(script))
// times; ticks past the end of the script are idle.
func NewSnapshot(s *game.Session, out string, frames int, script string) *Snapshot {
	inputs := game.ParseScript(script)
	for len(inputs) < frames {
		inputs = append(inputs, game.Input{})
	}
	return &Snapshot{
		session: s,
		out:     out,
		inputs:  inputs,
		log:     s.Log().WithField("backend", SnapshotName),
	}
}

// Name implements core.Backend.
func (b *Snapshot) Name() string { return SnapshotName }

// Run ticks the session and writes the frame. A quit input stops ticking
// early but the frame is still written.
func (b *Snapshot) Run(ctx context.Context) error {
	ticks := 0
	for _, in := range b.inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		ticks++
		if b.session.Tick(in) {
			break
		}
	}
	size := b.session.Surface()
	if err := render.WritePNG(b.out, b.session.Frame(), size); err != nil {
		return err
	}
	b.log.WithFields(logrus.Fields{
		"ticks": ticks,
		"path":  b.out,
		"size":  fmt.Sprintf("%dx%d", size.W, size.H),
	}).Info("snapshot written")
	return nil
}

func init() {
	core.RegisterBackend(SnapshotName, func(env any) (core.Backend, error) {
		e, err := game.EnvFrom(env)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", SnapshotName, err)
		}
		return NewSnapshot(e.Session, e.Options.Out, e.Options.Frames, e.Options.Script), nil
	})
}
