package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gridcast/internal/app"
	"gridcast/internal/config"
	"gridcast/internal/core"
	"gridcast/internal/game"
	"gridcast/internal/level"
	"gridcast/internal/projection"
	_ "gridcast/internal/term"

	"github.com/sirupsen/logrus"
)

func main() {
	opts := config.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := opts.Level()
	if err != nil {
		log.WithError(err).Fatal("bad flags")
	}
	log.SetLevel(lvl)
	out, closeLog, err := opts.LogWriter(os.Stderr)
	if err != nil {
		log.WithError(err).Fatal("bad flags")
	}
	log.SetOutput(out)

	err = run(opts, log)
	// Back ends have released the terminal by now.
	log.SetOutput(os.Stderr)
	_ = closeLog()
	if err != nil {
		if errors.Is(err, app.ErrNoWindow) {
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/gridcast` or pick another -backend.")
		}
		log.WithError(err).Fatal("gridcast failed")
	}
}

func run(opts *config.Options, log *logrus.Logger) error {
	load := config.LoadOptional
	if opts.ExplicitConfig(flag.CommandLine) {
		load = config.Load
	}
	cfg, err := load(opts.Config)
	if err != nil {
		return err
	}
	if cfg, err = opts.Apply(cfg); err != nil {
		return err
	}

	grid, err := level.Load(cfg.MapPath)
	if err != nil {
		return err
	}

	factory, ok := core.Backends()[opts.Backend]
	if !ok {
		return fmt.Errorf("unknown back end %q (available: %s)", opts.Backend, strings.Join(core.BackendNames(), ", "))
	}

	view := projection.FirstPerson
	if opts.TopDown() {
		view = projection.TopDown
	}
	entry := log.WithFields(logrus.Fields{"backend": opts.Backend, "map": cfg.MapPath})
	session := game.NewSession(&cfg, grid, view, entry)

	backend, err := factory(game.Env{Session: session, Options: opts})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = backend.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	entry.WithField("frames", session.Frames()).Info("bye")
	return err
}
