package config

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// TerminalBackend is the registry key of the tcell back end.
const TerminalBackend = "terminal"

// Options represents the command-line parameters for the application.
type Options struct {
	Config   string
	Map      string
	Backend  string
	View     string
	Workers  int
	Sound    bool
	NoHUD    bool
	LogLevel string
	LogFile  string

	Out    string
	Frames int
	Script string
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{Config: "settings.json", Backend: "ebiten", View: "3d", LogLevel: "info", Out: "frame.png", Frames: 1}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Config, "config", o.Config, "JSON settings file")
	fs.StringVar(&o.Map, "map", o.Map, "map image (overrides map_path)")
	fs.StringVar(&o.Backend, "backend", o.Backend, "presentation back end: ebiten, terminal or snapshot")
	fs.StringVar(&o.View, "view", o.View, "initial view: 3d or 2d")
	fs.IntVar(&o.Workers, "workers", o.Workers, "column cast workers (0 keeps the settings value)")
	fs.BoolVar(&o.Sound, "sound", o.Sound, "play a bump tone when a move is blocked")
	fs.BoolVar(&o.NoHUD, "no-hud", o.NoHUD, "hide the on-screen HUD")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "append logs to this file instead of stderr")
	fs.StringVar(&o.Out, "out", o.Out, "snapshot back end: output PNG path")
	fs.IntVar(&o.Frames, "frames", o.Frames, "snapshot back end: ticks to run before capturing")
	fs.StringVar(&o.Script, "script", o.Script, "snapshot back end: input keys per tick, e.g. \"wwdd2\"")
}

// ExplicitConfig reports whether -config was passed on the command line.
func (o *Options) ExplicitConfig(fs *flag.FlagSet) bool {
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	return explicit
}

// Apply overlays command-line overrides onto cfg and revalidates it.
func (o *Options) Apply(cfg Config) (Config, error) {
	if o.Map != "" {
		cfg.MapPath = o.Map
	}
	if o.Workers > 0 {
		cfg.Workers = o.Workers
	}
	if o.Sound {
		cfg.Sound = true
	}
	if o.NoHUD {
		cfg.HUD = false
	}
	return cfg, cfg.Validate()
}

// TopDown reports whether the initial view is the top-down debug view.
func (o *Options) TopDown() bool {
	switch strings.ToLower(o.View) {
	case "2d", "topdown", "top-down":
		return true
	}
	return false
}

// Level parses the -log-level value.
func (o *Options) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return logrus.InfoLevel, &ConfigError{Key: "log-level", Reason: "unknown level " + o.LogLevel, Err: err}
	}
	return lvl, nil
}

// LogWriter picks the log destination: -log-file when set, otherwise stderr.
// The terminal back end draws on the tty, so without -log-file its logs are
// discarded. The returned close func is never nil.
func (o *Options) LogWriter(stderr io.Writer) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if o.LogFile != "" {
		f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, &ConfigError{Key: "log-file", Reason: "cannot open " + o.LogFile, Err: err}
		}
		return f, f.Close, nil
	}
	if o.Backend == TerminalBackend {
		return io.Discard, noop, nil
	}
	return stderr, noop, nil
}
