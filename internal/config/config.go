// Package config holds the renderer settings loaded once at startup.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strconv"

	"gridcast/internal/core"
)

// RGB is a colour triple with components in 0..255.
type RGB [3]int

// RGBA converts the triple to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}

// Scale multiplies each component by f and rounds to nearest.
func (c RGB) Scale(f float64) color.RGBA {
	scale := func(v int) uint8 {
		s := float64(v) * f
		if s < 0 {
			s = 0
		}
		if s > 255 {
			s = 255
		}
		return uint8(s + 0.5)
	}
	return color.RGBA{R: scale(c[0]), G: scale(c[1]), B: scale(c[2]), A: 255}
}

// UnmarshalJSON accepts exactly three integers. encoding/json would otherwise
// zero-pad a short array and drop the tail of a long one.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil || len(v) != 3 {
		got := "malformed value"
		if err == nil {
			got = "array of " + strconv.Itoa(len(v))
		}
		return &json.UnmarshalTypeError{Value: got, Type: reflect.TypeOf(*c)}
	}
	copy(c[:], v)
	return nil
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c[0], c[1], c[2])
}

// Config is the complete set of renderer settings. It is built once and
// passed by pointer; nothing mutates it after Validate succeeds.
type Config struct {
	FrameRate    int `json:"frame_rate"`
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
	WallScaling  int `json:"wall_scaling"`
	TopDownScale int `json:"top_down_view_window_scaling"`

	FloorColor       RGB `json:"floor_color"`
	CeilingColor     RGB `json:"ceiling_color"`
	WallColor        RGB `json:"wall_color"`
	PlayerColor      RGB `json:"player_color"`
	RaycastLineColor RGB `json:"raycast_line_color"`

	FOVAngle       float64 `json:"fov_angle"`
	FOVRadius      float64 `json:"fov_radius"`
	NumberOfRays   int     `json:"number_of_raycasts"`
	MovementSpeed  float64 `json:"movement_speed"`
	AngularSpeed   float64 `json:"angular_speed"`
	ExclusiveLines bool    `json:"exclusive_line_end"`

	MapPath string `json:"map_path"`
	Workers int    `json:"workers"`
	Sound   bool   `json:"sound"`
	HUD     bool   `json:"hud"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		FrameRate:    30,
		ScreenWidth:  800,
		ScreenHeight: 600,
		WallScaling:  600,
		TopDownScale: 8,

		FloorColor:       RGB{90, 90, 90},
		CeilingColor:     RGB{40, 40, 70},
		WallColor:        RGB{230, 230, 230},
		PlayerColor:      RGB{220, 40, 40},
		RaycastLineColor: RGB{240, 200, 40},

		FOVAngle:      60,
		FOVRadius:     20,
		NumberOfRays:  200,
		MovementSpeed: 1,
		AngularSpeed:  5,

		MapPath: "data/map.png",
		Workers: 1,
		HUD:     true,
	}
}

// Load reads a JSON settings file and overlays it on the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Key: "file", Reason: "cannot read " + path, Err: err}
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except a missing file at path yields the defaults.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		return cfg, cfg.Validate()
	}
	return cfg, err
}

// Parse decodes JSON settings from r over the defaults and validates them.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, decodeError(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		reason := "expected " + typeErr.Type.String()
		if typeErr.Type == reflect.TypeOf(RGB{}) {
			reason = "expected an array of 3 integers, got " + typeErr.Value
		}
		return &ConfigError{Key: typeErr.Field, Reason: reason, Err: err}
	}
	return &ConfigError{Key: "file", Reason: "malformed JSON", Err: err}
}

// Validate checks every option's range.
func (c *Config) Validate() error {
	positive := []struct {
		key string
		v   int
	}{
		{"frame_rate", c.FrameRate},
		{"screen_width", c.ScreenWidth},
		{"screen_height", c.ScreenHeight},
		{"wall_scaling", c.WallScaling},
		{"top_down_view_window_scaling", c.TopDownScale},
		{"number_of_raycasts", c.NumberOfRays},
		{"workers", c.Workers},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return &ConfigError{Key: p.key, Reason: "must be positive, got " + strconv.Itoa(p.v)}
		}
	}

	colors := []struct {
		key string
		v   RGB
	}{
		{"floor_color", c.FloorColor},
		{"ceiling_color", c.CeilingColor},
		{"wall_color", c.WallColor},
		{"player_color", c.PlayerColor},
		{"raycast_line_color", c.RaycastLineColor},
	}
	for _, col := range colors {
		for _, v := range col.v {
			if v < 0 || v > 255 {
				return &ConfigError{Key: col.key, Reason: "components must be in 0..255, got " + col.v.String()}
			}
		}
	}

	if c.FOVAngle < 0 || c.FOVAngle > 360 {
		return &ConfigError{Key: "fov_angle", Reason: "must be within 0..360"}
	}
	if c.FOVRadius <= 0 {
		return &ConfigError{Key: "fov_radius", Reason: "must be positive"}
	}
	if c.MovementSpeed < 0 {
		return &ConfigError{Key: "movement_speed", Reason: "must not be negative"}
	}
	if c.MapPath == "" {
		return &ConfigError{Key: "map_path", Reason: "must not be empty"}
	}
	return nil
}

// RayStep is the angle between neighbouring sample rays.
func (c *Config) RayStep() float64 {
	return c.FOVAngle / float64(c.NumberOfRays)
}

// ColumnWidth is the screen width covered by one sample ray.
func (c *Config) ColumnWidth() int {
	w := c.ScreenWidth / c.NumberOfRays
	if w < 1 {
		w = 1
	}
	return w
}

// Parameters summarises the settings for on-screen display.
func (c *Config) Parameters() core.ParameterSnapshot {
	itoa := strconv.Itoa
	ftoa := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "view",
			Params: []core.Parameter{
				{Key: "fov_angle", Label: "FOV", Type: core.ParamTypeFloat, Value: ftoa(c.FOVAngle)},
				{Key: "fov_radius", Label: "Radius", Type: core.ParamTypeFloat, Value: ftoa(c.FOVRadius)},
				{Key: "number_of_raycasts", Label: "Rays", Type: core.ParamTypeInt, Value: itoa(c.NumberOfRays)},
				{Key: "wall_scaling", Label: "Wall scale", Type: core.ParamTypeInt, Value: itoa(c.WallScaling)},
			},
		},
		{
			Name: "motion",
			Params: []core.Parameter{
				{Key: "movement_speed", Label: "Move", Type: core.ParamTypeFloat, Value: ftoa(c.MovementSpeed)},
				{Key: "angular_speed", Label: "Turn", Type: core.ParamTypeFloat, Value: ftoa(c.AngularSpeed)},
				{Key: "frame_rate", Label: "FPS cap", Type: core.ParamTypeInt, Value: itoa(c.FrameRate)},
			},
		},
		{
			Name: "engine",
			Params: []core.Parameter{
				{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Value: itoa(c.Workers)},
				{Key: "exclusive_line_end", Label: "Exclusive lines", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.ExclusiveLines)},
			},
		},
	}}
}
