// Package config loads renderer settings from a JSON file and CLI flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bstahlhood/tinyrenderer/pkg/render"
)

// ErrInvalid is returned by Validate for settings the renderer cannot use.
var ErrInvalid = errors.New("invalid config")

// Defaults used by Resolve for fields left empty.
const (
	DefaultWidth    = 1024
	DefaultHeight   = 768
	DefaultScale    = 1
	DefaultFPS      = 60
	DefaultOutput   = "output.tga"
	DefaultLogLevel = "info"
)

var (
	DefaultColor      = render.ColorWhite.String()
	DefaultBackground = render.ColorBlack.String()
)

// Config holds all render and viewer settings.
type Config struct {
	// Viewport
	Width  int `json:"width"`
	Height int `json:"height"`
	Scale  int `json:"scale"`

	// Colors as "r,g,b"
	Color      string `json:"color"`
	Background string `json:"background"`

	// Output
	Output     string `json:"output"`
	Downsample bool   `json:"downsample"`
	Caption    bool   `json:"caption"`

	// Viewer
	FPS      int    `json:"fps"`
	LogLevel string `json:"log_level"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting in place.
type Flags struct {
	Width      int
	Height     int
	Scale      int
	Color      string
	Background string
	Output     string
	Downsample bool
	Caption    bool
	FPS        int
	LogLevel   string
}

// Resolve applies flag overrides and fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Color != "" {
		c.Color = flags.Color
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Downsample {
		c.Downsample = true
	}
	if flags.Caption {
		c.Caption = true
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = DefaultScale
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks a resolved config.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 1 || c.Height < 1 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale))
	}
	if c.FPS < 1 {
		errs = append(errs, fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS))
	}
	if _, err := c.OutlineColor(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.FormatFromPath(c.Output); err != nil {
		errs = append(errs, fmt.Errorf("%w: output: %w", ErrInvalid, err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Viewport returns the logical viewport at the configured scale.
func (c Config) Viewport() render.Viewport {
	return render.Viewport{Width: c.Width, Height: c.Height, Scale: c.Scale}
}

// OutlineColor parses the wireframe color.
func (c Config) OutlineColor() (render.Color, error) {
	col, err := render.ParseColor(c.Color)
	if err != nil {
		return render.Color{}, fmt.Errorf("%w: color: %w", ErrInvalid, err)
	}
	return col, nil
}

// BackgroundColor parses the clear color.
func (c Config) BackgroundColor() (render.Color, error) {
	col, err := render.ParseColor(c.Background)
	if err != nil {
		return render.Color{}, fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	return col, nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
