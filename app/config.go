package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pixels/canvas"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("app: invalid config")

// Duration wraps time.Duration so YAML can spell it as "16ms" or "1s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config describes the canvas and the window the host should open for it.
//
// Title, Resizable, Fullscreen, VSync and CursorVisible are hints for the
// host; the driver itself only uses the canvas fields and the pacing.
type Config struct {
	Title         string     `yaml:"title"`
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	ClearColor    canvas.RGB `yaml:"clear_color"`
	Resizable     bool       `yaml:"resizable"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	CursorVisible bool       `yaml:"cursor_visible"`

	// FrameInterval paces Run. Zero runs frames back to back.
	FrameInterval Duration `yaml:"frame_interval"`

	// MaxFrames stops the driver after that many frames. Zero is unlimited.
	MaxFrames int `yaml:"max_frames"`
}

// DefaultConfig returns a 256×256 canvas cleared to black, with vsync and
// a visible cursor.
func DefaultConfig() Config {
	return Config{
		Title:         "pixels",
		Width:         256,
		Height:        256,
		ClearColor:    canvas.Black,
		VSync:         true,
		CursorVisible: true,
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the canvas size set.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithClearColor returns a copy of c with the clear color set.
func (c Config) WithClearColor(col canvas.RGB) Config {
	c.ClearColor = col
	return c
}

// WithResizable returns a copy of c with the resizable hint set.
func (c Config) WithResizable(resizable bool) Config {
	c.Resizable = resizable
	return c
}

// WithFrameInterval returns a copy of c with frame pacing set.
func (c Config) WithFrameInterval(d time.Duration) Config {
	c.FrameInterval = Duration(d)
	return c
}

// WithMaxFrames returns a copy of c that stops after n frames.
func (c Config) WithMaxFrames(n int) Config {
	c.MaxFrames = n
	return c
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FrameInterval < 0 {
		return fmt.Errorf("%w: negative frame_interval %v", ErrInvalidConfig, c.FrameInterval.Duration())
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("%w: negative max_frames %d", ErrInvalidConfig, c.MaxFrames)
	}
	return nil
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	return LoadConfigOver(DefaultConfig(), path)
}

// LoadConfigOver is like LoadConfig but fields missing from the file keep
// their values from base.
func LoadConfigOver(base Config, path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("app: reading config file: %w", err)
	}
	return ParseConfigOver(base, data)
}

// ParseConfig decodes YAML config data on top of DefaultConfig and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	return ParseConfigOver(DefaultConfig(), data)
}

// ParseConfigOver decodes YAML config data on top of base and validates
// the result.
func ParseConfigOver(base Config, data []byte) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("app: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
