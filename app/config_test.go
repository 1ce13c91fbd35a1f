package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/pixels/canvas"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 256 || cfg.Height != 256 {
		t.Errorf("size = %dx%d, want 256x256", cfg.Width, cfg.Height)
	}
	if cfg.ClearColor != canvas.Black {
		t.Errorf("ClearColor = %v, want black", cfg.ClearColor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfigWith(t *testing.T) {
	base := DefaultConfig()
	cfg := base.WithTitle("life").
		WithSize(64, 32).
		WithClearColor(canvas.Blue).
		WithResizable(true).
		WithFrameInterval(16 * time.Millisecond).
		WithMaxFrames(10)

	if cfg.Title != "life" || cfg.Width != 64 || cfg.Height != 32 || cfg.ClearColor != canvas.Blue ||
		!cfg.Resizable || cfg.FrameInterval.Duration() != 16*time.Millisecond || cfg.MaxFrames != 10 {
		t.Errorf("With chain produced %+v", cfg)
	}
	if base.Title != "pixels" || base.Width != 256 {
		t.Error("With methods modified the receiver")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", DefaultConfig().WithSize(0, 10)},
		{"negative height", DefaultConfig().WithSize(10, -1)},
		{"negative interval", DefaultConfig().WithFrameInterval(-time.Second)},
		{"negative max frames", DefaultConfig().WithMaxFrames(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
title: life
width: 128
height: 96
clear_color: {r: 16, g: 32, b: 48}
frame_interval: 16ms
max_frames: 5
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Title != "life" || cfg.Width != 128 || cfg.Height != 96 {
		t.Errorf("got %+v", cfg)
	}
	if cfg.ClearColor != (canvas.RGB{R: 16, G: 32, B: 48}) {
		t.Errorf("ClearColor = %v", cfg.ClearColor)
	}
	if cfg.FrameInterval.Duration() != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 16ms", cfg.FrameInterval.Duration())
	}
	if cfg.MaxFrames != 5 {
		t.Errorf("MaxFrames = %d, want 5", cfg.MaxFrames)
	}
	// Unset fields keep their defaults.
	if !cfg.VSync || !cfg.CursorVisible {
		t.Error("defaults lost for unset fields")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"bad yaml", "width: [", false},
		{"bad duration", "frame_interval: soon", false},
		{"bad size", "width: 0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseConfig() error = nil")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err = %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixels.yaml")
	if err := os.WriteFile(path, []byte("width: 32\nheight: 16\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 16 || cfg.Title != "pixels" {
		t.Errorf("LoadConfig() = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() of a missing file should fail")
	}
}

func TestParseConfigOver(t *testing.T) {
	base := DefaultConfig().WithTitle("life").WithSize(50, 50).WithResizable(true)
	cfg, err := ParseConfigOver(base, []byte("frame_interval: 40ms\nmax_frames: 9\n"))
	if err != nil {
		t.Fatalf("ParseConfigOver() error = %v", err)
	}
	if cfg.Title != "life" || cfg.Width != 50 || !cfg.Resizable {
		t.Errorf("base fields lost: %+v", cfg)
	}
	if cfg.FrameInterval.Duration() != 40*time.Millisecond || cfg.MaxFrames != 9 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if base.MaxFrames != 0 {
		t.Error("ParseConfigOver modified base")
	}
}
