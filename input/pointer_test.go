package input

import (
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestPixelAt(t *testing.T) {
	tests := []struct {
		name         string
		px, py       float64
		areaW, areaH float64
		cw, ch       int
		wantX, wantY int
	}{
		{"origin", 0, 0, 800, 600, 50, 50, 0, 0},
		{"center", 400, 300, 800, 600, 50, 50, 25, 25},
		{"floors", 15.9, 11.9, 800, 600, 50, 50, 0, 0},
		{"just inside edge", 799.9, 599.9, 800, 600, 50, 50, 49, 49},
		{"at edge is outside", 800, 600, 800, 600, 50, 50, 50, 50},
		{"beyond edge not clamped", 1600, 1200, 800, 600, 50, 50, 100, 100},
		{"negative floors down", -1, -0.5, 800, 600, 50, 50, -1, -1},
		{"upscaled canvas", 100, 100, 200, 200, 1000, 1000, 500, 500},
		{"zero area", 10, 10, 0, 600, 50, 50, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PixelAt(tt.px, tt.py, tt.areaW, tt.areaH, tt.cw, tt.ch)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("PixelAt() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointerPixel(t *testing.T) {
	s := New()
	s.SetPointerPosition(256, 128)
	if x, y := s.PointerPixel(512, 512, 256, 256); x != 128 || y != 64 {
		t.Errorf("PointerPixel() = (%d, %d), want (128, 64)", x, y)
	}

	wp := gpucontext.NullWindowProvider{W: 512, H: 256, SF: 2}
	if x, y := s.PointerPixelIn(wp, 64, 64); x != 32 || y != 32 {
		t.Errorf("PointerPixelIn() = (%d, %d), want (32, 32)", x, y)
	}
}
