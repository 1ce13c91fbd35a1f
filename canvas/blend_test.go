package canvas

import (
	"image/color"
	"testing"
)

func TestOver(t *testing.T) {
	tests := []struct {
		name   string
		src    color.NRGBA
		dst    color.NRGBA
		want   color.NRGBA
		wantOK bool
	}{
		{
			name:   "opaque replaces opaque",
			src:    color.NRGBA{10, 20, 30, 255},
			dst:    color.NRGBA{200, 100, 50, 255},
			want:   color.NRGBA{10, 20, 30, 255},
			wantOK: true,
		},
		{
			name:   "opaque replaces transparent",
			src:    color.NRGBA{10, 20, 30, 255},
			dst:    color.NRGBA{},
			want:   color.NRGBA{10, 20, 30, 255},
			wantOK: true,
		},
		{
			name:   "half red over white",
			src:    color.NRGBA{255, 0, 0, 128},
			dst:    color.NRGBA{255, 255, 255, 255},
			want:   color.NRGBA{255, 127, 127, 255},
			wantOK: true,
		},
		{
			name:   "translucent over transparent keeps source color",
			src:    color.NRGBA{90, 180, 45, 77},
			dst:    color.NRGBA{},
			want:   color.NRGBA{90, 180, 45, 77},
			wantOK: true,
		},
		{
			// αo·255 = 128 + 200·127/255 = 227.6, c = 25400/227.6 = 111.6
			name:   "results truncate",
			src:    color.NRGBA{0, 0, 0, 128},
			dst:    color.NRGBA{255, 255, 255, 200},
			want:   color.NRGBA{111, 111, 111, 227},
			wantOK: true,
		},
		{
			name:   "transparent source is a no-op",
			src:    color.NRGBA{255, 255, 255, 0},
			dst:    color.NRGBA{12, 34, 56, 78},
			want:   color.NRGBA{12, 34, 56, 78},
			wantOK: false,
		},
		{
			name:   "both transparent",
			src:    color.NRGBA{1, 2, 3, 0},
			dst:    color.NRGBA{4, 5, 6, 0},
			want:   color.NRGBA{4, 5, 6, 0},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Over(tt.src, tt.dst)
			if ok != tt.wantOK {
				t.Errorf("Over() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Over() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendOpaqueIsIdempotent(t *testing.T) {
	priors := []color.NRGBA{
		{},
		{255, 255, 255, 255},
		{17, 200, 3, 91},
		{0, 0, 0, 1},
	}
	colors := []RGB{{0, 0, 0}, {255, 255, 255}, {1, 128, 254}, {200, 13, 77}}

	for _, prior := range priors {
		for _, col := range colors {
			c := MustNew(1, 1)
			_ = c.WritePixelAlpha(0, 0, prior)
			if err := c.WritePixelBlend(0, 0, col.NRGBA()); err != nil {
				t.Fatalf("WritePixelBlend() = %v", err)
			}
			got, _ := c.ReadPixelAlpha(0, 0)
			if got != col.NRGBA() {
				t.Errorf("blend %v over %v = %v, want %v", col, prior, got, col.NRGBA())
			}
		}
	}
}

func TestBlendZeroAlphaLeavesPixel(t *testing.T) {
	priors := []color.NRGBA{
		{},
		{255, 0, 255, 255},
		{33, 66, 99, 128},
		{250, 251, 252, 3},
	}

	for _, prior := range priors {
		c := MustNew(2, 2)
		_ = c.WritePixelAlpha(1, 0, prior)
		for range 10 {
			if err := c.WritePixelBlend(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0}); err != nil {
				t.Fatalf("WritePixelBlend() = %v", err)
			}
		}
		got, _ := c.ReadPixelAlpha(1, 0)
		if absDiff(got.R, prior.R) > 1 || absDiff(got.G, prior.G) > 1 ||
			absDiff(got.B, prior.B) > 1 || absDiff(got.A, prior.A) > 1 {
			t.Errorf("zero-alpha blend over %v = %v", prior, got)
		}
	}
}

func TestBlendOpaqueDestinationStaysOpaque(t *testing.T) {
	c := MustNew(1, 1)
	c.ClearScreen(White)
	for a := uint8(1); a < 255; a += 17 {
		_ = c.WritePixelBlend(0, 0, color.NRGBA{R: 40, G: 80, B: 160, A: a})
		got, _ := c.ReadPixelAlpha(0, 0)
		if got.A != 255 {
			t.Fatalf("alpha after blending A=%d over opaque = %d, want 255", a, got.A)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func BenchmarkWritePixelBlend(b *testing.B) {
	c := MustNew(256, 256)
	c.ClearScreen(White)
	col := color.NRGBA{R: 255, A: 128}
	b.ReportAllocs()
	for b.Loop() {
		for y := 0; y < 256; y++ {
			for x := 0; x < 256; x++ {
				_ = c.WritePixelBlend(x, y, col)
			}
		}
	}
}
