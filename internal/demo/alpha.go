package demo

import (
	"image"
	"image/color"

	"github.com/gogpu/pixels/app"
	"github.com/gogpu/pixels/canvas"
	"github.com/gogpu/pixels/clock"
	"github.com/gogpu/pixels/input"
)

// halfAlpha is 255/2 truncated.
const halfAlpha = 127

// Alpha draws three overlapping half-transparent squares on white.
type Alpha struct {
	squares []square
}

type square struct {
	rect image.Rectangle
	col  color.NRGBA
}

// NewAlpha creates the alpha blending scene.
func NewAlpha() *Alpha {
	return &Alpha{squares: []square{
		{image.Rect(125, 25, 225, 125), color.NRGBA{R: 255, A: halfAlpha}},
		{image.Rect(50, 50, 150, 150), color.NRGBA{G: 255, A: halfAlpha}},
		{image.Rect(100, 100, 200, 200), color.NRGBA{B: 255, A: halfAlpha}},
	}}
}

// Config implements Scene.
func (a *Alpha) Config() app.Config {
	return app.DefaultConfig().WithTitle("alpha blending").WithSize(256, 256).WithClearColor(canvas.White)
}

// OnFrame implements app.Handler.
func (a *Alpha) OnFrame(c *canvas.Canvas, _ *input.State, _ *clock.FrameClock) bool {
	c.ClearScreen(canvas.White)
	bounds := c.Bounds()
	for _, sq := range a.squares {
		r := sq.rect.Intersect(bounds)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				_ = c.WritePixelBlend(x, y, sq.col)
			}
		}
	}
	return true
}

// Autoplay implements Scene. The image is static.
func (a *Alpha) Autoplay(uint64, *input.State) {}

// Help implements Scene.
func (a *Alpha) Help() []string { return nil }
