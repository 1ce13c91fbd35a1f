package demo

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels/app"
	"github.com/gogpu/pixels/canvas"
	"github.com/gogpu/pixels/clock"
	"github.com/gogpu/pixels/input"
)

const (
	boxSize     = 10
	boxStartX   = 10
	boxWrapX    = 240
	boxVelocity = 1
)

// Cyan is the box color.
var Cyan = canvas.RGB{G: 255, B: 255}

// Bounce moves a box across the canvas, one pixel per frame, wrapping back
// to the left once it passes x=240.
type Bounce struct {
	x, y float64
}

// NewBounce creates the moving box scene.
func NewBounce() *Bounce {
	return &Bounce{x: boxStartX, y: 128 - boxSize/2}
}

// Position returns the box's top-left corner.
func (b *Bounce) Position() (x, y int) {
	return int(b.x), int(b.y)
}

// Config implements Scene.
func (b *Bounce) Config() app.Config {
	return app.DefaultConfig().WithTitle("bounce").WithSize(256, 256)
}

// OnFrame implements app.Handler.
func (b *Bounce) OnFrame(c *canvas.Canvas, _ *input.State, _ *clock.FrameClock) bool {
	b.x += boxVelocity
	if b.x > boxWrapX {
		b.x = boxStartX
	}

	c.Clear()
	x0, y0 := b.Position()
	for y := y0; y < y0+boxSize; y++ {
		for x := x0; x < x0+boxSize; x++ {
			_ = c.WritePixel(x, y, Cyan)
		}
	}
	return true
}

// Autoplay implements Scene. It holds R so every frame is recorded.
func (b *Bounce) Autoplay(frame uint64, in *input.State) {
	if frame == 0 {
		in.PressKey(gpucontext.KeyR)
	}
}

// Help implements Scene.
func (b *Bounce) Help() []string { return nil }
