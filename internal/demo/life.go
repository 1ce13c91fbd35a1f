package demo

import (
	"image/color"
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels/app"
	"github.com/gogpu/pixels/canvas"
	"github.com/gogpu/pixels/clock"
	"github.com/gogpu/pixels/input"
)

// LifeSize is the side of the Life board in cells.
const LifeSize = 50

var cursorColor = color.NRGBA{R: 255, G: 255, B: 255, A: halfAlpha}

// Life is Conway's Game of Life on a bounded board, one cell per pixel.
// The left button places cells under the pointer, the right button
// removes them, and holding Space steps the simulation once per frame.
type Life struct {
	width, height int
	cells         []bool
	next          []bool

	// PixelAt maps the pointer to a canvas pixel. The default floors the
	// pointer position, which is correct when the pointer area equals the
	// canvas size. Hosts that scale the canvas install their own mapping.
	PixelAt func(in *input.State) (x, y int)
}

// NewLife creates an empty board.
func NewLife() *Life {
	return &Life{
		width:   LifeSize,
		height:  LifeSize,
		cells:   make([]bool, LifeSize*LifeSize),
		next:    make([]bool, LifeSize*LifeSize),
		PixelAt: pointerFloor,
	}
}

func pointerFloor(in *input.State) (x, y int) {
	px, py := in.PointerPosition()
	return int(math.Floor(px)), int(math.Floor(py))
}

// Config implements Scene.
func (l *Life) Config() app.Config {
	return app.DefaultConfig().WithTitle("life").WithSize(l.width, l.height).WithResizable(true)
}

// Alive reports whether the cell at (x, y) is alive. Cells outside the
// board are dead.
func (l *Life) Alive(x, y int) bool {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return false
	}
	return l.cells[x+y*l.width]
}

// Set places or removes a cell. Coordinates outside the board are ignored.
func (l *Life) Set(x, y int, alive bool) {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return
	}
	l.cells[x+y*l.width] = alive
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	n := 0
	for _, alive := range l.cells {
		if alive {
			n++
		}
	}
	return n
}

// Step advances the board one generation. Cells past the border count as
// dead; the board does not wrap.
func (l *Life) Step() {
	for y := range l.height {
		for x := range l.width {
			n := l.neighbours(x, y)
			alive := l.cells[x+y*l.width]
			l.next[x+y*l.width] = n == 3 || (alive && n == 2)
		}
	}
	l.cells, l.next = l.next, l.cells
}

func (l *Life) neighbours(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && l.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// OnFrame implements app.Handler.
func (l *Life) OnFrame(c *canvas.Canvas, in *input.State, _ *clock.FrameClock) bool {
	px, py := l.PixelAt(in)
	if in.OnSurface() {
		if in.ButtonPressed(gpucontext.MouseButtonLeft) {
			l.Set(px, py, true)
		}
		if in.ButtonPressed(gpucontext.MouseButtonRight) {
			l.Set(px, py, false)
		}
	}
	if in.KeyPressed(gpucontext.KeySpace) {
		l.Step()
	}

	c.Clear()
	for y := range l.height {
		for x := range l.width {
			if l.cells[x+y*l.width] {
				_ = c.WritePixel(x, y, canvas.White)
			}
		}
	}
	if in.OnSurface() {
		// Off-canvas pointers fail the bounds check and draw nothing.
		_ = c.WritePixelBlend(px, py, cursorColor)
	}
	return true
}

// glider is drawn by Autoplay, offset from the top-left corner.
var glider = [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

const gliderOffset = 5

// Autoplay implements Scene. It paints a glider one cell per frame with
// the left button, then holds Space.
func (l *Life) Autoplay(frame uint64, in *input.State) {
	n := uint64(len(glider))
	switch {
	case frame < n:
		cell := glider[frame]
		in.SetOnSurface(true)
		in.SetPointerPosition(float64(cell[0]+gliderOffset)+0.5, float64(cell[1]+gliderOffset)+0.5)
		in.PressButton(gpucontext.MouseButtonLeft)
	case frame == n:
		in.ReleaseButton(gpucontext.MouseButtonLeft)
		in.SetOnSurface(false)
		in.PressKey(gpucontext.KeySpace)
	}
}

// Help implements Scene.
func (l *Life) Help() []string {
	return []string{"LMB: place", "RMB: remove", "Space: step"}
}
