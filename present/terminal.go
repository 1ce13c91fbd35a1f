package present

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/x/ansi"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixels/canvas"
)

// upperHalfBlock fills the top half of a cell with the foreground color;
// the background color shows in the bottom half.
const upperHalfBlock = "▀"

// TerminalOption configures a Terminal presenter during creation.
type TerminalOption func(*Terminal)

// WithAltScreen switches the terminal to the alternate screen with a
// hidden cursor on the first Present. Close restores it.
func WithAltScreen() TerminalOption {
	return func(t *Terminal) {
		t.altScreen = true
	}
}

// WithFit shrinks frames that do not fit into cols×rows cells, keeping
// the aspect ratio. See SetFit.
func WithFit(cols, rows int) TerminalOption {
	return func(t *Terminal) {
		t.SetFit(cols, rows)
	}
}

// Terminal presents a canvas as truecolor text. Every character cell shows
// two vertically stacked pixels, so a canvas of W×H pixels needs W columns
// and ceil(H/2) rows. Alpha is composited over black.
//
// Terminal is NOT safe for concurrent use.
type Terminal struct {
	w         io.Writer
	buf       bytes.Buffer
	altScreen bool
	entered   bool

	fitCols, fitRows int
	scaled           *image.NRGBA
	viewCols         int
	viewRows         int
}

// NewTerminal creates a Terminal presenter writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{w: w}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TerminalCanvasSize returns the canvas size that exactly fills a terminal
// of cols×rows cells.
func TerminalCanvasSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// SetFit changes the cell area frames must fit into, for example after the
// terminal was resized. Zero disables shrinking.
func (t *Terminal) SetFit(cols, rows int) {
	t.fitCols, t.fitRows = max(cols, 0), max(rows, 0)
}

// Viewport returns the cells covered by the last presented frame. Pointer
// positions in cells map onto the canvas with this area.
func (t *Terminal) Viewport() (cols, rows int) {
	return t.viewCols, t.viewRows
}

// Present redraws the whole canvas starting at the top-left cell. The
// frame is written to the underlying writer in a single call.
func (t *Terminal) Present(c *canvas.Canvas) error {
	width, height := c.Size()
	pix := c.Pixels()
	if len(pix) != c.Capacity() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(pix), c.Capacity())
	}
	pix, width, height = t.fit(pix, width, height)
	t.viewCols, t.viewRows = width, (height+1)/2

	t.buf.Reset()
	if t.altScreen && !t.entered {
		t.buf.WriteString(ansi.SetModeAltScreenSaveCursor)
		t.buf.WriteString(ansi.HideCursor)
		t.buf.WriteString(ansi.EraseEntireScreen)
		t.entered = true
	}

	stride := width * 4
	for row := 0; row < height; row += 2 {
		t.buf.WriteString(ansi.CursorPosition(1, row/2+1))

		var prevTop, prevBottom ansi.RGBColor
		for x := 0; x < width; x++ {
			top := overBlack(pix[row*stride+x*4:])
			var bottom ansi.RGBColor
			if row+1 < height {
				bottom = overBlack(pix[(row+1)*stride+x*4:])
			}
			if x == 0 || top != prevTop || bottom != prevBottom {
				t.buf.WriteString(ansi.Style{}.ForegroundColor(top).BackgroundColor(bottom).String())
				prevTop, prevBottom = top, bottom
			}
			t.buf.WriteString(upperHalfBlock)
		}
		t.buf.WriteString(ansi.ResetStyle)
	}

	_, err := t.w.Write(t.buf.Bytes())
	return err
}

// Close resets the style and, when the alternate screen was entered,
// leaves it and shows the cursor again.
func (t *Terminal) Close() error {
	t.buf.Reset()
	t.buf.WriteString(ansi.ResetStyle)
	if t.entered {
		t.buf.WriteString(ansi.ShowCursor)
		t.buf.WriteString(ansi.ResetModeAltScreenSaveCursor)
		t.entered = false
	}
	_, err := t.w.Write(t.buf.Bytes())
	return err
}

// fit returns the pixels to draw, shrunk with nearest-neighbour sampling
// when they exceed the fit area.
func (t *Terminal) fit(pix []byte, width, height int) ([]byte, int, int) {
	if t.fitCols <= 0 || t.fitRows <= 0 {
		return pix, width, height
	}
	scale := min(float64(t.fitCols)/float64(width), float64(t.fitRows*2)/float64(height))
	if scale >= 1 {
		return pix, width, height
	}
	dw := max(int(float64(width)*scale), 1)
	dh := max(int(float64(height)*scale), 1)

	if t.scaled == nil || t.scaled.Rect.Dx() != dw || t.scaled.Rect.Dy() != dh {
		t.scaled = image.NewNRGBA(image.Rect(0, 0, dw, dh))
	}
	src := &image.NRGBA{Pix: pix, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	xdraw.NearestNeighbor.Scale(t.scaled, t.scaled.Rect, src, src.Rect, xdraw.Src, nil)
	return t.scaled.Pix, dw, dh
}

// overBlack composites one non-premultiplied RGBA pixel over opaque black.
func overBlack(p []byte) ansi.RGBColor {
	a := uint32(p[3])
	return ansi.RGBColor{
		R: uint8(uint32(p[0]) * a / 255),
		G: uint8(uint32(p[1]) * a / 255),
		B: uint8(uint32(p[2]) * a / 255),
	}
}
