package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/gogpu/pixels"
)

// Common errors returned by Canvas operations.
var (
	// ErrOutOfBounds is returned for pixel coordinates outside the canvas.
	ErrOutOfBounds = errors.New("canvas: pixel out of bounds")

	// ErrInvalidColorComponent is returned when a normalized color channel
	// lies outside [0, 1].
	ErrInvalidColorComponent = errors.New("canvas: invalid color component")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")
)

// Canvas is a packed RGBA pixel surface, row-major, 4 bytes per pixel.
//
// Every coordinate access is bounds checked and a failing call never
// writes. Canvas is NOT safe for concurrent use.
type Canvas struct {
	width      int
	height     int
	pix        []byte
	clearColor RGB
}

// New creates a canvas filled with transparent black.
// The remembered clear color starts as opaque black.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		width:      width,
		height:     height,
		pix:        make([]byte, width*height*4),
		clearColor: Black,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when the dimensions are constants.
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Capacity returns the length of the pixel buffer, width*height*4.
func (c *Canvas) Capacity() int {
	return c.width * c.height * 4
}

// ClearColor returns the remembered clear color.
func (c *Canvas) ClearColor() RGB {
	return c.clearColor
}

// Resize replaces the pixel buffer with one of the new size, cleared to
// the remembered clear color. All previous content is lost.
//
// The new buffer is fully built before it replaces the old one, so the
// canvas is never observed half-resized. Invalid dimensions leave the
// canvas untouched.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	pix := make([]byte, width*height*4)
	fill(pix, c.clearColor)

	pixels.Logger().Debug("canvas: resized",
		"from_width", c.width, "from_height", c.height,
		"width", width, "height", height)

	c.pix, c.width, c.height = pix, width, height
	return nil
}

// ReadPixel returns the color channels at (x, y).
func (c *Canvas) ReadPixel(x, y int) (RGB, error) {
	i, err := c.offset(x, y)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2]}, nil
}

// ReadPixelAlpha returns the color and alpha channels at (x, y).
func (c *Canvas) ReadPixelAlpha(x, y int) (color.NRGBA, error) {
	i, err := c.offset(x, y)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}, nil
}

// WritePixel overwrites the pixel at (x, y) with an opaque color.
func (c *Canvas) WritePixel(x, y int, col RGB) error {
	return c.WritePixelAlpha(x, y, col.NRGBA())
}

// WritePixelAlpha overwrites the pixel at (x, y), alpha included.
// No compositing takes place.
func (c *Canvas) WritePixelAlpha(x, y int, col color.NRGBA) error {
	i, err := c.offset(x, y)
	if err != nil {
		return err
	}
	c.store(i, col)
	return nil
}

// WritePixelF32 overwrites the pixel at (x, y) with an opaque color given
// in normalized channels.
func (c *Canvas) WritePixelF32(x, y int, col FloatRGB) error {
	rgb, err := col.RGB()
	if err != nil {
		return err
	}
	return c.WritePixel(x, y, rgb)
}

// WritePixelBlend composites col over the pixel at (x, y) using
// non-premultiplied "over" alpha blending. See Over for the arithmetic.
func (c *Canvas) WritePixelBlend(x, y int, col color.NRGBA) error {
	i, err := c.offset(x, y)
	if err != nil {
		return err
	}
	dst := color.NRGBA{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
	if out, ok := Over(col, dst); ok {
		c.store(i, out)
	}
	return nil
}

// WritePixelBlendF32 is WritePixelBlend with normalized channels.
func (c *Canvas) WritePixelBlendF32(x, y int, col FloatRGBA) error {
	n, err := col.NRGBA()
	if err != nil {
		return err
	}
	return c.WritePixelBlend(x, y, n)
}

// SetClearColor remembers col for Clear and Resize without touching pixels.
func (c *Canvas) SetClearColor(col RGB) {
	c.clearColor = col
}

// SetClearColorF32 is SetClearColor with normalized channels.
func (c *Canvas) SetClearColorF32(col FloatRGB) error {
	rgb, err := col.RGB()
	if err != nil {
		return err
	}
	c.clearColor = rgb
	return nil
}

// ClearScreen sets every pixel to col at full opacity and remembers col
// as the clear color.
func (c *Canvas) ClearScreen(col RGB) {
	c.clearColor = col
	fill(c.pix, col)
}

// Clear sets every pixel to the remembered clear color.
func (c *Canvas) Clear() {
	fill(c.pix, c.clearColor)
}

// Pixels returns the live pixel buffer. The slice is only valid until the
// next Resize; callers must not retain or modify it.
func (c *Canvas) Pixels() []byte {
	return c.pix
}

// Snapshot returns a complete copy of the pixel buffer taken now.
func (c *Canvas) Snapshot() Snapshot {
	return Snapshot{
		Pix:    slices.Clone(c.pix),
		Width:  c.width,
		Height: c.height,
	}
}

// offset returns the byte index of (x, y) or ErrOutOfBounds.
func (c *Canvas) offset(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		pixels.Logger().Debug("canvas: access out of bounds",
			"x", x, "y", y, "width", c.width, "height", c.height)
		return 0, fmt.Errorf("%w: x=%d, y=%d, size=%dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return (y*c.width + x) * 4, nil
}

func (c *Canvas) store(i int, col color.NRGBA) {
	c.pix[i+0] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
	c.pix[i+3] = col.A
}

// fill writes col at full opacity into every pixel of pix.
func fill(pix []byte, col RGB) {
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = col.R, col.G, col.B, 255
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
}
