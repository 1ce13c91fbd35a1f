package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Snapshot is a self-consistent copy of a canvas taken at one instant.
// It is what encoders and other out-of-frame consumers work with.
type Snapshot struct {
	Pix    []byte // RGBA, non-premultiplied, len == Width*Height*4
	Width  int
	Height int
}

// Image wraps the snapshot pixels as an *image.NRGBA without copying.
func (s Snapshot) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    s.Pix,
		Stride: s.Width * 4,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}

// Ensure Canvas can be the destination of image/draw and x/image/font.
var _ draw.Image = (*Canvas)(nil)

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements the image.Image interface.
// Coordinates outside the canvas yield transparent black.
func (c *Canvas) At(x, y int) color.Color {
	col, err := c.ReadPixelAlpha(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return col
}

// Set implements the draw.Image interface. It overwrites without
// compositing, since image/draw has already composited by the time it
// calls Set. Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	n, _ := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.store((y*c.width+x)*4, n)
}
