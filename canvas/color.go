package canvas

import (
	"fmt"
	"image/color"
)

// RGB is an opaque color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// NRGBA returns c with full opacity.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Common colors.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Magenta = RGB{255, 0, 255}
)

// FloatRGB is an opaque color with normalized channels in [0, 1].
type FloatRGB struct {
	R, G, B float32
}

// RGB converts c to 8-bit channels, truncating v*255.
// Returns ErrInvalidColorComponent if any channel lies outside [0, 1].
func (c FloatRGB) RGB() (RGB, error) {
	r, err := channel8(c.R, 0)
	if err != nil {
		return RGB{}, err
	}
	g, err := channel8(c.G, 1)
	if err != nil {
		return RGB{}, err
	}
	b, err := channel8(c.B, 2)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: r, G: g, B: b}, nil
}

// FloatRGBA is a non-premultiplied color with normalized channels in [0, 1].
type FloatRGBA struct {
	R, G, B, A float32
}

// NRGBA converts c to 8-bit channels, truncating v*255.
// Returns ErrInvalidColorComponent if any channel lies outside [0, 1].
func (c FloatRGBA) NRGBA() (color.NRGBA, error) {
	rgb, err := FloatRGB{R: c.R, G: c.G, B: c.B}.RGB()
	if err != nil {
		return color.NRGBA{}, err
	}
	a, err := channel8(c.A, 3)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: a}, nil
}

// channel8 converts one normalized channel. NaN is rejected as well.
func channel8(v float32, index int) (uint8, error) {
	if !(v >= 0 && v <= 1) {
		return 0, fmt.Errorf("%w: channel %d = %v", ErrInvalidColorComponent, index, v)
	}
	return uint8(v * 255), nil
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
