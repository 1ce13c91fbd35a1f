package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pixels/clock"
)

// DefaultSize is the default text size in pixels per em.
const DefaultSize = 10

// Option configures an Overlay during creation.
type Option func(*options)

type options struct {
	size  float64
	color color.Color
	x, y  int
}

// WithSize sets the text size in pixels per em.
func WithSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.size = size
		}
	}
}

// WithColor sets the text color.
func WithColor(c color.Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithPosition sets the top-left corner of the text.
func WithPosition(x, y int) Option {
	return func(o *options) {
		o.x, o.y = x, y
	}
}

// Overlay draws short status lines in Go Mono onto any draw.Image,
// canvas.Canvas included.
type Overlay struct {
	face   font.Face
	src    *image.Uniform
	origin image.Point
	ascent int
	height int
}

// New creates an Overlay. The default is white 10px text at the top-left
// corner.
func New(opts ...Option) (*Overlay, error) {
	o := options{size: DefaultSize, color: color.White}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    o.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hud: create face: %w", err)
	}

	m := face.Metrics()
	return &Overlay{
		face:   face,
		src:    image.NewUniform(o.color),
		origin: image.Pt(o.x, o.y),
		ascent: m.Ascent.Ceil(),
		height: m.Height.Ceil(),
	}, nil
}

// DrawText draws s with its top-left corner at the overlay position,
// moved down by line text lines. Glyph pixels outside dst are dropped.
func (o *Overlay) DrawText(dst draw.Image, s string, line int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  o.src,
		Face: o.face,
		Dot:  fixed.P(o.origin.X, o.origin.Y+o.ascent+line*o.height),
	}
	d.DrawString(s)
}

// DrawFPS draws the frame rate and mean frame time of clk.
func (o *Overlay) DrawFPS(dst draw.Image, clk *clock.FrameClock) {
	o.DrawText(dst, FPSText(clk), 0)
}

// Bounds returns the box s occupies when drawn on the given line.
func (o *Overlay) Bounds(s string, line int) image.Rectangle {
	w := font.MeasureString(o.face, s).Ceil()
	top := o.origin.Y + line*o.height
	return image.Rect(o.origin.X, top, o.origin.X+w, top+o.height)
}

// Close releases the font face.
func (o *Overlay) Close() error {
	return o.face.Close()
}

// FPSText formats the frame rate and mean frame time of clk.
func FPSText(clk *clock.FrameClock) string {
	return fmt.Sprintf("%.0f fps %.2f ms", clk.FPS(), clk.RollingAverage()*1000)
}
