package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels"
	"github.com/gogpu/pixels/canvas"
	"github.com/gogpu/pixels/clock"
	"github.com/gogpu/pixels/input"
)

// ErrNilHandler is returned when New is called without a handler.
var ErrNilHandler = errors.New("app: nil handler")

// Handler is the per-frame user callback. OnFrame draws into c and reads
// in and clk; it returns false to stop the driver.
type Handler interface {
	OnFrame(c *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(c *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool

// OnFrame calls f(c, in, clk).
func (f HandlerFunc) OnFrame(c *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool {
	return f(c, in, clk)
}

// Presenter shows a finished frame. Presenters run after the handler, in
// the order they were registered.
type Presenter interface {
	Present(c *canvas.Canvas) error
}

// ResizeListener follows the canvas size. media.Recorder is one.
type ResizeListener interface {
	Resize(width, height int)
}

// Option configures a Driver during creation.
type Option func(*Driver)

// WithPresenter adds a presenter.
func WithPresenter(p Presenter) Option {
	return func(d *Driver) {
		if p != nil {
			d.presenters = append(d.presenters, p)
		}
	}
}

// WithClock replaces the driver's frame clock.
func WithClock(clk *clock.FrameClock) Option {
	return func(d *Driver) {
		if clk != nil {
			d.clock = clk
		}
	}
}

// WithResizeListener adds a listener resized together with the canvas.
func WithResizeListener(l ResizeListener) Option {
	return func(d *Driver) {
		if l != nil {
			d.listeners = append(d.listeners, l)
		}
	}
}

// WithFrameInterval overrides Config.FrameInterval.
func WithFrameInterval(interval time.Duration) Option {
	return func(d *Driver) {
		d.interval = max(interval, 0)
	}
}

// Driver owns a canvas, an input state and a frame clock and runs the
// handler once per frame:
//
//  1. the clock ticks
//  2. the handler draws, reading input edges
//  3. the input state advances to the next frame
//  4. every presenter shows the canvas
//
// Host events go into Input between frames, on the goroutine that calls
// Step or Run. Driver is NOT safe for concurrent use.
type Driver struct {
	cfg     Config
	handler Handler

	canvas *canvas.Canvas
	input  *input.State
	clock  *clock.FrameClock

	presenters []Presenter
	listeners  []ResizeListener
	interval   time.Duration

	areaW, areaH float64
	frame        uint64
	stopped      bool
}

// New validates cfg and creates a driver with a canvas of the configured
// size, cleared to the configured clear color.
func New(cfg Config, h Handler, opts ...Option) (*Driver, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := canvas.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	c.ClearScreen(cfg.ClearColor)

	d := &Driver{
		cfg:      cfg,
		handler:  h,
		canvas:   c,
		input:    input.New(),
		interval: cfg.FrameInterval.Duration(),
		areaW:    float64(cfg.Width),
		areaH:    float64(cfg.Height),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.clock == nil {
		d.clock = clock.New()
	}

	pixels.Logger().Info("app: driver created",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"presenters", len(d.presenters), "interval", d.interval)
	return d, nil
}

// Step runs one frame. It reports false once the handler has asked to
// stop or MaxFrames is reached; later calls do nothing. A presenter error
// ends the frame early and is returned.
func (d *Driver) Step() (bool, error) {
	if d.stopped {
		return false, nil
	}

	d.clock.Tick()
	if !d.handler.OnFrame(d.canvas, d.input, d.clock) {
		d.stop("handler")
		return false, nil
	}
	d.input.AdvanceFrame()
	d.frame++

	for _, p := range d.presenters {
		if err := p.Present(d.canvas); err != nil {
			return false, fmt.Errorf("app: present frame %d: %w", d.frame, err)
		}
	}

	if d.cfg.MaxFrames > 0 && d.frame >= uint64(d.cfg.MaxFrames) {
		d.stop("max frames")
		return false, nil
	}
	return true, nil
}

// Run steps frames until the handler stops, MaxFrames is reached, a
// presenter fails or ctx is done. With a frame interval, frames start at
// most once per interval.
func (d *Driver) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if d.interval > 0 {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		more, err := d.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
	}
}

// Resize resizes the canvas and then every resize listener, so frames
// recorded afterwards match the new size. Invalid sizes change nothing.
func (d *Driver) Resize(width, height int) error {
	if err := d.canvas.Resize(width, height); err != nil {
		return err
	}
	for _, l := range d.listeners {
		l.Resize(width, height)
	}
	d.cfg.Width, d.cfg.Height = width, height

	pixels.Logger().Info("app: canvas resized",
		"width", width, "height", height, "listeners", len(d.listeners))
	return nil
}

// Attach forwards host events from src into the input state and tracks
// the host drawable size for PointerPixel.
func (d *Driver) Attach(src gpucontext.EventSource) {
	input.Attach(src, d.input)
	src.OnResize(func(width, height int) {
		d.SetArea(float64(width), float64(height))
	})
}

// SetArea records the size of the host area the canvas is shown in, in
// the same units as pointer positions. It starts as the canvas size.
func (d *Driver) SetArea(width, height float64) {
	d.areaW, d.areaH = width, height
}

// PointerPixel returns the canvas pixel under the pointer. The result is
// not clamped to the canvas.
func (d *Driver) PointerPixel() (x, y int) {
	return d.input.PointerPixel(d.areaW, d.areaH, d.canvas.Width(), d.canvas.Height())
}

// Canvas returns the driver's canvas.
func (d *Driver) Canvas() *canvas.Canvas { return d.canvas }

// Input returns the driver's input state.
func (d *Driver) Input() *input.State { return d.input }

// Clock returns the driver's frame clock.
func (d *Driver) Clock() *clock.FrameClock { return d.clock }

// Config returns the configuration with the current canvas size.
func (d *Driver) Config() Config { return d.cfg }

// Frame returns the number of completed frames.
func (d *Driver) Frame() uint64 { return d.frame }

func (d *Driver) stop(reason string) {
	d.stopped = true
	pixels.Logger().Info("app: driver stopped",
		"reason", reason, "frames", d.frame, "elapsed", d.clock.TimeSinceStart())
}
