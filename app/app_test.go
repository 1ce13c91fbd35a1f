package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels/canvas"
	"github.com/gogpu/pixels/clock"
	"github.com/gogpu/pixels/input"
)

// recordingPresenter keeps the pixel at (0,0) of every presented frame.
type recordingPresenter struct {
	frames []canvas.RGB
	err    error
}

func (p *recordingPresenter) Present(c *canvas.Canvas) error {
	if p.err != nil {
		return p.err
	}
	col, err := c.ReadPixel(0, 0)
	if err != nil {
		return err
	}
	p.frames = append(p.frames, col)
	return nil
}

type sizeListener struct {
	width, height int
}

func (l *sizeListener) Resize(width, height int) {
	l.width, l.height = width, height
}

func fixedClock() *clock.FrameClock {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return clock.New(clock.WithNow(func() time.Time {
		now = now.Add(10 * time.Millisecond)
		return now
	}))
}

func TestNewErrors(t *testing.T) {
	noop := HandlerFunc(func(*canvas.Canvas, *input.State, *clock.FrameClock) bool { return true })

	if _, err := New(DefaultConfig(), nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("New(nil handler) error = %v, want ErrNilHandler", err)
	}
	if _, err := New(DefaultConfig().WithSize(0, 0), noop); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New(0x0) error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewClearsCanvas(t *testing.T) {
	noop := HandlerFunc(func(*canvas.Canvas, *input.State, *clock.FrameClock) bool { return true })
	d, err := New(DefaultConfig().WithSize(4, 4).WithClearColor(canvas.Magenta), noop)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := d.Canvas().ReadPixel(3, 3); got != canvas.Magenta {
		t.Errorf("pixel = %v, want magenta", got)
	}
	if d.Canvas().ClearColor() != canvas.Magenta {
		t.Error("clear color not remembered")
	}
}

func TestStepOrder(t *testing.T) {
	var sawJustPressed []bool
	h := HandlerFunc(func(c *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool {
		sawJustPressed = append(sawJustPressed, in.KeyJustPressed(gpucontext.KeySpace))
		if clk.Ticks() == 0 {
			t.Error("clock did not tick before the handler")
		}
		_ = c.WritePixel(0, 0, canvas.RGB{R: uint8(clk.Ticks())})
		return true
	})

	p := &recordingPresenter{}
	d, err := New(DefaultConfig().WithSize(2, 2), h, WithPresenter(p), WithClock(fixedClock()))
	if err != nil {
		t.Fatal(err)
	}

	d.Input().PressKey(gpucontext.KeySpace)
	for range 2 {
		if more, err := d.Step(); !more || err != nil {
			t.Fatalf("Step() = %v, %v", more, err)
		}
	}

	// The edge is seen exactly once because AdvanceFrame runs after the handler.
	if len(sawJustPressed) != 2 || !sawJustPressed[0] || sawJustPressed[1] {
		t.Errorf("just pressed per frame = %v, want [true false]", sawJustPressed)
	}
	if len(p.frames) != 2 || p.frames[0].R != 1 || p.frames[1].R != 2 {
		t.Errorf("presented frames = %v, want R=1 then R=2", p.frames)
	}
	if d.Frame() != 2 {
		t.Errorf("Frame() = %d, want 2", d.Frame())
	}
}

func TestStepStops(t *testing.T) {
	calls := 0
	h := HandlerFunc(func(*canvas.Canvas, *input.State, *clock.FrameClock) bool {
		calls++
		return calls < 3
	})
	p := &recordingPresenter{}
	d, _ := New(DefaultConfig().WithSize(1, 1), h, WithPresenter(p))

	for range 5 {
		_, _ = d.Step()
	}
	if calls != 3 {
		t.Errorf("handler calls = %d, want 3", calls)
	}
	if len(p.frames) != 2 {
		t.Errorf("presented = %d, want 2 (the stopping frame is not shown)", len(p.frames))
	}
}

func TestMaxFrames(t *testing.T) {
	h := HandlerFunc(func(*canvas.Canvas, *input.State, *clock.FrameClock) bool { return true })
	d, _ := New(DefaultConfig().WithSize(1, 1).WithMaxFrames(4), h)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if d.Frame() != 4 {
		t.Errorf("Frame() = %d, want 4", d.Frame())
	}
}

func TestRunPresenterError(t *testing.T) {
	boom := errors.New("boom")
	h := HandlerFunc(func(*canvas.Canvas, *input.State, *clock.FrameClock) bool { return true })
	d, _ := New(DefaultConfig().WithSize(1, 1), h, WithPresenter(&recordingPresenter{err: boom}))

	if err := d.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want boom", err)
	}
}

func TestRunContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := HandlerFunc(func(_ *canvas.Canvas, _ *input.State, clk *clock.FrameClock) bool {
		if clk.Ticks() == 3 {
			cancel()
		}
		return true
	})
	d, _ := New(DefaultConfig().WithSize(1, 1), h, WithFrameInterval(time.Millisecond))

	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if d.Frame() != 3 {
		t.Errorf("Frame() = %d, want 3", d.Frame())
	}
}

func TestResizeLockstep(t *testing.T) {
	h := HandlerFunc(func(*canvas.Canvas, *input.State, *clock.FrameClock) bool { return true })
	l := &sizeListener{}
	d, _ := New(DefaultConfig().WithSize(8, 8).WithClearColor(canvas.Green), h, WithResizeListener(l))

	if err := d.Resize(16, 4); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if w, h := d.Canvas().Size(); w != 16 || h != 4 {
		t.Errorf("canvas = %dx%d, want 16x4", w, h)
	}
	if l.width != 16 || l.height != 4 {
		t.Errorf("listener = %dx%d, want 16x4", l.width, l.height)
	}
	if got, _ := d.Canvas().ReadPixel(15, 3); got != canvas.Green {
		t.Errorf("resized canvas pixel = %v, want clear color", got)
	}
	if cfg := d.Config(); cfg.Width != 16 || cfg.Height != 4 {
		t.Errorf("Config() size = %dx%d, want 16x4", cfg.Width, cfg.Height)
	}

	if err := d.Resize(0, 4); !errors.Is(err, canvas.ErrInvalidDimensions) {
		t.Errorf("Resize(0, 4) error = %v, want ErrInvalidDimensions", err)
	}
	if l.width != 16 {
		t.Error("listener resized after a failed canvas resize")
	}
}

// resizeSource captures OnResize on top of a null event source.
type resizeSource struct {
	gpucontext.NullEventSource
	resize func(int, int)
	move   func(float64, float64)
}

func (r *resizeSource) OnResize(fn func(int, int))         { r.resize = fn }
func (r *resizeSource) OnMouseMove(fn func(x, y float64)) { r.move = fn }

func TestAttachAndPointerPixel(t *testing.T) {
	h := HandlerFunc(func(*canvas.Canvas, *input.State, *clock.FrameClock) bool { return true })
	d, _ := New(DefaultConfig().WithSize(64, 32), h)

	src := &resizeSource{}
	d.Attach(src)
	if src.resize == nil || src.move == nil {
		t.Fatal("Attach did not register callbacks")
	}

	src.resize(640, 320)
	src.move(320, 160)
	if x, y := d.PointerPixel(); x != 32 || y != 16 {
		t.Errorf("PointerPixel() = (%d, %d), want (32, 16)", x, y)
	}

	// Positions past the window edge are not clamped.
	src.move(700, -10)
	if x, y := d.PointerPixel(); x != 70 || y != -1 {
		t.Errorf("PointerPixel() = (%d, %d), want (70, -1)", x, y)
	}
}
