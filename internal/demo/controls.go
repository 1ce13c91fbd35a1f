package demo

import (
	"errors"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels"
	"github.com/gogpu/pixels/canvas"
	"github.com/gogpu/pixels/clock"
	"github.com/gogpu/pixels/hud"
	"github.com/gogpu/pixels/input"
	"github.com/gogpu/pixels/media"
)

// Default output paths.
const (
	DefaultScreenshotPath = "screenshot.png"
	DefaultGIFPath        = "recording.gif"
)

// ControlsOption configures Controls.
type ControlsOption func(*Controls)

// WithRecorder sets the GIF recorder. By default Controls creates one
// sized to the scene's canvas.
func WithRecorder(r *media.Recorder) ControlsOption {
	return func(c *Controls) {
		c.recorder = r
	}
}

// WithScreenshotPath sets where S saves the canvas.
func WithScreenshotPath(path string) ControlsOption {
	return func(c *Controls) {
		if path != "" {
			c.screenshotPath = path
		}
	}
}

// WithGIFPath sets where G saves the recording.
func WithGIFPath(path string) ControlsOption {
	return func(c *Controls) {
		if path != "" {
			c.gifPath = path
		}
	}
}

// WithScale sets the screenshot upscale factor.
func WithScale(scale int) ControlsOption {
	return func(c *Controls) {
		c.scale = max(scale, 1)
	}
}

// WithRecordAll records every frame instead of only frames with R held.
func WithRecordAll(on bool) ControlsOption {
	return func(c *Controls) {
		c.recordAll = on
	}
}

// WithOverlay draws the frame rate over each presented frame. Recorded
// frames never include the overlay.
func WithOverlay(o *hud.Overlay) ControlsOption {
	return func(c *Controls) {
		c.overlay = o
	}
}

// Controls wraps a scene with the shared demo key bindings:
//
//	Esc, Q  quit (Ctrl+C too)
//	S       save a screenshot
//	R       record frames while held
//	G       save the recording as a GIF and clear it
//	C       clear the recording
//
// Failures to save are logged and do not stop the scene.
type Controls struct {
	scene    Scene
	recorder *media.Recorder
	overlay  *hud.Overlay

	screenshotPath string
	gifPath        string
	scale          int
	recordAll      bool
}

// NewControls wraps scene.
func NewControls(scene Scene, opts ...ControlsOption) (*Controls, error) {
	c := &Controls{
		scene:          scene,
		screenshotPath: DefaultScreenshotPath,
		gifPath:        DefaultGIFPath,
		scale:          1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.recorder == nil {
		cfg := scene.Config()
		r, err := media.NewRecorder(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		c.recorder = r
	}
	return c, nil
}

// Scene returns the wrapped scene.
func (c *Controls) Scene() Scene { return c.scene }

// Recorder returns the GIF recorder.
func (c *Controls) Recorder() *media.Recorder { return c.recorder }

// Help lists every key binding, the scene's first.
func (c *Controls) Help() []string {
	return append(c.scene.Help(),
		"S: screenshot",
		"R: record frames",
		"G: save gif",
		"C: clear frames",
		"Esc/Q: quit",
	)
}

// OnFrame implements app.Handler.
func (c *Controls) OnFrame(cv *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool {
	if quit(in) {
		pixels.Logger().Info("demo: quit requested")
		return false
	}
	if !c.scene.OnFrame(cv, in, clk) {
		return false
	}

	if c.recordAll || in.KeyPressed(gpucontext.KeyR) {
		if err := c.recorder.Record(cv.Snapshot()); err != nil {
			pixels.Logger().Warn("demo: record frame", "err", err)
		} else {
			pixels.Logger().Debug("demo: recorded frame", "frames", c.recorder.Len())
		}
	}
	if in.KeyJustPressed(gpucontext.KeyS) {
		if err := media.SavePNG(c.screenshotPath, cv.Snapshot(), c.scale); err != nil {
			pixels.Logger().Warn("demo: screenshot", "path", c.screenshotPath, "err", err)
		}
	}
	if in.KeyJustPressed(gpucontext.KeyG) {
		c.saveGIF()
	}
	if in.KeyJustPressed(gpucontext.KeyC) {
		c.recorder.Clear()
		pixels.Logger().Info("demo: cleared frames")
	}

	if c.overlay != nil {
		c.overlay.DrawFPS(cv, clk)
	}
	return true
}

func quit(in *input.State) bool {
	if in.KeyJustPressed(gpucontext.KeyC) && in.ModifierPressed(input.Ctrl) {
		return true
	}
	return in.KeyJustPressed(gpucontext.KeyEscape) || in.KeyJustPressed(gpucontext.KeyQ)
}

func (c *Controls) saveGIF() {
	err := c.recorder.Save(c.gifPath)
	switch {
	case errors.Is(err, media.ErrNoFrames):
		pixels.Logger().Warn("demo: nothing recorded, hold R first")
		return
	case err != nil:
		pixels.Logger().Warn("demo: save gif", "path", c.gifPath, "err", err)
		return
	}
	c.recorder.Clear()
}
