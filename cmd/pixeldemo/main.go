// Command pixeldemo runs the pixels demo scenes, headless to write
// screenshots and GIFs, or interactively in a truecolor terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/gogpu/pixels"
	"github.com/gogpu/pixels/app"
	"github.com/gogpu/pixels/canvas"
	"github.com/gogpu/pixels/clock"
	"github.com/gogpu/pixels/hud"
	"github.com/gogpu/pixels/input"
	"github.com/gogpu/pixels/internal/demo"
	"github.com/gogpu/pixels/internal/tty"
	"github.com/gogpu/pixels/media"
	"github.com/gogpu/pixels/present"
)

// terminalInterval paces -term runs whose config leaves frames unpaced.
const terminalInterval = 33 * time.Millisecond

type options struct {
	configPath string
	scene      string
	frames     int
	pngPath    string
	gifPath    string
	scale      int
	term       bool
	hud        bool
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config applied over the scene defaults")
	flag.StringVar(&opts.scene, "scene", "bounce", "scene to run: "+strings.Join(demo.Names(), ", "))
	flag.IntVar(&opts.frames, "frames", 240, "frames to run headless (0 uses max_frames from the config)")
	flag.StringVar(&opts.pngPath, "png", "", "screenshot path (headless: written after the last frame)")
	flag.StringVar(&opts.gifPath, "gif", "", "GIF path (headless: every frame is recorded)")
	flag.IntVar(&opts.scale, "scale", 1, "screenshot upscale factor")
	flag.BoolVar(&opts.term, "term", false, "run interactively in the terminal")
	flag.BoolVar(&opts.hud, "hud", false, "draw the frame rate")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("pixeldemo: %v", err)
	}
}

func run(opts options) error {
	setupLogging(opts)

	scene, err := demo.Lookup(opts.scene)
	if err != nil {
		return err
	}
	cfg := scene.Config()
	if opts.configPath != "" {
		if cfg, err = app.LoadConfigOver(cfg, opts.configPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.term {
		return runTerminal(ctx, scene, cfg, opts)
	}
	return runHeadless(ctx, scene, cfg, opts)
}

// setupLogging installs a text logger on stderr. In terminal mode the
// screen belongs to the scene, so logs are kept only when stderr is
// redirected.
func setupLogging(opts options) {
	if opts.term && term.IsTerminal(int(os.Stderr.Fd())) {
		return
	}
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	pixels.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func controlOptions(opts options, rec *media.Recorder) ([]demo.ControlsOption, func(), error) {
	ctlOpts := []demo.ControlsOption{
		demo.WithRecorder(rec),
		demo.WithScreenshotPath(opts.pngPath),
		demo.WithGIFPath(opts.gifPath),
		demo.WithScale(opts.scale),
	}
	if !opts.hud {
		return ctlOpts, func() {}, nil
	}
	o, err := hud.New(hud.WithColor(canvas.White.NRGBA()), hud.WithPosition(2, 2))
	if err != nil {
		return nil, nil, err
	}
	return append(ctlOpts, demo.WithOverlay(o)), func() { _ = o.Close() }, nil
}

func runHeadless(ctx context.Context, scene demo.Scene, cfg app.Config, opts options) error {
	if opts.frames > 0 {
		cfg = cfg.WithMaxFrames(opts.frames)
	}
	if cfg.MaxFrames == 0 {
		return errors.New("headless run needs -frames or max_frames")
	}

	var bar *progressbar.ProgressBar
	rec, err := media.NewRecorder(cfg.Width, cfg.Height, media.WithProgress(func(done, _ int) {
		if bar != nil {
			_ = bar.Set(done)
		}
	}))
	if err != nil {
		return err
	}
	ctlOpts, closeHUD, err := controlOptions(opts, rec)
	if err != nil {
		return err
	}
	defer closeHUD()
	ctl, err := demo.NewControls(scene, append(ctlOpts, demo.WithRecordAll(opts.gifPath != ""))...)
	if err != nil {
		return err
	}

	var frame uint64
	handler := app.HandlerFunc(func(c *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool {
		scene.Autoplay(frame, in)
		frame++
		return ctl.OnFrame(c, in, clk)
	})
	d, err := app.New(cfg, handler, app.WithResizeListener(rec), app.WithFrameInterval(0))
	if err != nil {
		return err
	}
	if err := d.Run(ctx); err != nil {
		return err
	}

	if opts.pngPath != "" {
		if err := media.SavePNG(opts.pngPath, d.Canvas().Snapshot(), opts.scale); err != nil {
			return err
		}
	}
	if opts.gifPath != "" && rec.Len() > 0 {
		bar = progressbar.NewOptions(rec.Len(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("encoding "+opts.gifPath),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(50*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Close()
		if err := rec.Save(opts.gifPath); err != nil {
			return err
		}
		_ = bar.Finish()
	}

	pixels.Logger().Info("pixeldemo: done",
		"scene", opts.scene, "frames", d.Frame(), "fps", hud.FPSText(d.Clock()))
	return nil
}

func runTerminal(ctx context.Context, scene demo.Scene, cfg app.Config, opts options) error {
	inFd, outFd := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return errors.New("-term needs an interactive terminal")
	}
	cols, rows, err := term.GetSize(outFd)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if cfg.FrameInterval == 0 {
		cfg = cfg.WithFrameInterval(terminalInterval)
	}

	rec, err := media.NewRecorder(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	ctlOpts, closeHUD, err := controlOptions(opts, rec)
	if err != nil {
		return err
	}
	defer closeHUD()
	ctl, err := demo.NewControls(scene, ctlOpts...)
	if err != nil {
		return err
	}
	for _, line := range ctl.Help() {
		fmt.Println(line)
	}

	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer term.Restore(inFd, oldState)

	_, _ = io.WriteString(os.Stdout, ansi.SetModeMouseAnyEvent+ansi.SetModeMouseExtSgr)
	defer io.WriteString(os.Stdout, ansi.ResetModeMouseExtSgr+ansi.ResetModeMouseAnyEvent)

	screen := present.NewTerminal(os.Stdout, present.WithAltScreen(), present.WithFit(cols, rows))
	defer screen.Close()

	var (
		d      *app.Driver
		feeder *tty.Feeder
		dec    = tty.NewDecoder()
		keys   = readInput(os.Stdin)
	)
	handler := app.HandlerFunc(func(c *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool {
		if w, h, err := term.GetSize(outFd); err == nil && (w != cols || h != rows) {
			cols, rows = w, h
			screen.SetFit(cols, rows)
		}
		if vc, vr := screen.Viewport(); vc > 0 && vr > 0 {
			d.SetArea(float64(vc), float64(vr))
		}

		feeder.BeginFrame()
	drain:
		for {
			select {
			case b, ok := <-keys:
				if !ok {
					return false
				}
				feeder.Feed(dec.Decode(b))
			default:
				break drain
			}
		}
		return ctl.OnFrame(c, in, clk)
	})

	d, err = app.New(cfg, handler, app.WithPresenter(screen), app.WithResizeListener(rec))
	if err != nil {
		return err
	}
	feeder = tty.NewFeeder(d.Input())
	if life, ok := scene.(*demo.Life); ok {
		life.PixelAt = func(*input.State) (int, int) { return d.PointerPixel() }
	}
	return d.Run(ctx)
}

// readInput forwards stdin chunks to the frame loop. The channel closes
// when stdin does.
func readInput(r io.Reader) <-chan []byte {
	ch := make(chan []byte, 16)
	go func() {
		defer close(ch)
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				ch <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
