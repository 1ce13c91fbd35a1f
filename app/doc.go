// Package app runs a frame loop over a canvas, an input state and a frame
// clock.
//
// A Driver calls the user Handler once per frame and hands the result to
// its presenters. It does not open windows: a host either calls Step from
// its own redraw callback, or Run drives the loop directly, which suits
// headless rendering and terminals.
//
// # Quick Start
//
//	cfg := app.DefaultConfig().WithSize(64, 64)
//	d, err := app.New(cfg, app.HandlerFunc(func(c *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool {
//		c.Clear()
//		_ = c.WritePixel(32, 32, canvas.White)
//		return !in.KeyJustPressed(gpucontext.KeyEscape)
//	}), app.WithPresenter(present.NewTerminal(os.Stdout)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := d.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// # Configuration
//
// Config can be built in code with DefaultConfig and its With methods, or
// loaded from YAML with LoadConfig:
//
//	title: life
//	width: 128
//	height: 96
//	clear_color: {r: 16, g: 16, b: 24}
//	frame_interval: 16ms
package app
