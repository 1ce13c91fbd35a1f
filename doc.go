// Package pixels is a minimal real-time raster framework.
//
// # Overview
//
// Application code draws into an in-memory RGBA pixel surface every frame,
// queries keyboard and pointer state with frame-accurate "just pressed" and
// "just released" edges, and reads frame timing statistics. Windows, GPU
// surfaces and event loops belong to the host; pixels only consumes their
// events and hands them canvas snapshots.
//
// # Packages
//
//   - canvas: the pixel surface and its alpha compositing
//   - input: double-buffered key, button and modifier state
//   - clock: rolling frame-time estimator
//   - app: per-frame driver that ties the three together
//   - present: texture and terminal presenters
//   - media: PNG screenshots and GIF recording
//   - hud: FPS text overlay
//
// # Quick Start
//
//	d, err := app.New(app.DefaultConfig().WithSize(256, 256),
//	    app.HandlerFunc(func(c *canvas.Canvas, in *input.State, clk *clock.FrameClock) bool {
//	        c.Clear()
//	        _ = c.WritePixelBlend(10, 10, color.NRGBA{R: 255, A: 128})
//	        return !in.KeyJustPressed(gpucontext.KeyEscape)
//	    }))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = d.Run(context.Background())
//
// # Logging
//
// The root package only carries the shared logger; see [SetLogger].
package pixels
