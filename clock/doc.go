// Package clock provides FrameClock, a frame timer that keeps a ring
// buffer of recent frame durations and reports their rolling average,
// frames per second and the time since start.
//
// Basic usage:
//
//	clk := clock.New()
//	for running {
//		dt := clk.Tick()
//		update(dt)
//		fmt.Printf("%.1f fps\n", clk.FPS())
//	}
package clock
