package clock

import "time"

// HistorySize is the number of frame durations averaged by RollingAverage.
const HistorySize = 100

// Option configures a FrameClock during creation.
type Option func(*FrameClock)

// WithNow replaces the time source. Tests use it to drive the clock
// deterministically.
func WithNow(now func() time.Time) Option {
	return func(c *FrameClock) {
		if now != nil {
			c.now = now
		}
	}
}

// FrameClock measures frame durations and reports a rolling average over
// the last HistorySize frames.
//
// The history starts zero-filled, so until HistorySize ticks have happened
// the average underestimates the true frame time and FPS reads high.
//
// FrameClock is not safe for concurrent use; it belongs to the frame loop.
type FrameClock struct {
	now   func() time.Time
	start time.Time
	last  time.Time

	history [HistorySize]float64
	cursor  int
	sum     float64
	delta   float64
	ticks   uint64
}

// New creates a FrameClock whose start and last-tick instants are the
// current time.
func New(opts ...Option) *FrameClock {
	c := &FrameClock{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.start = c.now()
	c.last = c.start
	return c
}

// Tick records the time elapsed since the previous tick (or since New) and
// returns it in seconds. Call it once at the start of every frame.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	dt := now.Sub(c.last).Seconds()

	c.sum += dt - c.history[c.cursor]
	c.history[c.cursor] = dt
	c.cursor = (c.cursor + 1) % HistorySize
	c.last = now
	c.delta = dt
	c.ticks++
	return dt
}

// RollingAverage returns the mean of the last HistorySize frame durations
// in seconds.
func (c *FrameClock) RollingAverage() float64 {
	return c.sum / HistorySize
}

// FPS returns the reciprocal of RollingAverage, or 0 before the first
// non-zero frame duration has been recorded.
func (c *FrameClock) FPS() float64 {
	avg := c.RollingAverage()
	if avg <= 0 {
		return 0
	}
	return 1 / avg
}

// TimeSinceStart returns the seconds elapsed since New.
func (c *FrameClock) TimeSinceStart() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Delta returns the duration of the most recent frame in seconds.
func (c *FrameClock) Delta() float64 {
	return c.delta
}

// LastTick returns the instant of the most recent Tick, which is the start
// of the current frame.
func (c *FrameClock) LastTick() time.Time {
	return c.last
}

// Ticks returns the number of Tick calls so far.
func (c *FrameClock) Ticks() uint64 {
	return c.ticks
}
