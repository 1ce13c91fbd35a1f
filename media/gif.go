package media

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixels"
	"github.com/gogpu/pixels/canvas"
	"github.com/gogpu/pixels/internal/parallel"
)

// DefaultDelay is the frame delay used when none is configured.
const DefaultDelay = 30 * time.Millisecond

// RecorderOption configures a Recorder during creation.
type RecorderOption func(*Recorder)

// WithDelay sets the display time of every frame. GIF stores delays in
// hundredths of a second; shorter delays round up to one hundredth.
func WithDelay(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		r.delay = max(int(d/(10*time.Millisecond)), 1)
	}
}

// WithLoopCount sets how often the animation repeats: 0 loops forever,
// -1 plays it once.
func WithLoopCount(n int) RecorderOption {
	return func(r *Recorder) {
		r.loop = n
	}
}

// WithPalette sets the palette frames are dithered into. The default is
// palette.Plan9.
func WithPalette(p color.Palette) RecorderOption {
	return func(r *Recorder) {
		if len(p) > 0 {
			r.palette = p
		}
	}
}

// WithProgress registers fn to be called after each frame is quantized
// during Encode, with the number of frames done and the total. Calls are
// serialized and done increases by one each time.
func WithProgress(fn func(done, total int)) RecorderOption {
	return func(r *Recorder) {
		r.progress = fn
	}
}

// WithWorkers sets how many frames Encode quantizes concurrently.
// Zero or negative uses GOMAXPROCS, which is the default.
func WithWorkers(n int) RecorderOption {
	return func(r *Recorder) {
		r.workers = n
	}
}

// Recorder accumulates canvas snapshots and encodes them as an animated
// GIF. Frames are kept as full-color snapshots and quantized only when
// encoding.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	frames        []canvas.Snapshot

	delay    int // hundredths of a second
	loop     int
	palette  color.Palette
	progress func(done, total int)
	workers  int
}

// NewRecorder creates an empty recorder for frames of width×height pixels.
func NewRecorder(width, height int, opts ...RecorderOption) (*Recorder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", canvas.ErrInvalidDimensions, width, height)
	}
	r := &Recorder{
		width:   width,
		height:  height,
		delay:   int(DefaultDelay / (10 * time.Millisecond)),
		palette: palette.Plan9,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Size returns the frame dimensions the recorder accepts.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// Record appends one frame. The snapshot is retained, not copied; it must
// not be modified afterwards.
func (r *Recorder) Record(snap canvas.Snapshot) error {
	if snap.Width != r.width || snap.Height != r.height {
		return fmt.Errorf("%w: got %dx%d, recorder is %dx%d",
			ErrFrameSize, snap.Width, snap.Height, r.width, r.height)
	}
	r.frames = append(r.frames, snap)
	return nil
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Clear drops all recorded frames.
func (r *Recorder) Clear() {
	clear(r.frames)
	r.frames = r.frames[:0]
}

// Resize changes the accepted frame size and drops all recorded frames,
// since a GIF holds frames of a single size. Non-positive sizes are
// ignored.
func (r *Recorder) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.Clear()
}

// Encode writes the recorded frames to w as an animated GIF.
func (r *Recorder) Encode(w io.Writer) error {
	total := len(r.frames)
	if total == 0 {
		return ErrNoFrames
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, total),
		Delay:     make([]int, total),
		LoopCount: r.loop,
	}
	bounds := image.Rect(0, 0, r.width, r.height)

	pool := parallel.NewPool(min(r.workers, total))
	defer pool.Close()

	var mu sync.Mutex
	done := 0
	pool.ForEach(total, func(i int) {
		frame := image.NewPaletted(bounds, r.palette)
		xdraw.FloydSteinberg.Draw(frame, bounds, r.frames[i].Image(), image.Point{})
		anim.Image[i] = frame
		anim.Delay[i] = r.delay

		if r.progress != nil {
			mu.Lock()
			done++
			r.progress(done, total)
			mu.Unlock()
		}
	})

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("media: encode GIF: %w", err)
	}
	return nil
}

// Save writes the recorded frames to a GIF file at path.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("media: create file: %w", err)
	}

	if err := r.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("media: close file: %w", err)
	}

	pixels.Logger().Info("media: saved animation",
		"path", path, "frames", len(r.frames), "width", r.width, "height", r.height)
	return nil
}
