package media

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixels"
	"github.com/gogpu/pixels/canvas"
)

// Media errors.
var (
	// ErrInvalidScale is returned when an upscale factor is below 1.
	ErrInvalidScale = errors.New("media: scale must be at least 1")

	// ErrFrameSize is returned when a recorded frame does not match the
	// recorder dimensions.
	ErrFrameSize = errors.New("media: frame size mismatch")

	// ErrNoFrames is returned when encoding a recorder that holds no frames.
	ErrNoFrames = errors.New("media: no frames recorded")
)

// EncodePNG writes snap to w as a PNG. Each canvas pixel becomes a
// scale×scale block, so small canvases stay crisp when viewed.
func EncodePNG(w io.Writer, snap canvas.Snapshot, scale int) error {
	img, err := upscale(snap, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("media: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes snap to a PNG file at path. See EncodePNG.
func SavePNG(path string, snap canvas.Snapshot, scale int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("media: create file: %w", err)
	}

	if err := EncodePNG(f, snap, scale); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("media: close file: %w", err)
	}

	pixels.Logger().Info("media: saved screenshot",
		"path", path, "width", snap.Width, "height", snap.Height, "scale", scale)
	return nil
}

// upscale returns snap as an image enlarged by scale with nearest-neighbour
// sampling. A scale of 1 returns the snapshot pixels without copying.
func upscale(snap canvas.Snapshot, scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	src := snap.Image()
	if scale == 1 {
		return src, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, snap.Width*scale, snap.Height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
