package input

import (
	"math"

	"github.com/gogpu/gpucontext"
)

// PixelAt maps a pointer position to the canvas pixel under it:
//
//	floor(p / area * canvas)
//
// per axis. Position and area must use the same units. The result is not
// clamped: while a button is held the host may report positions past the
// window edge, so callers validate the pixel before touching a canvas. A
// non-positive area yields (-1, -1), which lies outside every canvas.
func PixelAt(px, py, areaW, areaH float64, canvasW, canvasH int) (x, y int) {
	if areaW <= 0 || areaH <= 0 {
		return -1, -1
	}
	x = int(math.Floor(px / areaW * float64(canvasW)))
	y = int(math.Floor(py / areaH * float64(canvasH)))
	return x, y
}

// PointerPixel maps the current pointer position onto a canvasW×canvasH
// canvas shown in a host area of areaW×areaH. See PixelAt.
func (s *State) PointerPixel(areaW, areaH float64, canvasW, canvasH int) (x, y int) {
	return PixelAt(s.pointerX, s.pointerY, areaW, areaH, canvasW, canvasH)
}

// PointerPixelIn maps the pointer using the window's client size as the
// host area. gpucontext reports pointer positions and window sizes in the
// same logical units, so no scale factor is applied.
func (s *State) PointerPixelIn(wp gpucontext.WindowProvider, canvasW, canvasH int) (x, y int) {
	w, h := wp.Size()
	return s.PointerPixel(float64(w), float64(h), canvasW, canvasH)
}
