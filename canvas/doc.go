// Package canvas provides the in-memory RGBA pixel surface that
// application code draws into every frame.
//
// The buffer is row-major with 4 bytes per pixel (R, G, B, A), not
// premultiplied. Integer-channel operations accept the whole 0..255 range;
// operations taking normalized float channels reject values outside [0, 1]
// with ErrInvalidColorComponent. Coordinates outside the canvas fail with
// ErrOutOfBounds and never write anything.
//
// Canvas also implements draw.Image, so standard image/draw operations and
// golang.org/x/image/font drawers can target it directly.
package canvas
