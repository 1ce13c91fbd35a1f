// Package hud draws small text overlays, such as a frame-rate readout,
// onto a canvas.
package hud
