// Package media encodes canvas snapshots to image files: single PNG
// screenshots with optional nearest-neighbour upscaling, and animated GIFs
// built from recorded frames.
package media
