// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels"
	"github.com/gogpu/pixels/canvas"
)

// Presenter errors.
var (
	// ErrNilDrawer is returned when a nil TextureDrawer is passed.
	ErrNilDrawer = errors.New("present: nil TextureDrawer")

	// ErrNoTextureCreator is returned when the drawer has no texture creator.
	ErrNoTextureCreator = errors.New("present: drawer has no TextureCreator")

	// ErrSizeMismatch is returned when a pixel buffer does not hold exactly
	// width*height*4 bytes.
	ErrSizeMismatch = errors.New("present: pixel buffer size mismatch")

	// ErrClosed is returned when presenting through a closed presenter.
	ErrClosed = errors.New("present: presenter is closed")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// TextureOption configures a Texture presenter during creation.
type TextureOption func(*Texture)

// WithOffset draws the canvas with its top-left corner at (x, y) instead
// of the origin.
func WithOffset(x, y float32) TextureOption {
	return func(t *Texture) {
		t.x, t.y = x, y
	}
}

// Texture presents a canvas by uploading its pixels into a GPU texture and
// drawing that texture through a gpucontext.TextureDrawer.
//
// The texture is created lazily on the first Present and recreated when
// the canvas size changes. Between size changes the pixels are uploaded
// in place when the texture implements gpucontext.TextureUpdater.
//
// Canvas pixels are non-premultiplied, which is also what
// NewTextureFromRGBA expects, so no conversion takes place.
//
// Texture is NOT safe for concurrent use.
type Texture struct {
	drawer  gpucontext.TextureDrawer
	texture gpucontext.Texture
	width   int
	height  int
	x, y    float32
	closed  bool
}

// NewTexture creates a Texture presenter drawing into dc. The dc typically
// comes from the host's per-frame draw context.
func NewTexture(dc gpucontext.TextureDrawer, opts ...TextureOption) (*Texture, error) {
	if dc == nil {
		return nil, ErrNilDrawer
	}
	t := &Texture{drawer: dc}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Present uploads c and draws it.
func (t *Texture) Present(c *canvas.Canvas) error {
	if t.closed {
		return ErrClosed
	}
	width, height := c.Size()
	data := c.Pixels()
	if len(data) != c.Capacity() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(data), c.Capacity())
	}

	if t.texture != nil && (t.width != width || t.height != height) {
		pixels.Logger().Debug("present: canvas resized, recreating texture",
			"from_width", t.width, "from_height", t.height,
			"width", width, "height", height)
		t.release()
	}

	if t.texture == nil {
		if err := t.create(width, height, data); err != nil {
			return err
		}
	} else if err := t.upload(width, height, data); err != nil {
		return err
	}

	return t.drawer.DrawTexture(t.texture, t.x, t.y)
}

// Close destroys the texture. Close is idempotent.
func (t *Texture) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.release()
	t.drawer = nil
	return nil
}

func (t *Texture) create(width, height int, data []byte) error {
	creator := t.drawer.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(width, height, data)
	if err != nil {
		pixels.Logger().Warn("present: texture creation failed",
			"width", width, "height", height, "err", err)
		return fmt.Errorf("present: NewTextureFromRGBA failed: %w", err)
	}
	t.texture, t.width, t.height = tex, width, height
	return nil
}

// upload refreshes the existing texture. Textures that cannot be updated
// in place are replaced.
func (t *Texture) upload(width, height int, data []byte) error {
	updater, ok := t.texture.(gpucontext.TextureUpdater)
	if !ok {
		t.release()
		return t.create(width, height, data)
	}
	if err := updater.UpdateData(data); err != nil {
		return fmt.Errorf("present: texture update failed: %w", err)
	}
	return nil
}

func (t *Texture) release() {
	if t.texture == nil {
		return
	}
	if destroyer, ok := t.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	t.texture = nil
}
