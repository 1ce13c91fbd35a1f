// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package present hands finished canvas frames to something that shows
// them.
//
// Two presenters are provided:
//
//   - Texture uploads the canvas into a GPU texture through the
//     gpucontext texture interfaces, so any host that implements
//     gpucontext.TextureDrawer can display it.
//   - Terminal renders the canvas as truecolor half-block characters on
//     an ANSI terminal.
//
// Both satisfy app.Presenter.
//
// # Integration
//
//	tex, err := present.NewTexture(dc.AsTextureDrawer())
//	if err != nil {
//	    return err
//	}
//	defer tex.Close()
//	d, err := app.New(cfg, game, app.WithPresenter(tex))
package present
