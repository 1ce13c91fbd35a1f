package demo

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/pixels/app"
	"github.com/gogpu/pixels/input"
)

// ErrUnknownScene is returned by Lookup for names not in Names.
var ErrUnknownScene = errors.New("demo: unknown scene")

// Scene is a runnable demo program.
type Scene interface {
	app.Handler

	// Config returns the window and canvas settings the scene wants.
	Config() app.Config

	// Autoplay scripts input for the given frame of a headless run. It is
	// called at the start of each frame, before OnFrame.
	Autoplay(frame uint64, in *input.State)

	// Help lists the scene's own key bindings.
	Help() []string
}

var scenes = map[string]func() Scene{
	"alpha":  func() Scene { return NewAlpha() },
	"life":   func() Scene { return NewLife() },
	"bounce": func() Scene { return NewBounce() },
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns a fresh instance of the named scene.
func Lookup(name string) (Scene, error) {
	mk, ok := scenes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}
