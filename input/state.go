package input

import "github.com/gogpu/gpucontext"

// State is the double-buffered input state for one frame-stepped
// application.
//
// Host events mutate only the current generation. Queries compare the
// current generation with the previous one, which is rewritten only by
// AdvanceFrame. AdvanceFrame must run exactly once per frame, after the
// frame's queries and before the next frame's events; a second call in
// the same frame hides that frame's edges.
//
// State is NOT safe for concurrent use. Deliver host events on the
// goroutine that runs the frame loop.
type State struct {
	keys      edgeSet[gpucontext.Key]
	buttons   edgeSet[gpucontext.MouseButton]
	modifiers edgeSet[Modifier]

	pointerX, pointerY float64
	pointerKnown       bool
	pointerDX          float64
	pointerDY          float64
	scrollDX           float64
	scrollDY           float64
	onSurface          bool
}

// New creates a State with nothing pressed.
func New() *State {
	return &State{
		keys:      newEdgeSet[gpucontext.Key](),
		buttons:   newEdgeSet[gpucontext.MouseButton](),
		modifiers: newEdgeSet[Modifier](),
	}
}

// AdvanceFrame closes the frame: every current set is copied into its
// previous generation and the per-frame deltas return to zero.
func (s *State) AdvanceFrame() {
	s.keys.snapshot()
	s.buttons.snapshot()
	s.modifiers.snapshot()
	s.pointerDX, s.pointerDY = 0, 0
	s.scrollDX, s.scrollDY = 0, 0
}

// ReleaseAll empties the current key, button and modifier sets, as a host
// does when the window loses focus and release events will never arrive.
// Anything held at the end of the previous frame reads as just released.
func (s *State) ReleaseAll() {
	s.keys.releaseAll()
	s.buttons.releaseAll()
	s.modifiers.releaseAll()
}

// Keyboard

// PressKey marks key as held in the current frame.
func (s *State) PressKey(key gpucontext.Key) { s.keys.press(key) }

// ReleaseKey marks key as no longer held.
func (s *State) ReleaseKey(key gpucontext.Key) { s.keys.release(key) }

// KeyPressed reports whether key is held, repeats included.
func (s *State) KeyPressed(key gpucontext.Key) bool { return s.keys.pressed(key) }

// KeyJustPressed reports whether key is held now but was not at the end
// of the previous frame.
func (s *State) KeyJustPressed(key gpucontext.Key) bool { return s.keys.justPressed(key) }

// KeyJustReleased reports whether key was held at the end of the previous
// frame but is not now.
func (s *State) KeyJustReleased(key gpucontext.Key) bool { return s.keys.justReleased(key) }

// HeldKeys returns the keys currently held, in ascending order.
func (s *State) HeldKeys() []gpucontext.Key { return s.keys.held() }

// Pointer buttons

// PressButton marks button as held in the current frame.
func (s *State) PressButton(button gpucontext.MouseButton) { s.buttons.press(button) }

// ReleaseButton marks button as no longer held.
func (s *State) ReleaseButton(button gpucontext.MouseButton) { s.buttons.release(button) }

// ButtonPressed reports whether button is held.
func (s *State) ButtonPressed(button gpucontext.MouseButton) bool {
	return s.buttons.pressed(button)
}

// ButtonJustPressed reports whether button went down this frame.
func (s *State) ButtonJustPressed(button gpucontext.MouseButton) bool {
	return s.buttons.justPressed(button)
}

// ButtonJustReleased reports whether button went up this frame.
func (s *State) ButtonJustReleased(button gpucontext.MouseButton) bool {
	return s.buttons.justReleased(button)
}

// HeldButtons returns the buttons currently held, in ascending order.
func (s *State) HeldButtons() []gpucontext.MouseButton { return s.buttons.held() }

// Modifiers

// SetModifiers replaces the current modifier set wholesale.
func (s *State) SetModifiers(mods ...Modifier) { s.modifiers.replace(mods) }

// SetModifierState replaces the current modifier set with a host bitmask
// snapshot.
func (s *State) SetModifierState(mods gpucontext.Modifiers) {
	s.modifiers.replace(ModifiersFrom(mods))
}

// ModifierPressed reports whether mod is held.
func (s *State) ModifierPressed(mod Modifier) bool { return s.modifiers.pressed(mod) }

// ModifierJustPressed reports whether mod went down this frame.
func (s *State) ModifierJustPressed(mod Modifier) bool { return s.modifiers.justPressed(mod) }

// ModifierJustReleased reports whether mod went up this frame.
func (s *State) ModifierJustReleased(mod Modifier) bool { return s.modifiers.justReleased(mod) }

// Pointer

// SetPointerPosition records the pointer position in host units.
// It does not change OnSurface.
func (s *State) SetPointerPosition(x, y float64) {
	s.pointerX, s.pointerY = x, y
	s.pointerKnown = true
}

// PointerPosition returns the last known pointer position in host units.
func (s *State) PointerPosition() (x, y float64) {
	return s.pointerX, s.pointerY
}

// SetOnSurface records whether the pointer is inside the drawable area.
// Hosts drive it from enter/leave events; it is never derived from the
// position, because some hosts keep reporting positions outside the
// window while a button is held.
func (s *State) SetOnSurface(on bool) {
	s.onSurface = on
}

// OnSurface reports whether the pointer is inside the drawable area.
func (s *State) OnSurface() bool {
	return s.onSurface
}

// AccumulatePointerDelta adds device motion to this frame's pointer delta.
func (s *State) AccumulatePointerDelta(dx, dy float64) {
	s.pointerDX += dx
	s.pointerDY += dy
}

// PointerDelta returns the pointer motion summed over this frame.
func (s *State) PointerDelta() (dx, dy float64) {
	return s.pointerDX, s.pointerDY
}

// AccumulateScrollDelta adds scroll motion to this frame's scroll delta.
func (s *State) AccumulateScrollDelta(dx, dy float64) {
	s.scrollDX += dx
	s.scrollDY += dy
}

// ScrollDelta returns the scroll motion summed over this frame.
func (s *State) ScrollDelta() (dx, dy float64) {
	return s.scrollDX, s.scrollDY
}

// movePointer sets the position and, when an earlier position is known,
// adds the difference to the pointer delta. Used by hosts that report
// only absolute positions.
func (s *State) movePointer(x, y float64) {
	if s.pointerKnown {
		s.AccumulatePointerDelta(x-s.pointerX, y-s.pointerY)
	}
	s.SetPointerPosition(x, y)
}
