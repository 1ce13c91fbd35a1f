package tty

import (
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels/input"
)

func TestFeederTapLasts(t *testing.T) {
	s := input.New()
	f := NewFeeder(s)

	f.BeginFrame()
	f.Apply(Event{Kind: KeyTap, Key: gpucontext.KeyS, Mods: gpucontext.ModShift})
	if !s.KeyJustPressed(gpucontext.KeyS) || !s.ModifierPressed(input.Shift) {
		t.Fatal("tap should read as just pressed with Shift")
	}
	s.AdvanceFrame()

	f.BeginFrame()
	if s.KeyPressed(gpucontext.KeyS) || !s.KeyJustReleased(gpucontext.KeyS) {
		t.Error("tap should release at the next frame")
	}
	if s.ModifierPressed(input.Shift) {
		t.Error("tap modifiers should release at the next frame")
	}
}

func TestFeederRepeatHolds(t *testing.T) {
	s := input.New()
	f := NewFeeder(s)

	f.BeginFrame()
	f.Apply(Event{Kind: KeyTap, Key: gpucontext.KeySpace})
	s.AdvanceFrame()

	f.BeginFrame()
	f.Apply(Event{Kind: KeyTap, Key: gpucontext.KeySpace})
	if !s.KeyPressed(gpucontext.KeySpace) {
		t.Fatal("repeat should keep the key held")
	}
	if s.KeyJustPressed(gpucontext.KeySpace) || s.KeyJustReleased(gpucontext.KeySpace) {
		t.Error("repeat should not produce edges")
	}
}

func TestFeederMouse(t *testing.T) {
	s := input.New()
	f := NewFeeder(s)

	f.Feed([]Event{
		{Kind: MouseMove, Col: 2, Row: 1},
		{Kind: MouseDown, Button: gpucontext.MouseButtonLeft, Col: 5, Row: 1},
		{Kind: Wheel, Col: 5, Row: 1, Scroll: -1},
	})
	if !s.OnSurface() {
		t.Error("mouse events should set OnSurface")
	}
	if x, y := s.PointerPosition(); x != 5.5 || y != 1.5 {
		t.Errorf("PointerPosition() = (%v, %v), want (5.5, 1.5)", x, y)
	}
	if dx, dy := s.PointerDelta(); dx != 3 || dy != 0 {
		t.Errorf("PointerDelta() = (%v, %v), want (3, 0)", dx, dy)
	}
	if !s.ButtonJustPressed(gpucontext.MouseButtonLeft) {
		t.Error("left should be just pressed")
	}
	if _, dy := s.ScrollDelta(); dy != -1 {
		t.Errorf("ScrollDelta() dy = %v, want -1", dy)
	}

	s.AdvanceFrame()
	f.BeginFrame()
	if !s.ButtonPressed(gpucontext.MouseButtonLeft) {
		t.Error("buttons are level triggered and survive BeginFrame")
	}
	f.Apply(Event{Kind: MouseUp, Button: gpucontext.MouseButtonLeft, Col: 5, Row: 1})
	if !s.ButtonJustReleased(gpucontext.MouseButtonLeft) {
		t.Error("left should be just released")
	}

	// Pointer maps through the viewport in cell units.
	if x, y := s.PointerPixel(10, 4, 20, 8); x != 11 || y != 3 {
		t.Errorf("PointerPixel() = (%d, %d), want (11, 3)", x, y)
	}
}
