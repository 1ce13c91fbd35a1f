package tty

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels/input"
)

// Feeder applies decoded events to an input.State.
//
// Terminals send no key release, so each key is held from the frame it
// arrives in until the next BeginFrame. Auto-repeat re-presses the key
// every frame, which reads as held without new edges.
type Feeder struct {
	state *input.State
	taps  []gpucontext.Key
	mods  bool
}

// NewFeeder creates a Feeder writing into s.
func NewFeeder(s *input.State) *Feeder {
	return &Feeder{state: s}
}

// BeginFrame releases the keys tapped during the previous frame. Call it
// after the previous frame's AdvanceFrame and before applying new events.
func (f *Feeder) BeginFrame() {
	for _, k := range f.taps {
		f.state.ReleaseKey(k)
	}
	f.taps = f.taps[:0]
	if f.mods {
		f.state.SetModifierState(0)
		f.mods = false
	}
}

// Feed applies events in order.
func (f *Feeder) Feed(events []Event) {
	for _, ev := range events {
		f.Apply(ev)
	}
}

// Apply applies one event. Mouse cells map to pointer positions at the
// cell center in cell units, so the pointer area is the presented
// viewport in columns and rows.
func (f *Feeder) Apply(ev Event) {
	if ev.Kind == KeyTap {
		f.state.PressKey(ev.Key)
		f.taps = append(f.taps, ev.Key)
		if ev.Mods != 0 || f.mods {
			f.state.SetModifierState(ev.Mods)
			f.mods = true
		}
		return
	}

	x, y := float64(ev.Col)+0.5, float64(ev.Row)+0.5
	if f.state.OnSurface() {
		px, py := f.state.PointerPosition()
		f.state.AccumulatePointerDelta(x-px, y-py)
	}
	f.state.SetOnSurface(true)
	f.state.SetPointerPosition(x, y)
	switch ev.Kind {
	case MouseDown:
		f.state.PressButton(ev.Button)
	case MouseUp:
		f.state.ReleaseButton(ev.Button)
	case Wheel:
		f.state.AccumulateScrollDelta(0, ev.Scroll)
	}
}
