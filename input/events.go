package input

import "github.com/gogpu/gpucontext"

// Attach registers callbacks on src that forward host events into s.
//
// Keys and modifier snapshots come from OnKeyPress/OnKeyRelease. When src
// also implements gpucontext.PointerEventSource, pointer input is taken
// from OnPointer, which carries enter/leave; otherwise OnMouseMove,
// OnMousePress and OnMouseRelease are used and the host must call
// SetOnSurface itself. Scroll prefers gpucontext.ScrollEventSource over
// OnScroll. Losing focus releases everything.
//
// The callbacks mutate s directly, so src must invoke them on the
// goroutine that runs the frame loop.
func Attach(src gpucontext.EventSource, s *State) {
	src.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		s.PressKey(key)
		s.SetModifierState(mods)
	})
	src.OnKeyRelease(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		s.ReleaseKey(key)
		s.SetModifierState(mods)
	})
	src.OnFocus(func(focused bool) {
		if !focused {
			s.ReleaseAll()
		}
	})

	if pes, ok := src.(gpucontext.PointerEventSource); ok {
		pes.OnPointer(s.HandlePointer)
	} else {
		src.OnMouseMove(s.movePointer)
		src.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
			s.movePointer(x, y)
			s.PressButton(button)
		})
		src.OnMouseRelease(func(button gpucontext.MouseButton, x, y float64) {
			s.movePointer(x, y)
			s.ReleaseButton(button)
		})
	}

	if ses, ok := src.(gpucontext.ScrollEventSource); ok {
		ses.OnScrollEvent(func(ev gpucontext.ScrollEvent) {
			s.AccumulateScrollDelta(ev.DeltaX, ev.DeltaY)
		})
	} else {
		src.OnScroll(s.AccumulateScrollDelta)
	}
}

// HandlePointer applies one unified pointer event. Only primary pointers
// are tracked; secondary touch contacts are ignored.
func (s *State) HandlePointer(ev gpucontext.PointerEvent) {
	if !ev.IsPrimary {
		return
	}
	switch ev.Type {
	case gpucontext.PointerEnter:
		s.SetOnSurface(true)
		s.SetPointerPosition(ev.X, ev.Y)
	case gpucontext.PointerLeave:
		s.SetOnSurface(false)
	case gpucontext.PointerMove:
		if ev.DeltaX != 0 || ev.DeltaY != 0 {
			// Locked cursor: the position is pinned, deltas are authoritative.
			s.AccumulatePointerDelta(ev.DeltaX, ev.DeltaY)
			s.SetPointerPosition(ev.X, ev.Y)
		} else {
			s.movePointer(ev.X, ev.Y)
		}
	case gpucontext.PointerDown:
		s.movePointer(ev.X, ev.Y)
		if b, ok := mouseButton(ev.Button); ok {
			s.PressButton(b)
		}
	case gpucontext.PointerUp:
		s.movePointer(ev.X, ev.Y)
		if b, ok := mouseButton(ev.Button); ok {
			s.ReleaseButton(b)
		}
	case gpucontext.PointerCancel:
		s.buttons.releaseAll()
	}
}

// mouseButton maps a W3C pointer button onto a mouse button identifier.
func mouseButton(b gpucontext.Button) (gpucontext.MouseButton, bool) {
	switch b {
	case gpucontext.ButtonLeft:
		return gpucontext.MouseButtonLeft, true
	case gpucontext.ButtonRight:
		return gpucontext.MouseButtonRight, true
	case gpucontext.ButtonMiddle:
		return gpucontext.MouseButtonMiddle, true
	case gpucontext.ButtonX1:
		return gpucontext.MouseButton4, true
	case gpucontext.ButtonX2:
		return gpucontext.MouseButton5, true
	default:
		return 0, false
	}
}
