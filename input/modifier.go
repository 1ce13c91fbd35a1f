package input

import "github.com/gogpu/gpucontext"

// Modifier identifies a keyboard modifier. Modifiers are tracked as a set
// so they answer the same pressed/just-pressed/just-released queries as
// keys and buttons.
type Modifier uint8

const (
	Shift Modifier = iota
	Ctrl
	Alt
	Super // Windows, Command or Logo key
)

// String returns the modifier name for debugging.
func (m Modifier) String() string {
	switch m {
	case Shift:
		return "Shift"
	case Ctrl:
		return "Ctrl"
	case Alt:
		return "Alt"
	case Super:
		return "Super"
	default:
		return "Unknown"
	}
}

// ModifiersFrom converts a host modifier bitmask into a modifier set.
// Lock states (Caps Lock, Num Lock) are not modifiers and are dropped.
func ModifiersFrom(m gpucontext.Modifiers) []Modifier {
	var mods []Modifier
	if m.HasShift() {
		mods = append(mods, Shift)
	}
	if m.HasControl() {
		mods = append(mods, Ctrl)
	}
	if m.HasAlt() {
		mods = append(mods, Alt)
	}
	if m.HasSuper() {
		mods = append(mods, Super)
	}
	return mods
}
