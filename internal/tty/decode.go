package tty

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/gogpu/gpucontext"
)

// Kind classifies a decoded terminal event.
type Kind uint8

// Event kinds.
const (
	KeyTap Kind = iota
	MouseDown
	MouseUp
	MouseMove
	Wheel
)

// Event is one decoded terminal input event. Terminals report key presses
// only, so keys arrive as taps.
type Event struct {
	Kind   Kind
	Key    gpucontext.Key
	Mods   gpucontext.Modifiers
	Button gpucontext.MouseButton

	// Col and Row are the 0-based cell of mouse events.
	Col, Row int

	// Scroll is the wheel movement in lines, positive away from the user.
	Scroll float64
}

// Decoder turns raw terminal input into events. It understands printable
// ASCII, control keys, arrows and SGR (mode 1006) mouse reports.
type Decoder struct {
	p *ansi.Parser
}

// NewDecoder creates a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{p: ansi.NewParser()}
}

// Decode decodes one chunk of input. A sequence split across chunks is
// dropped, except that a lone trailing ESC is the Escape key.
func (d *Decoder) Decode(b []byte) []Event {
	var events []Event
	for len(b) > 0 {
		seq, _, n, state := ansi.DecodeSequence(b, ansi.NormalState, d.p)
		if n == 0 {
			break
		}
		b = b[n:]
		if state != ansi.NormalState {
			if len(seq) == 1 && seq[0] == ansi.ESC {
				events = append(events, Event{Kind: KeyTap, Key: gpucontext.KeyEscape})
			}
			break
		}
		// Application cursor keys arrive as SS3 (ESC O) and a final byte.
		if len(seq) == 2 && seq[0] == ansi.ESC && seq[1] == 'O' && len(b) > 0 {
			if key, ok := ss3Key(b[0]); ok {
				events = append(events, Event{Kind: KeyTap, Key: key})
				b = b[1:]
				continue
			}
		}
		if ev, ok := d.event(seq); ok {
			events = append(events, ev)
		}
	}
	return events
}

func ss3Key(c byte) (gpucontext.Key, bool) {
	switch c {
	case 'A':
		return gpucontext.KeyUp, true
	case 'B':
		return gpucontext.KeyDown, true
	case 'C':
		return gpucontext.KeyRight, true
	case 'D':
		return gpucontext.KeyLeft, true
	case 'H':
		return gpucontext.KeyHome, true
	case 'F':
		return gpucontext.KeyEnd, true
	}
	return 0, false
}

func (d *Decoder) event(seq []byte) (Event, bool) {
	switch {
	case len(seq) == 1:
		return keyEvent(seq[0])
	case ansi.HasCsiPrefix(seq):
		return d.csiEvent()
	case len(seq) == 2 && seq[0] == ansi.ESC:
		// Alt+key
		ev, ok := keyEvent(seq[1])
		ev.Mods |= gpucontext.ModAlt
		return ev, ok
	}
	return Event{}, false
}

// keyEvent maps a single byte.
func keyEvent(c byte) (Event, bool) {
	ev := Event{Kind: KeyTap}
	switch {
	case c >= 'a' && c <= 'z':
		ev.Key = gpucontext.KeyA + gpucontext.Key(c-'a')
	case c >= 'A' && c <= 'Z':
		ev.Key = gpucontext.KeyA + gpucontext.Key(c-'A')
		ev.Mods = gpucontext.ModShift
	case c >= '0' && c <= '9':
		ev.Key = gpucontext.Key0 + gpucontext.Key(c-'0')
	case c == ' ':
		ev.Key = gpucontext.KeySpace
	case c == '\r' || c == '\n':
		ev.Key = gpucontext.KeyEnter
	case c == '\t':
		ev.Key = gpucontext.KeyTab
	case c == ansi.DEL || c == ansi.BS:
		ev.Key = gpucontext.KeyBackspace
	case c == ansi.ESC:
		ev.Key = gpucontext.KeyEscape
	case c >= 1 && c <= 26:
		// Ctrl+A through Ctrl+Z
		ev.Key = gpucontext.KeyA + gpucontext.Key(c-1)
		ev.Mods = gpucontext.ModControl
	default:
		return Event{}, false
	}
	return ev, true
}

func (d *Decoder) csiEvent() (Event, bool) {
	cmd := ansi.Cmd(d.p.Command())
	if cmd.Prefix() == '<' && (cmd.Final() == 'M' || cmd.Final() == 'm') {
		return d.mouseEvent(cmd.Final() == 'm')
	}
	if cmd.Prefix() != 0 {
		return Event{}, false
	}

	ev := Event{Kind: KeyTap}
	switch cmd.Final() {
	case 'A':
		ev.Key = gpucontext.KeyUp
	case 'B':
		ev.Key = gpucontext.KeyDown
	case 'C':
		ev.Key = gpucontext.KeyRight
	case 'D':
		ev.Key = gpucontext.KeyLeft
	case 'H':
		ev.Key = gpucontext.KeyHome
	case 'F':
		ev.Key = gpucontext.KeyEnd
	case '~':
		switch n, _ := d.p.Param(0, 0); n {
		case 2:
			ev.Key = gpucontext.KeyInsert
		case 3:
			ev.Key = gpucontext.KeyDelete
		case 5:
			ev.Key = gpucontext.KeyPageUp
		case 6:
			ev.Key = gpucontext.KeyPageDown
		default:
			return Event{}, false
		}
	default:
		return Event{}, false
	}
	// xterm reports modifiers as the second parameter, 1 + bitmask.
	if m, ok := d.p.Param(1, 1); ok {
		ev.Mods = xtermMods(m - 1)
	}
	return ev, true
}

// mouseEvent decodes CSI < b ; col ; row M|m.
func (d *Decoder) mouseEvent(release bool) (Event, bool) {
	b, _ := d.p.Param(0, 0)
	col, _ := d.p.Param(1, 1)
	row, _ := d.p.Param(2, 1)

	ev := Event{
		Col:  col - 1,
		Row:  row - 1,
		Mods: mouseMods(b),
	}
	switch {
	case b&64 != 0:
		ev.Kind = Wheel
		switch b & 3 {
		case 0:
			ev.Scroll = 1
		case 1:
			ev.Scroll = -1
		default:
			return Event{}, false
		}
		return ev, true
	case b&32 != 0:
		ev.Kind = MouseMove
		return ev, true
	case release:
		ev.Kind = MouseUp
	default:
		ev.Kind = MouseDown
	}

	switch b & 3 {
	case 0:
		ev.Button = gpucontext.MouseButtonLeft
	case 1:
		ev.Button = gpucontext.MouseButtonMiddle
	case 2:
		ev.Button = gpucontext.MouseButtonRight
	default:
		return Event{}, false
	}
	return ev, true
}

func mouseMods(b int) gpucontext.Modifiers {
	var m gpucontext.Modifiers
	if b&4 != 0 {
		m |= gpucontext.ModShift
	}
	if b&8 != 0 {
		m |= gpucontext.ModAlt
	}
	if b&16 != 0 {
		m |= gpucontext.ModControl
	}
	return m
}

func xtermMods(bits int) gpucontext.Modifiers {
	var m gpucontext.Modifiers
	if bits&1 != 0 {
		m |= gpucontext.ModShift
	}
	if bits&2 != 0 {
		m |= gpucontext.ModAlt
	}
	if bits&4 != 0 {
		m |= gpucontext.ModControl
	}
	if bits&8 != 0 {
		m |= gpucontext.ModSuper
	}
	return m
}
