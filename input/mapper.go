// Package input translates terminal events into logical game input
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invoker/modes"
	"github.com/lixenwraith/invoker/settings"
)

// Click is a completed mouse button press in terminal cells
type Click struct {
	Button   modes.MouseButton
	Col, Row int
}

// Mapper resolves key and mouse events against the configured bindings
// Not safe for concurrent use
type Mapper struct {
	runes map[rune]modes.Key
	held  tcell.ButtonMask
}

// NewMapper builds a mapper for validated bindings
func NewMapper(b settings.Bindings) *Mapper {
	return &Mapper{
		runes: map[rune]modes.Key{
			unicode.ToLower(b.Quas):    modes.KeyQuas,
			unicode.ToLower(b.Wex):     modes.KeyWex,
			unicode.ToLower(b.Exort):   modes.KeyExort,
			unicode.ToLower(b.Invoke):  modes.KeyInvoke,
			unicode.ToLower(b.ProMode): modes.KeyProMode,
		},
	}
}

// MapKey returns the logical key for ev; quit is true for Ctrl-C
func (m *Mapper) MapKey(ev *tcell.EventKey) (k modes.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return modes.KeyNone, true
	case tcell.KeyEscape:
		return modes.KeyEscape, false
	case tcell.KeyEnter:
		return modes.KeyReturn, false
	case tcell.KeyRune:
		mods := ev.Modifiers()
		if mods&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c' {
			return modes.KeyNone, true
		}
		if mods&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return modes.KeyNone, false
		}
		return m.runes[unicode.ToLower(ev.Rune())], false
	}
	return modes.KeyNone, false
}

// MapMouse tracks button state and reports a Click when a button is released
func (m *Mapper) MapMouse(ev *tcell.EventMouse) (Click, bool) {
	x, y := ev.Position()
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	released := m.held &^ buttons
	m.held = buttons

	switch {
	case released&tcell.Button1 != 0:
		return Click{Button: modes.ButtonLeft, Col: x, Row: y}, true
	case released&tcell.Button2 != 0:
		return Click{Button: modes.ButtonRight, Col: x, Row: y}, true
	case released&tcell.Button3 != 0:
		return Click{Button: modes.ButtonMiddle, Col: x, Row: y}, true
	}
	return Click{}, false
}
