package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invoker/modes"
	"github.com/lixenwraith/invoker/settings"
)

func TestMapKeyDefaults(t *testing.T) {
	m := NewMapper(settings.Default().Keys)

	tests := []struct {
		name     string
		ev       *tcell.EventKey
		want     modes.Key
		wantQuit bool
	}{
		{"quas", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), modes.KeyQuas, false},
		{"wex upper", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), modes.KeyWex, false},
		{"exort", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), modes.KeyExort, false},
		{"invoke", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), modes.KeyInvoke, false},
		{"pro mode", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), modes.KeyProMode, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), modes.KeyEscape, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), modes.KeyReturn, false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), modes.KeyNone, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), modes.KeyNone, false},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), modes.KeyNone, false},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), modes.KeyNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := m.MapKey(tt.ev)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey() = %s, %t; want %s, %t", got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyCustomBindings(t *testing.T) {
	b := settings.Bindings{Quas: 'a', Wex: 's', Exort: 'd', Invoke: ' ', ProMode: 'X'}
	m := NewMapper(b)

	if k, _ := m.MapKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); k != modes.KeyInvoke {
		t.Errorf("space = %s, want invoke", k)
	}
	if k, _ := m.MapKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); k != modes.KeyProMode {
		t.Errorf("x = %s, want pro-mode", k)
	}
	if k, _ := m.MapKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); k != modes.KeyNone {
		t.Errorf("old binding q = %s, want none", k)
	}
}

func TestMapMouseRelease(t *testing.T) {
	m := NewMapper(settings.Default().Keys)

	if _, ok := m.MapMouse(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Fatal("motion without press reported a click")
	}
	if _, ok := m.MapMouse(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone)); ok {
		t.Fatal("press reported a click")
	}
	if _, ok := m.MapMouse(tcell.NewEventMouse(5, 6, tcell.Button1, tcell.ModNone)); ok {
		t.Fatal("drag reported a click")
	}

	c, ok := m.MapMouse(tcell.NewEventMouse(7, 8, tcell.ButtonNone, tcell.ModNone))
	if !ok {
		t.Fatal("release not reported")
	}
	if c.Button != modes.ButtonLeft || c.Col != 7 || c.Row != 8 {
		t.Errorf("click = %+v", c)
	}

	if _, ok := m.MapMouse(tcell.NewEventMouse(7, 8, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("second release reported")
	}
}

func TestMapMouseButtons(t *testing.T) {
	tests := []struct {
		mask tcell.ButtonMask
		want modes.MouseButton
	}{
		{tcell.Button1, modes.ButtonLeft},
		{tcell.Button2, modes.ButtonRight},
		{tcell.Button3, modes.ButtonMiddle},
	}

	for _, tt := range tests {
		m := NewMapper(settings.Default().Keys)
		m.MapMouse(tcell.NewEventMouse(1, 1, tt.mask, tcell.ModNone))
		c, ok := m.MapMouse(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
		if !ok || c.Button != tt.want {
			t.Errorf("mask %v: click = %+v, %t; want %v", tt.mask, c, ok, tt.want)
		}
	}
}

func TestMapMouseIgnoresWheel(t *testing.T) {
	m := NewMapper(settings.Default().Keys)
	m.MapMouse(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone))
	if _, ok := m.MapMouse(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("wheel reported as click")
	}
}
