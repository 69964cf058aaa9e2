package modes

import (
	"log"
	"time"

	"github.com/lixenwraith/invoker/constants"
)

// settingsMode shows the bindings and toggles sound
type settingsMode struct {
	env     *env
	buttons []Button
}

func newSettings(e *env) *settingsMode {
	f := e.settings.Field
	return &settingsMode{
		env: e,
		buttons: stackButtons(f.Width, f.Height,
			buttonSpec{"Sound", constants.HintReturn, None()},
			buttonSpec{"Menu", constants.HintEscape, GoTo(KindMenu, Payload{})},
		),
	}
}

func (m *settingsMode) Kind() Kind { return KindSettings }

func (m *settingsMode) update(time.Duration) Transition { return None() }

func (m *settingsMode) key(k Key) Transition {
	switch k {
	case KeyReturn:
		m.toggleSound()
	case KeyEscape:
		return GoTo(KindMenu, Payload{})
	}
	return None()
}

func (m *settingsMode) click(x, y float64) Transition {
	if m.buttons[0].Rect.Contains(x, y) {
		m.toggleSound()
		return None()
	}
	return hitButton(m.buttons[1:], x, y)
}

// toggleSound flips the setting and persists it; persistence failures are
// logged and the in-memory value is kept
func (m *settingsMode) toggleSound() {
	m.env.settings.Sound.Enabled = !m.env.settings.Sound.Enabled
	log.Printf("settings: sound enabled=%t", m.env.settings.Sound.Enabled)
	if m.env.save == nil {
		return
	}
	if err := m.env.save(m.env.settings); err != nil {
		log.Printf("settings: save failed: %v", err)
	}
}

func (m *settingsMode) fill(s *Snapshot) {
	buttons := append([]Button(nil), m.buttons...)
	buttons[0].Label = soundLabel(m.env.settings.Sound.Enabled)
	s.Buttons = buttons
}

func soundLabel(on bool) string {
	if on {
		return "Sound: on"
	}
	return "Sound: off"
}
