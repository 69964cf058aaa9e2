package modes

import (
	"time"

	"github.com/lixenwraith/invoker/constants"
)

// menuMode is the title screen
type menuMode struct {
	buttons []Button
}

func newMenu(e *env) *menuMode {
	f := e.settings.Field
	return &menuMode{
		buttons: stackButtons(f.Width, f.Height,
			buttonSpec{"Start Game", constants.HintReturn, GoTo(KindPlay, Payload{})},
			buttonSpec{"ProMode", constants.HintProMode, GoTo(KindProMode, Payload{})},
			buttonSpec{"Quit", constants.HintEscape, Quit()},
		),
	}
}

func (m *menuMode) Kind() Kind { return KindMenu }

func (m *menuMode) update(time.Duration) Transition { return None() }

func (m *menuMode) key(k Key) Transition {
	switch k {
	case KeyReturn:
		return GoTo(KindPlay, Payload{})
	case KeyProMode:
		return GoTo(KindProMode, Payload{})
	case KeyEscape:
		return Quit()
	}
	return None()
}

func (m *menuMode) click(x, y float64) Transition {
	return hitButton(m.buttons, x, y)
}

func (m *menuMode) fill(s *Snapshot) {
	s.Buttons = m.buttons
}
