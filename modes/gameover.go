package modes

import (
	"time"

	"github.com/lixenwraith/invoker/constants"
)

// gameOverMode ends a run and offers a retry of the same kind
// It serves both GameOver (retry Play) and GameOverPro (retry ProMode)
type gameOverMode struct {
	kind    Kind
	result  Payload
	buttons []Button
}

func newGameOver(e *env, kind Kind, p Payload) *gameOverMode {
	retry := KindPlay
	if kind == KindGameOverPro {
		retry = KindProMode
	}
	f := e.settings.Field
	return &gameOverMode{
		kind:   kind,
		result: p,
		buttons: stackButtons(f.Width, f.Height,
			buttonSpec{"Try again", constants.HintReturn, GoTo(retry, Payload{})},
			buttonSpec{"Menu", constants.HintEscape, GoTo(KindMenu, Payload{})},
		),
	}
}

func (g *gameOverMode) Kind() Kind { return g.kind }

func (g *gameOverMode) update(time.Duration) Transition { return None() }

func (g *gameOverMode) key(k Key) Transition {
	switch k {
	case KeyReturn:
		return g.buttons[0].on
	case KeyEscape:
		return g.buttons[1].on
	}
	return None()
}

func (g *gameOverMode) click(x, y float64) Transition {
	return hitButton(g.buttons, x, y)
}

func (g *gameOverMode) fill(s *Snapshot) {
	s.Score = g.result.Score
	s.Diagnostic = g.result.Diagnostic
	s.Elapsed = g.result.Elapsed
	s.RunID = g.result.RunID
	s.Buttons = g.buttons
}
