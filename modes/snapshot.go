package modes

import (
	"time"

	"github.com/lixenwraith/invoker/combo"
	"github.com/lixenwraith/invoker/engine"
	"github.com/lixenwraith/invoker/settings"
	"github.com/lixenwraith/invoker/spell"
)

// Snapshot is a read-only view of the active mode for rendering
// Fields that do not apply to the current Kind are zero
type Snapshot struct {
	Kind    Kind
	Field   engine.Field
	Buttons []Button

	// Runs and results
	Score      int
	Buffer     []combo.Symbol
	Spells     []engine.Spell
	Speed      float64
	Elapsed    time.Duration
	RunID      string
	Diagnostic string

	// Pro mode
	Required  int
	Pressed   int
	FirstCast bool
	Next      spell.ID
	HasNext   bool

	// Settings
	Bindings settings.Bindings
	SoundOn  bool
}
