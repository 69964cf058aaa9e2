package engine

import (
	"github.com/lixenwraith/invoker/combo"
	"github.com/lixenwraith/invoker/spell"
)

// Spell is one falling target owned by a Wave
type Spell struct {
	ID    spell.ID
	Key   combo.Key
	X, Y  float64
	Speed float64 // frozen at spawn; ignored under MotionShared
}

// newSpell creates a spell at the top of the field
func newSpell(id spell.ID, x, speed float64) Spell {
	return Spell{
		ID:    id,
		Key:   spell.Combo(id),
		X:     x,
		Speed: speed,
	}
}
