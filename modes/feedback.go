package modes

import "github.com/lixenwraith/invoker/spell"

// Feedback receives gameplay cues, typically for audio
// Calls happen on the game loop goroutine and must not block
type Feedback interface {
	Cast(id spell.ID)
	Fault()
	Spawn(id spell.ID)
}

// NopFeedback ignores every cue
type NopFeedback struct{}

func (NopFeedback) Cast(spell.ID)  {}
func (NopFeedback) Fault()         {}
func (NopFeedback) Spawn(spell.ID) {}
