// Package modes implements the game mode state machine: one active mode at a
// time, handlers that return Transitions, and a Machine that applies them
package modes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/lixenwraith/invoker/combo"
	"github.com/lixenwraith/invoker/engine"
	"github.com/lixenwraith/invoker/settings"
)

// ErrInvalidField is returned when a run cannot be built on the configured field
var ErrInvalidField = engine.ErrInvalidField

// Mode is the sealed set of mode states
// Handlers never switch modes themselves; they return a Transition
type Mode interface {
	Kind() Kind
	update(dt time.Duration) Transition
	key(k Key) Transition
	click(x, y float64) Transition
	fill(s *Snapshot)
}

// env is the shared context every mode is built with
type env struct {
	settings settings.Settings
	rng      *rand.Rand
	feedback Feedback
	save     func(settings.Settings) error
}

// newRunID tags one play or pro run in payloads and logs
func newRunID() string {
	return ulid.Make().String()
}

// orbOf maps the three orb keys to their symbols
func orbOf(k Key) (combo.Symbol, bool) {
	switch k {
	case KeyQuas:
		return combo.Q, true
	case KeyWex:
		return combo.W, true
	case KeyExort:
		return combo.E, true
	}
	return 0, false
}

// shortCast describes a commit made before the window filled
func shortCast(n int) string {
	return fmt.Sprintf("cast needs %d orbs, had %d", combo.Size, n)
}

// breachMessage describes a spell crossing the fail boundary
func breachMessage(s engine.Spell) string {
	return fmt.Sprintf("%s reached the ground", s.ID)
}
