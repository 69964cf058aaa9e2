package modes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/invoker/settings"
)

// Machine owns the active mode and applies the Transitions its handlers return
// It is not safe for concurrent use; the game loop goroutine owns it
type Machine struct {
	env   *env
	mode  Mode
	quit  bool
	swaps int
}

// Option configures a Machine
type Option func(*Machine, *Kind)

// WithFeedback routes gameplay cues to f
func WithFeedback(f Feedback) Option {
	return func(m *Machine, _ *Kind) {
		if f != nil {
			m.env.feedback = f
		}
	}
}

// WithInitial starts the machine in kind instead of the menu
func WithInitial(kind Kind) Option {
	return func(_ *Machine, k *Kind) {
		*k = kind
	}
}

// WithSaver persists settings changed from the settings mode
func WithSaver(save func(settings.Settings) error) Option {
	return func(m *Machine, _ *Kind) {
		m.env.save = save
	}
}

// NewMachine creates a machine in the menu, or the WithInitial kind
func NewMachine(s settings.Settings, rng *rand.Rand, opts ...Option) (*Machine, error) {
	m := &Machine{
		env: &env{
			settings: s,
			rng:      rng,
			feedback: NopFeedback{},
		},
	}
	initial := KindMenu
	for _, opt := range opts {
		opt(m, &initial)
	}

	mode, err := m.build(initial, Payload{})
	if err != nil {
		return nil, fmt.Errorf("initial mode %s: %w", initial, err)
	}
	m.mode = mode
	log.Printf("mode: start in %s", initial)
	return m, nil
}

// build constructs a fresh mode of kind k
func (m *Machine) build(k Kind, p Payload) (Mode, error) {
	switch k {
	case KindMenu:
		return newMenu(m.env), nil
	case KindPlay:
		return newPlay(m.env)
	case KindProMode:
		return newPro(m.env)
	case KindGameOver, KindGameOverPro:
		return newGameOver(m.env, k, p), nil
	case KindSettings:
		return newSettings(m.env), nil
	}
	return nil, fmt.Errorf("unknown mode kind %d", k)
}

// apply performs t; None leaves the current mode untouched
func (m *Machine) apply(t Transition) error {
	switch t.action {
	case actionNone:
		return nil
	case actionQuit:
		log.Printf("mode: %s -> quit", m.mode.Kind())
		m.quit = true
		return nil
	}

	from := m.mode.Kind()
	next, err := m.build(t.target, t.payload)
	if err != nil {
		log.Printf("mode: %s -> %s failed: %v", from, t.target, err)
		return fmt.Errorf("enter %s: %w", t.target, err)
	}

	if p := t.payload; p.RunID != "" {
		log.Printf("run %s end: score=%d elapsed=%s reason=%q", p.RunID, p.Score, p.Elapsed, p.Diagnostic)
	}
	log.Printf("mode: %s -> %s", from, t.target)

	m.mode = next
	m.swaps++
	return nil
}

// Update advances the active mode by one frame
func (m *Machine) Update(dt time.Duration) error {
	if m.quit {
		return nil
	}
	return m.apply(m.mode.update(dt))
}

// HandleKey dispatches one logical key
func (m *Machine) HandleKey(k Key) error {
	if m.quit {
		return nil
	}
	return m.apply(m.mode.key(k))
}

// HandleClick dispatches a button release at field coordinates
// Only the left button activates buttons
func (m *Machine) HandleClick(b MouseButton, x, y float64) error {
	if m.quit || b != ButtonLeft {
		return nil
	}
	return m.apply(m.mode.click(x, y))
}

// Snapshot returns the view of the active mode
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Kind:     m.mode.Kind(),
		Field:    m.env.settings.Field,
		Bindings: m.env.settings.Keys,
		SoundOn:  m.env.settings.Sound.Enabled,
	}
	m.mode.fill(&s)
	return s
}

// Kind returns the active mode kind
func (m *Machine) Kind() Kind {
	return m.mode.Kind()
}

// Quit reports whether a Quit transition was applied
func (m *Machine) Quit() bool {
	return m.quit
}

// Settings returns the current settings, including changes made in the
// settings mode
func (m *Machine) Settings() settings.Settings {
	return m.env.settings
}
