// Package settings holds the user-tunable configuration consumed at mode
// construction, its validation, and its INI persistence
package settings

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/lixenwraith/invoker/constants"
	"github.com/lixenwraith/invoker/engine"
)

// Sentinel errors
var (
	ErrUnbound   = errors.New("action has no key")
	ErrDuplicate = errors.New("key bound to more than one action")
	ErrVolume    = errors.New("volume out of range")
)

// Bindings maps the rune-triggered actions to keys
// Escape and Enter are fixed and not configurable
type Bindings struct {
	Quas    rune
	Wex     rune
	Exort   rune
	Invoke  rune
	ProMode rune
}

// Sound configures audio feedback
type Sound struct {
	Enabled bool
	Volume  float64 // 0.0 - 1.0
}

// Settings is the complete configuration of one process
type Settings struct {
	Field engine.Field
	Keys  Bindings
	Sound Sound
}

// Default returns the built-in configuration
func Default() Settings {
	return Settings{
		Field: engine.Field{
			Width:  constants.DefaultFieldWidth,
			Height: constants.DefaultFieldHeight,
			Margin: constants.DefaultSpawnMargin,
		},
		Keys: Bindings{
			Quas:    'q',
			Wex:     'w',
			Exort:   'e',
			Invoke:  'r',
			ProMode: 'p',
		},
		Sound: Sound{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// binding pairs an action name with its key for validation and encoding
type binding struct {
	action string
	key    rune
}

// list returns bindings in a stable order
func (b Bindings) list() []binding {
	return []binding{
		{"quas", b.Quas},
		{"wex", b.Wex},
		{"exort", b.Exort},
		{"invoke", b.Invoke},
		{"pro_mode", b.ProMode},
	}
}

// Validate checks that every action has a distinct printable key
// Keys are compared case-insensitively, matching how the mapper folds them
func (b Bindings) Validate() error {
	seen := make(map[rune]string, 5)
	for _, e := range b.list() {
		if e.key == 0 || !unicode.IsPrint(e.key) {
			return fmt.Errorf("%w: %s", ErrUnbound, e.action)
		}
		folded := unicode.ToLower(e.key)
		if other, dup := seen[folded]; dup {
			return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicate, e.key, other, e.action)
		}
		seen[folded] = e.action
	}
	return nil
}

// Validate checks the whole configuration once at load time
func (s Settings) Validate() error {
	if err := s.Field.Validate(); err != nil {
		return err
	}
	if err := s.Keys.Validate(); err != nil {
		return err
	}
	if s.Sound.Volume < 0 || s.Sound.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrVolume, s.Sound.Volume)
	}
	return nil
}
