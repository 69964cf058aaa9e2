package modes

import "time"

// Kind identifies the active mode
type Kind uint8

const (
	KindMenu Kind = iota
	KindPlay
	KindProMode
	KindGameOver
	KindGameOverPro
	KindSettings
)

var kindNames = [...]string{
	KindMenu:        "menu",
	KindPlay:        "play",
	KindProMode:     "pro",
	KindGameOver:    "game-over",
	KindGameOverPro: "game-over-pro",
	KindSettings:    "settings",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Key is a logical key after binding resolution
type Key uint8

const (
	KeyNone Key = iota // unbound or unrecognised
	KeyQuas
	KeyWex
	KeyExort
	KeyInvoke
	KeyEscape
	KeyReturn
	KeyProMode
)

var keyNames = [...]string{
	KeyNone:    "none",
	KeyQuas:    "quas",
	KeyWex:     "wex",
	KeyExort:   "exort",
	KeyInvoke:  "invoke",
	KeyEscape:  "escape",
	KeyReturn:  "return",
	KeyProMode: "pro-mode",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// MouseButton identifies the released pointer button
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// Payload carries run results into the next mode
type Payload struct {
	Score      int
	Diagnostic string
	Elapsed    time.Duration
	RunID      string
}

// action enumerates what a Transition asks the driver to do
type action uint8

const (
	actionNone action = iota
	actionGoTo
	actionQuit
)

// Transition is returned by every mode handler and applied by the Machine
type Transition struct {
	action  action
	target  Kind
	payload Payload
}

// None keeps the current mode
func None() Transition {
	return Transition{}
}

// GoTo replaces the current mode with a fresh mode of kind k
func GoTo(k Kind, p Payload) Transition {
	return Transition{action: actionGoTo, target: k, payload: p}
}

// Quit requests process exit
func Quit() Transition {
	return Transition{action: actionQuit}
}

// IsNone reports whether t leaves the current mode in place
func (t Transition) IsNone() bool { return t.action == actionNone }

// IsQuit reports whether t requests exit
func (t Transition) IsQuit() bool { return t.action == actionQuit }

// Target returns the destination kind of a GoTo
func (t Transition) Target() (Kind, bool) {
	return t.target, t.action == actionGoTo
}

// Payload returns the data carried by a GoTo
func (t Transition) Payload() Payload { return t.payload }

func (t Transition) String() string {
	switch t.action {
	case actionGoTo:
		return "goto " + t.target.String()
	case actionQuit:
		return "quit"
	}
	return "none"
}
