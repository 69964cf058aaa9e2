package buffer

import (
	"fmt"

	"github.com/lixenwraith/invoker/combo"
)

// phase tracks whether the first cast of a run is still pending
// The only transition is phaseFirstCast -> phaseCounted
type phase uint8

const (
	phaseFirstCast phase = iota
	phaseCounted
)

// OutcomeKind classifies a checked commit
type OutcomeKind uint8

const (
	// OutcomeExact means the keypress count matched the budget
	OutcomeExact OutcomeKind = iota
	// OutcomeWrongCount means the player under- or over-typed
	OutcomeWrongCount
	// OutcomeFirstCast means the budget was waived for the opening cast
	OutcomeFirstCast
)

// MatchOutcome is the result of Counted.CommitChecked
// Key is meaningful only when Full is true
type MatchOutcome struct {
	Kind     OutcomeKind
	Key      combo.Key
	Full     bool // window held combo.Size orbs
	Actual   int  // keypresses since the previous commit, commit included
	Required int
}

// Fault reports whether the outcome ends a pro-mode run regardless of symbols
func (o MatchOutcome) Fault() bool {
	return o.Kind == OutcomeWrongCount
}

// String describes the outcome for logs and diagnostics
func (o MatchOutcome) String() string {
	switch o.Kind {
	case OutcomeExact:
		return fmt.Sprintf("exact %v", o.Key)
	case OutcomeWrongCount:
		return fmt.Sprintf("expected %d keypresses, got %d", o.Required, o.Actual)
	case OutcomeFirstCast:
		return fmt.Sprintf("first cast %v", o.Key)
	}
	return "unknown outcome"
}

// Counted is the pro-mode buffer: the sliding window plus a keypress counter
// checked against a per-cast budget. A new Counted starts in the first-cast
// phase, which exempts exactly one commit from the budget.
type Counted struct {
	Input
	presses int
	phase   phase
}

// NewCounted returns a buffer in the first-cast phase
func NewCounted() *Counted {
	return &Counted{phase: phaseFirstCast}
}

// PushCounted pushes sym and counts the keypress
func (b *Counted) PushCounted(sym combo.Symbol) {
	b.Push(sym)
	b.presses++
}

// Presses returns keypresses counted since the last commit
func (b *Counted) Presses() int {
	return b.presses
}

// FirstCastPending reports whether the next commit is exempt from the budget
func (b *Counted) FirstCastPending() bool {
	return b.phase == phaseFirstCast
}

// CommitChecked counts the commit keystroke, compares the total against
// required and resets the counter. The window itself is not cleared.
func (b *Counted) CommitChecked(required int) MatchOutcome {
	b.presses++
	key, full := b.Commit()
	out := MatchOutcome{
		Key:      key,
		Full:     full,
		Actual:   b.presses,
		Required: required,
	}
	b.presses = 0

	switch {
	case b.phase == phaseFirstCast:
		b.phase = phaseCounted
		out.Kind = OutcomeFirstCast
	case out.Actual != required:
		out.Kind = OutcomeWrongCount
	default:
		out.Kind = OutcomeExact
	}
	return out
}
