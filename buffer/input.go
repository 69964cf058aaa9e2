// Package buffer implements the rolling orb window typed by the player
package buffer

import "github.com/lixenwraith/invoker/combo"

// Input is a FIFO window of the last combo.Size orbs typed
// Zero value is an empty, ready-to-use buffer
type Input struct {
	orbs [combo.Size]combo.Symbol
	n    int
}

// Push appends sym, evicting the oldest orb when the window is full
func (b *Input) Push(sym combo.Symbol) {
	if b.n == combo.Size {
		b.orbs[0], b.orbs[1] = b.orbs[1], b.orbs[2]
		b.orbs[combo.Size-1] = sym
		return
	}
	b.orbs[b.n] = sym
	b.n++
}

// Commit returns the canonical form of the window without clearing it
// ok is false while fewer than combo.Size orbs have been typed
func (b *Input) Commit() (key combo.Key, ok bool) {
	seq, ok := b.Ordered()
	if !ok {
		return combo.Key{}, false
	}
	return combo.Canonical(seq), true
}

// Ordered returns the window oldest-first when it is full
func (b *Input) Ordered() ([combo.Size]combo.Symbol, bool) {
	return b.orbs, b.n == combo.Size
}

// Symbols returns a copy of the window contents, oldest first
func (b *Input) Symbols() []combo.Symbol {
	out := make([]combo.Symbol, b.n)
	copy(out, b.orbs[:b.n])
	return out
}

// Len returns the number of orbs in the window
func (b *Input) Len() int {
	return b.n
}

// Reset empties the window
func (b *Input) Reset() {
	b.n = 0
}
