package combo

import (
	"fmt"
	"strings"
)

// Size is the number of orbs in every combo
const Size = 3

// Key is the canonical (sorted) form of three orbs
// Two casts are the same combo iff their Keys are equal
type Key [Size]Symbol

// Canonical sorts an ordered triple into its Key
func Canonical(seq [Size]Symbol) Key {
	k := Key(seq)
	// Three elements: a fixed compare-swap network
	if k[0] > k[1] {
		k[0], k[1] = k[1], k[0]
	}
	if k[1] > k[2] {
		k[1], k[2] = k[2], k[1]
	}
	if k[0] > k[1] {
		k[0], k[1] = k[1], k[0]
	}
	return k
}

// Of builds a Key from three orbs in any order
func Of(a, b, c Symbol) Key {
	return Canonical([Size]Symbol{a, b, c})
}

// ParseKey builds a Key from a three-letter orb string, e.g. "EWW"
func ParseKey(s string) (Key, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != Size {
		return Key{}, fmt.Errorf("combo %q: expected %d orbs, got %d", s, Size, len(runes))
	}
	var seq [Size]Symbol
	for i, r := range runes {
		sym, err := ParseSymbol(r)
		if err != nil {
			return Key{}, fmt.Errorf("combo %q: %w", s, err)
		}
		seq[i] = sym
	}
	return Canonical(seq), nil
}

// MustParseKey is ParseKey for static tables; panics on malformed input
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Count returns how many times sym occurs in the combo
func (k Key) Count(sym Symbol) int {
	n := 0
	for _, s := range k {
		if s == sym {
			n++
		}
	}
	return n
}

// String renders the Key as orb letters in canonical order
func (k Key) String() string {
	var b strings.Builder
	b.Grow(Size)
	for _, s := range k {
		b.WriteRune(s.Rune())
	}
	return b.String()
}
