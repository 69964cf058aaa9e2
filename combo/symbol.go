package combo

import "fmt"

// Symbol is one orb of the combo alphabet
// Ordering Q < W < E is used only for canonicalization
type Symbol uint8

const (
	Q Symbol = iota
	W
	E
)

// Symbols lists the alphabet in canonical order
var Symbols = [...]Symbol{Q, W, E}

// String returns the single-letter orb name
func (s Symbol) String() string {
	switch s {
	case Q:
		return "Q"
	case W:
		return "W"
	case E:
		return "E"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// Rune returns the orb letter as a rune for cell rendering
func (s Symbol) Rune() rune {
	switch s {
	case Q:
		return 'Q'
	case W:
		return 'W'
	case E:
		return 'E'
	}
	return '?'
}

// Valid reports whether s belongs to the alphabet
func (s Symbol) Valid() bool {
	return s <= E
}

// ParseSymbol converts an orb letter (case-insensitive) to a Symbol
func ParseSymbol(r rune) (Symbol, error) {
	switch r {
	case 'Q', 'q':
		return Q, nil
	case 'W', 'w':
		return W, nil
	case 'E', 'e':
		return E, nil
	}
	return 0, fmt.Errorf("invalid orb %q", r)
}
