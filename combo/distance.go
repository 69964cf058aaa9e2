package combo

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// State is the ordered content of a full input window, oldest orb first
//
// The graph searched by MinKeystrokes has one node per State (27 in total)
// and one edge per orb: pressing s moves State{a, b, c} to State{b, c, s}.
// This mirrors the sliding-window push of the input buffer exactly, so a
// path of length n is a sequence of n orb presses.
type State [Size]Symbol

// Next returns the state reached by pressing sym
func (st State) Next(sym Symbol) State {
	return State{st[1], st[2], sym}
}

// Canonical returns the combo the state would cast if committed now
func (st State) Canonical() Key {
	return Canonical(st)
}

// node is a frontier entry: a state and its BFS depth
type node struct {
	state State
	depth int
}

// MinKeystrokes returns the fewest orb presses that turn start into any
// ordering of target. Returns 0 when start already casts target.
// The result is always in [0, Size] since Size presses refresh the window.
func MinKeystrokes(start [Size]Symbol, target Key) int {
	origin := State(start)
	if origin.Canonical() == target {
		return 0
	}

	visited := mapset.New[State]()
	visited.Put(origin)

	frontier := queue.New[node]()
	frontier.Enqueue(node{state: origin})

	for !frontier.Empty() {
		cur := frontier.Dequeue()
		for _, sym := range Symbols {
			next := cur.state.Next(sym)
			if visited.Has(next) {
				continue
			}
			if next.Canonical() == target {
				return cur.depth + 1
			}
			visited.Put(next)
			frontier.Enqueue(node{state: next, depth: cur.depth + 1})
		}
	}

	// Unreachable: every Key is reachable within Size moves
	return Size
}

// RequiredPresses is the keypress budget for the next cast in pro mode:
// the orb presses from MinKeystrokes plus one for the commit key.
// TODO: confirm with design whether the commit key should count toward the budget;
// the +1 is kept to match observed gameplay.
func RequiredPresses(start [Size]Symbol, target Key) int {
	return MinKeystrokes(start, target) + 1
}
