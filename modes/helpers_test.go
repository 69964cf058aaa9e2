package modes

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/invoker/combo"
	"github.com/lixenwraith/invoker/settings"
	"github.com/lixenwraith/invoker/spell"
)

const frame = 16 * time.Millisecond

// recorder is a Feedback that counts cues
type recorder struct {
	casts  []spell.ID
	spawns []spell.ID
	faults int
}

func (r *recorder) Cast(id spell.ID)  { r.casts = append(r.casts, id) }
func (r *recorder) Fault()            { r.faults++ }
func (r *recorder) Spawn(id spell.ID) { r.spawns = append(r.spawns, id) }

func newTestMachine(t *testing.T, seed int64, opts ...Option) *Machine {
	t.Helper()
	m, err := NewMachine(settings.Default(), rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m
}

// machineWithFront searches seeds until a run of kind starts with front as
// its oldest live spell; play runs are ticked once so the first spawn exists
func machineWithFront(t *testing.T, kind Kind, front spell.ID, opts ...Option) *Machine {
	t.Helper()
	for seed := int64(1); seed < 2000; seed++ {
		m := newTestMachine(t, seed, append(opts, WithInitial(kind))...)
		if kind == KindPlay {
			mustUpdate(t, m, frame)
		}
		spells := m.Snapshot().Spells
		if len(spells) > 0 && spells[0].ID == front {
			return m
		}
	}
	t.Fatalf("no seed starts %s with %s", kind, front)
	return nil
}

func mustUpdate(t *testing.T, m *Machine, dt time.Duration) {
	t.Helper()
	if err := m.Update(dt); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func press(t *testing.T, m *Machine, keys ...Key) {
	t.Helper()
	for _, k := range keys {
		if err := m.HandleKey(k); err != nil {
			t.Fatalf("HandleKey(%s): %v", k, err)
		}
	}
}

var orbKeys = map[combo.Symbol]Key{
	combo.Q: KeyQuas,
	combo.W: KeyWex,
	combo.E: KeyExort,
}

// orbs converts symbols to their logical keys
func orbs(syms ...combo.Symbol) []Key {
	out := make([]Key, len(syms))
	for i, s := range syms {
		out[i] = orbKeys[s]
	}
	return out
}

// castOf returns the three orb keys of a spell
func castOf(id spell.ID) []Key {
	k := spell.Combo(id)
	return orbs(k[0], k[1], k[2])
}

// shortestOrbs brute-forces the fewest orbs turning window into target
func shortestOrbs(window [combo.Size]combo.Symbol, target combo.Key) []combo.Symbol {
	var best []combo.Symbol
	var walk func(st combo.State, path []combo.Symbol)
	walk = func(st combo.State, path []combo.Symbol) {
		if best != nil && len(path) >= len(best) {
			return
		}
		if st.Canonical() == target {
			best = append([]combo.Symbol{}, path...)
			return
		}
		if len(path) == combo.Size {
			return
		}
		for _, s := range combo.Symbols {
			walk(st.Next(s), append(path, s))
		}
	}
	walk(combo.State(window), nil)
	return best
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
