// Package spell holds the fixed table of castable spells and their combos
package spell

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/invoker/combo"
)

// ID identifies one of the ten spells
type ID uint8

const (
	Alacrity ID = iota
	ChaosMeteor
	ColdSnap
	DeafeningBlast
	EMP
	ForgeSpirit
	GhostWalk
	IceWall
	SunStrike
	Tornado
	idCount
)

// entry binds display data to a combo
type entry struct {
	name  string
	short string
	key   combo.Key
}

// table is indexed by ID; immutable after init
var table = [idCount]entry{
	Alacrity:       {"Alacrity", "ALA", combo.MustParseKey("EWW")},
	ChaosMeteor:    {"Chaos Meteor", "MET", combo.MustParseKey("EEW")},
	ColdSnap:       {"Cold Snap", "SNP", combo.MustParseKey("QQQ")},
	DeafeningBlast: {"Deafening Blast", "BLS", combo.MustParseKey("EQW")},
	EMP:            {"EMP", "EMP", combo.MustParseKey("WWW")},
	ForgeSpirit:    {"Forge Spirit", "FRG", combo.MustParseKey("EEQ")},
	GhostWalk:      {"Ghost Walk", "GHO", combo.MustParseKey("QQW")},
	IceWall:        {"Ice Wall", "ICE", combo.MustParseKey("EQQ")},
	SunStrike:      {"Sun Strike", "SUN", combo.MustParseKey("EEE")},
	Tornado:        {"Tornado", "TOR", combo.MustParseKey("QWW")},
}

// byKey is the reverse index used for diagnostics
var byKey = func() map[combo.Key]ID {
	m := make(map[combo.Key]ID, idCount)
	for i, e := range table {
		m[e.key] = ID(i)
	}
	return m
}()

// Count is the number of spells in the registry
const Count = int(idCount)

// Combo returns the orbs required to cast id
func Combo(id ID) combo.Key {
	return table[id].key
}

// Lookup returns the spell cast by key, if any
func Lookup(key combo.Key) (ID, bool) {
	id, ok := byKey[key]
	return id, ok
}

// All returns every spell ID in table order
func All() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Random picks a spell uniformly
func Random(rng *rand.Rand) ID {
	return ID(rng.Intn(Count))
}

// Short returns a three-letter tag for narrow cells
func (id ID) Short() string {
	if id >= idCount {
		return "???"
	}
	return table[id].short
}

// String returns the display name
func (id ID) String() string {
	if id >= idCount {
		return fmt.Sprintf("Spell(%d)", uint8(id))
	}
	return table[id].name
}
