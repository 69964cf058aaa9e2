package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/invoker/combo"
	"github.com/lixenwraith/invoker/constants"
	"github.com/lixenwraith/invoker/spell"
)

// Motion selects how live spells pick their fall speed
type Motion uint8

const (
	// MotionPerSpell moves each spell at the speed it spawned with
	MotionPerSpell Motion = iota
	// MotionShared moves every spell at the wave's current speed
	MotionShared
)

// WaveConfig tunes spawn cadence and acceleration for one mode
type WaveConfig struct {
	Interval  time.Duration
	SpeedStep float64
	Motion    Motion
}

// PlayWave is the normal-mode schedule
var PlayWave = WaveConfig{
	Interval:  constants.PlaySpawnInterval,
	SpeedStep: constants.PlaySpeedStep,
	Motion:    MotionPerSpell,
}

// ProWave is the pro-mode schedule
var ProWave = WaveConfig{
	Interval:  constants.ProSpawnInterval,
	SpeedStep: constants.ProSpeedStep,
	Motion:    MotionShared,
}

// Wave owns the live spells of one run and schedules their spawning and fall
type Wave struct {
	cfg     WaveConfig
	field   Field
	rng     *rand.Rand
	elapsed time.Duration
	speed   float64
	spells  []Spell
	spawned int
}

// NewWave creates an empty wave; the first Tick spawns immediately
func NewWave(cfg WaveConfig, field Field, rng *rand.Rand) (*Wave, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	return &Wave{
		cfg:    cfg,
		field:  field,
		rng:    rng,
		spells: make([]Spell, 0, 16),
	}, nil
}

// TickResult reports what happened during one Wave.Tick
type TickResult struct {
	Spawned  bool
	New      Spell // valid when Spawned
	Breached bool
	Breach   Spell // first spell found past the fail boundary
}

// Tick advances the wave by one frame of duration dt
// Spawns when the interval has elapsed or nothing is live, then moves every
// spell down; the scan stops at the first spell past the fail boundary
func (w *Wave) Tick(dt time.Duration) TickResult {
	var res TickResult

	w.elapsed += dt
	if w.elapsed > w.cfg.Interval || len(w.spells) == 0 {
		res.New = w.Spawn()
		res.Spawned = true
	}

	for i := range w.spells {
		s := &w.spells[i]
		switch w.cfg.Motion {
		case MotionShared:
			s.Y += w.speed
		default:
			s.Y += s.Speed
		}
		if s.Y > w.field.Height {
			res.Breached = true
			res.Breach = *s
			return res
		}
	}
	return res
}

// Spawn resets the interval, accelerates, and adds one random spell
func (w *Wave) Spawn() Spell {
	w.elapsed = 0
	w.speed += w.cfg.SpeedStep
	s := newSpell(spell.Random(w.rng), w.field.SpawnX(w.rng), w.speed)
	w.spells = append(w.spells, s)
	w.spawned++
	return s
}

// IndexOf returns the oldest live spell cast by key, or -1
func (w *Wave) IndexOf(key combo.Key) int {
	for i := range w.spells {
		if w.spells[i].Key == key {
			return i
		}
	}
	return -1
}

// Front returns the oldest live spell
func (w *Wave) Front() (Spell, bool) {
	if len(w.spells) == 0 {
		return Spell{}, false
	}
	return w.spells[0], true
}

// Remove clears the spell at index i, preserving spawn order
func (w *Wave) Remove(i int) Spell {
	s := w.spells[i]
	w.spells = append(w.spells[:i], w.spells[i+1:]...)
	return s
}

// Spells returns a copy of the live spells, oldest first
func (w *Wave) Spells() []Spell {
	out := make([]Spell, len(w.spells))
	copy(out, w.spells)
	return out
}

// Len returns the number of live spells
func (w *Wave) Len() int {
	return len(w.spells)
}

// Speed returns the current wave speed (the speed of the latest spawn)
func (w *Wave) Speed() float64 {
	return w.speed
}

// Spawned returns the total spawns of this run
func (w *Wave) Spawned() int {
	return w.spawned
}

// Field returns the field the wave runs on
func (w *Wave) Field() Field {
	return w.field
}
