package engine

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/invoker/combo"
)

const frame = 16 * time.Millisecond

func testField() Field {
	return Field{Width: 1024, Height: 1024, Margin: 72}
}

func newTestWave(t *testing.T, cfg WaveConfig) *Wave {
	t.Helper()
	w, err := NewWave(cfg, testField(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWave failed: %v", err)
	}
	return w
}

func TestFirstTickSpawns(t *testing.T) {
	w := newTestWave(t, PlayWave)
	res := w.Tick(frame)
	if !res.Spawned || w.Len() != 1 {
		t.Fatalf("Expected one spawn on first tick, got spawned=%v len=%d", res.Spawned, w.Len())
	}
	if w.Speed() != PlayWave.SpeedStep {
		t.Errorf("Expected speed %v, got %v", PlayWave.SpeedStep, w.Speed())
	}
}

func TestSpawnCadence(t *testing.T) {
	w := newTestWave(t, PlayWave)
	w.Tick(frame) // initial spawn

	// 62 frames of 16ms = 992ms, not yet past the 1s interval
	for i := 0; i < 62; i++ {
		if res := w.Tick(frame); res.Spawned {
			t.Fatalf("Unexpected spawn at frame %d", i)
		}
	}
	// 63rd frame pushes the accumulator to 1008ms
	if res := w.Tick(frame); !res.Spawned || w.Len() != 2 {
		t.Errorf("Expected second spawn after interval, spawned=%v len=%d", res.Spawned, w.Len())
	}
}

// Speed must never decrease between spawns within a run
func TestSpeedMonotonic(t *testing.T) {
	for _, cfg := range []WaveConfig{PlayWave, ProWave} {
		w := newTestWave(t, cfg)
		last := 0.0
		for i := 0; i < 20; i++ {
			s := w.Spawn()
			if s.Speed <= last {
				t.Errorf("Spawn %d speed %v not above %v", i, s.Speed, last)
			}
			last = s.Speed
		}
	}
}

func TestRespawnWhenEmpty(t *testing.T) {
	w := newTestWave(t, ProWave)
	w.Tick(frame)
	w.Remove(0)
	if w.Len() != 0 {
		t.Fatal("Expected empty wave after removal")
	}

	res := w.Tick(frame)
	if !res.Spawned || w.Len() != 1 {
		t.Error("Expected immediate respawn on empty wave")
	}
}

func TestPerSpellMotionFreezesSpeed(t *testing.T) {
	w := newTestWave(t, PlayWave)
	w.Tick(frame) // spawn at 0.5, moves 0.5
	w.Spawn()     // spawn at 1.0
	w.Tick(frame)

	spells := w.Spells()
	if spells[0].Y != 1.0 {
		t.Errorf("Expected first spell at 1.0, got %v", spells[0].Y)
	}
	if spells[1].Y != 1.0 {
		t.Errorf("Expected second spell at 1.0, got %v", spells[1].Y)
	}
}

func TestSharedMotionUsesWaveSpeed(t *testing.T) {
	w := newTestWave(t, ProWave)
	w.Tick(frame) // spawn at 0.3, moves 0.3
	w.Spawn()     // wave speed now 0.6
	w.Tick(frame)

	spells := w.Spells()
	if diff := spells[0].Y - 0.9; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected first spell at 0.9, got %v", spells[0].Y)
	}
	if diff := spells[1].Y - 0.6; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected second spell at 0.6, got %v", spells[1].Y)
	}
}

func TestBreachShortCircuits(t *testing.T) {
	w := newTestWave(t, PlayWave)
	w.Tick(frame)
	w.spells[0].Y = w.field.Height
	w.Spawn()
	before := w.spells[1].Y

	res := w.Tick(frame)
	if !res.Breached {
		t.Fatal("Expected breach")
	}
	if res.Breach.ID != w.spells[0].ID {
		t.Errorf("Expected oldest spell to breach")
	}
	if w.spells[1].Y != before {
		t.Error("Scan must stop at the first breaching spell")
	}
}

func TestSpawnWithinMargins(t *testing.T) {
	w := newTestWave(t, PlayWave)
	f := w.Field()
	for i := 0; i < 500; i++ {
		s := w.Spawn()
		if s.X < f.Margin || s.X >= f.Width-f.Margin {
			t.Fatalf("Spawn x %v outside [%v, %v)", s.X, f.Margin, f.Width-f.Margin)
		}
		if s.Y != 0 {
			t.Fatalf("Spawn y %v, expected top of field", s.Y)
		}
	}
}

func TestIndexOfOldestMatch(t *testing.T) {
	w := newTestWave(t, PlayWave)
	for i := 0; i < 30; i++ {
		w.Spawn()
	}
	target := w.spells[5].Key
	idx := w.IndexOf(target)
	if idx < 0 || idx > 5 || w.spells[idx].Key != target {
		t.Errorf("IndexOf returned %d", idx)
	}
	for i := 0; i < idx; i++ {
		if w.spells[i].Key == target {
			t.Errorf("IndexOf skipped older match at %d", i)
		}
	}

	empty := newTestWave(t, PlayWave)
	if empty.IndexOf(combo.Of(combo.Q, combo.Q, combo.Q)) != -1 {
		t.Error("Expected -1 on empty wave")
	}
}

func TestInvalidField(t *testing.T) {
	_, err := NewWave(PlayWave, Field{Width: 100, Height: 100, Margin: 60}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidField) {
		t.Errorf("Expected ErrInvalidField, got %v", err)
	}
}
