package modes

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lixenwraith/invoker/engine"
	"github.com/lixenwraith/invoker/settings"
	"github.com/lixenwraith/invoker/spell"
)

func TestPlayWrongComboEndsRun(t *testing.T) {
	rec := &recorder{}
	m := machineWithFront(t, KindPlay, spell.Alacrity, WithFeedback(rec))
	*rec = recorder{}

	// Q W E is Deafening Blast; the only live spell needs E W W
	press(t, m, KeyQuas, KeyWex, KeyExort, KeyInvoke)

	if m.Kind() != KindGameOver {
		t.Fatalf("Kind() = %s, want game-over", m.Kind())
	}
	snap := m.Snapshot()
	if snap.Score != 0 {
		t.Errorf("Score = %d, want 0", snap.Score)
	}
	if !strings.Contains(snap.Diagnostic, "Deafening Blast") {
		t.Errorf("Diagnostic = %q, want the cast spell named", snap.Diagnostic)
	}
	if rec.faults != 1 {
		t.Errorf("faults = %d, want 1", rec.faults)
	}
}

func TestPlayCastClearsSpell(t *testing.T) {
	rec := &recorder{}
	m := machineWithFront(t, KindPlay, spell.Alacrity, WithFeedback(rec))
	*rec = recorder{}

	// Any ordering of the multiset casts it
	press(t, m, KeyWex, KeyExort, KeyWex, KeyInvoke)

	if m.Kind() != KindPlay {
		t.Fatalf("Kind() = %s, want play", m.Kind())
	}
	snap := m.Snapshot()
	if snap.Score != 1 {
		t.Errorf("Score = %d, want 1", snap.Score)
	}
	if len(snap.Spells) != 0 {
		t.Errorf("live spells = %d, want 0", len(snap.Spells))
	}
	if len(rec.casts) != 1 || rec.casts[0] != spell.Alacrity {
		t.Errorf("casts = %v", rec.casts)
	}
	if len(snap.Buffer) != 3 {
		t.Errorf("buffer cleared by commit: %v", snap.Buffer)
	}

	// Empty field respawns on the next frame
	mustUpdate(t, m, frame)
	if got := len(m.Snapshot().Spells); got != 1 {
		t.Errorf("after respawn live spells = %d, want 1", got)
	}
	if len(rec.spawns) != 1 {
		t.Errorf("spawns = %d, want 1", len(rec.spawns))
	}
}

func TestPlayShortCommit(t *testing.T) {
	m := machineWithFront(t, KindPlay, spell.ColdSnap)
	press(t, m, KeyQuas, KeyInvoke)

	if m.Kind() != KindGameOver {
		t.Fatalf("Kind() = %s, want game-over", m.Kind())
	}
	if d := m.Snapshot().Diagnostic; d != "cast needs 3 orbs, had 1" {
		t.Errorf("Diagnostic = %q", d)
	}
}

func TestPlayOrbsBeforeFirstFrame(t *testing.T) {
	m := newTestMachine(t, 5, WithInitial(KindPlay))
	press(t, m, KeyQuas, KeyQuas, KeyQuas, KeyQuas)
	if got := len(m.Snapshot().Buffer); got != 3 {
		t.Errorf("buffer len = %d, want 3", got)
	}
	if m.Kind() != KindPlay {
		t.Errorf("Kind() = %s", m.Kind())
	}
}

func TestPlayBreach(t *testing.T) {
	s := settings.Default()
	s.Field = engine.Field{Width: 200, Height: 20, Margin: 10}

	m, err := NewMachine(s, rand.New(rand.NewSource(9)), WithInitial(KindPlay))
	if err != nil {
		t.Fatal(err)
	}

	var runID string
	for i := 0; i < 500 && m.Kind() == KindPlay; i++ {
		runID = m.Snapshot().RunID
		mustUpdate(t, m, frame)
	}

	if m.Kind() != KindGameOver {
		t.Fatalf("Kind() = %s after 500 frames, want game-over", m.Kind())
	}
	snap := m.Snapshot()
	if !strings.HasSuffix(snap.Diagnostic, "reached the ground") {
		t.Errorf("Diagnostic = %q", snap.Diagnostic)
	}
	if snap.Elapsed <= 0 {
		t.Errorf("Elapsed = %v, want > 0", snap.Elapsed)
	}
	if runID == "" || snap.RunID != runID {
		t.Errorf("RunID = %q, want %q", snap.RunID, runID)
	}
}

func TestPlaySpeedReported(t *testing.T) {
	m := newTestMachine(t, 2, WithInitial(KindPlay))
	mustUpdate(t, m, frame)
	if got := m.Snapshot().Speed; !approx(got, engine.PlayWave.SpeedStep) {
		t.Errorf("Speed = %g, want %g", got, engine.PlayWave.SpeedStep)
	}
}

func TestNewRunPerRetry(t *testing.T) {
	m := machineWithFront(t, KindPlay, spell.EMP)
	first := m.Snapshot().RunID

	press(t, m, KeyQuas, KeyInvoke) // short cast ends the run
	press(t, m, KeyReturn)          // try again

	if m.Kind() != KindPlay {
		t.Fatalf("Kind() = %s, want play", m.Kind())
	}
	snap := m.Snapshot()
	if snap.Score != 0 || len(snap.Buffer) != 0 {
		t.Errorf("retry carried state: score %d buffer %v", snap.Score, snap.Buffer)
	}
	if snap.RunID == first {
		t.Error("retry reused run id")
	}
}
