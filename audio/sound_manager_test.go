package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/invoker/settings"
	"github.com/lixenwraith/invoker/spell"
)

// capture installs a sink that records queued streamers
func capture(sm *SoundManager) *[]beep.Streamer {
	var got []beep.Streamer
	sm.sink = func(s beep.Streamer) { got = append(got, s) }
	return &got
}

// TestSoundManagerGracefulDegradation verifies feedback is safe without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("feedback panicked without initialization: %v", r)
		}
	}()

	sm.Cast(spell.Tornado)
	sm.Fault()
	sm.Spawn(spell.EMP)
	sm.Cleanup()
}

func TestSoundManagerQueues(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())
	got := capture(sm)

	sm.Cast(spell.IceWall)
	sm.Fault()
	sm.Spawn(spell.ColdSnap)

	if len(*got) != 3 {
		t.Fatalf("queued %d sounds, want 3", len(*got))
	}
	for i, s := range *got {
		if s == nil {
			t.Errorf("sound %d is nil", i)
		}
	}
}

func TestSoundManagerMuted(t *testing.T) {
	sm := NewSoundManager(ConfigFromSettings(settings.Sound{Enabled: false, Volume: 0.5}))
	got := capture(sm)

	sm.Cast(spell.IceWall)
	if len(*got) != 0 {
		t.Fatalf("muted manager queued %d sounds", len(*got))
	}

	sm.SetEnabled(true)
	if !sm.Enabled() {
		t.Fatal("SetEnabled(true) ignored")
	}
	sm.Fault()
	if len(*got) != 1 {
		t.Errorf("unmuted manager queued %d sounds, want 1", len(*got))
	}
}

func TestConfigFromSettings(t *testing.T) {
	tests := []struct {
		in   settings.Sound
		want float64
	}{
		{settings.Sound{Enabled: true, Volume: 0.3}, 0.3},
		{settings.Sound{Enabled: true, Volume: -1}, 0},
		{settings.Sound{Enabled: false, Volume: 7}, 1},
	}

	for _, tt := range tests {
		cfg := ConfigFromSettings(tt.in)
		if cfg.MasterVolume != tt.want || cfg.Enabled != tt.in.Enabled {
			t.Errorf("ConfigFromSettings(%+v) = %+v", tt.in, cfg)
		}
		if cfg.SampleRate != DefaultAudioConfig().SampleRate {
			t.Errorf("sample rate = %d", cfg.SampleRate)
		}
	}
}

func TestSoundTypeString(t *testing.T) {
	if SoundCast.String() != "cast" || SoundType(42).String() != "unknown" {
		t.Errorf("names: %s %s", SoundCast, SoundType(42))
	}
}
