// Package audio plays gameplay feedback through beep
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/invoker/constants"
	"github.com/lixenwraith/invoker/spell"
)

// SoundManager mixes feedback sounds into a single speaker stream
// Methods are safe for concurrent use and do nothing before Initialize
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	sink        func(beep.Streamer)
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.sink = nil
	sm.initialized = false
}

// SetEnabled mutes or unmutes all feedback
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	sm.cfg.Enabled = enabled
	sm.mu.Unlock()
}

// Enabled reports whether feedback is audible
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.cfg.Enabled
}

// play queues the sound from build if output is live
func (sm *SoundManager) play(build func(*AudioConfig) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.sink == nil || !sm.cfg.Enabled {
		return
	}
	sm.sink(build(sm.cfg))
}

// Cast plays the chime for a cleared spell
func (sm *SoundManager) Cast(id spell.ID) {
	sm.play(func(cfg *AudioConfig) beep.Streamer { return CreateCastSound(cfg, id) })
}

// Fault plays the buzz for a failed run
func (sm *SoundManager) Fault() {
	sm.play(CreateFaultSound)
}

// Spawn plays the tick for a new spell
func (sm *SoundManager) Spawn(spell.ID) {
	sm.play(CreateSpawnSound)
}
