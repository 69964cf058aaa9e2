package audio

import (
	"github.com/lixenwraith/invoker/constants"
	"github.com/lixenwraith/invoker/settings"
)

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.6,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundCast:  0.8,
			SoundFault: 0.6,
			SoundSpawn: 0.25,
		},
	}
}

// ConfigFromSettings applies the user's sound section to the default mix
func ConfigFromSettings(s settings.Sound) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = s.Enabled
	cfg.MasterVolume = clamp01(s.Volume)
	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
