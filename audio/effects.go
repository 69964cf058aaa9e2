package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/invoker/constants"
	"github.com/lixenwraith/invoker/spell"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear gain; zero or less is silent
// math.Log2(0) is -Inf, so the silent flag is used instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// castPitch spreads spells over a pentatonic scale above A5
var castPitch = [...]float64{880.00, 987.77, 1108.73, 1318.51, 1479.98}

// CreateCastSound generates a two-partial chime; pitch varies by spell
func CreateCastSound(cfg *AudioConfig, id spell.ID) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := castPitch[int(id)%len(castPitch)]

	fund := NewOscillator(freq, constants.CastSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.CastSoundDuration, constants.CastSoundAttack, constants.CastSoundRelease, rate)

	over := NewOscillator(freq*2, constants.CastSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.CastSoundDuration, constants.CastSoundAttack, constants.CastSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundCast]*cfg.MasterVolume)
}

// CreateFaultSound generates a short harsh buzz for a failed run
func CreateFaultSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, constants.FaultSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.FaultSoundDuration, constants.FaultSoundAttack, constants.FaultSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundFault]*cfg.MasterVolume)
}

// CreateSpawnSound generates a faint noise tick when a spell appears
func CreateSpawnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.SpawnSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.SpawnSoundDuration, constants.SpawnSoundAttack, constants.SpawnSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundSpawn]*cfg.MasterVolume)
}
