package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cast Chime Timing
const (
	CastSoundDuration = 220 * time.Millisecond
	CastSoundAttack   = 5 * time.Millisecond
	CastSoundRelease  = 180 * time.Millisecond
)

// Fault Buzz Timing
const (
	FaultSoundDuration = 150 * time.Millisecond
	FaultSoundAttack   = 5 * time.Millisecond
	FaultSoundRelease  = 40 * time.Millisecond
)

// Spawn Tick Timing
const (
	SpawnSoundDuration = 30 * time.Millisecond
	SpawnSoundAttack   = 2 * time.Millisecond
	SpawnSoundRelease  = 20 * time.Millisecond
)
