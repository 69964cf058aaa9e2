package audio

// SoundType identifies a feedback sound
type SoundType int

const (
	SoundCast SoundType = iota
	SoundFault
	SoundSpawn
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundCast:
		return "cast"
	case SoundFault:
		return "fault"
	case SoundSpawn:
		return "spawn"
	}
	return "unknown"
}
