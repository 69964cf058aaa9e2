package engine

import "time"

// FrameClock measures the delta between consecutive frames
// Deltas are clamped to MaxFrameDelta; a suspended process resumes with
// at most one spawn interval's worth of accumulated time
type FrameClock struct {
	source TimeSource
	last   time.Time
	frames uint64
}

// MaxFrameDelta bounds a single reported frame delta
const MaxFrameDelta = 250 * time.Millisecond

// NewFrameClock starts a clock at the source's current time
func NewFrameClock(source TimeSource) *FrameClock {
	return &FrameClock{
		source: source,
		last:   source.Now(),
	}
}

// Tick returns the time elapsed since the previous Tick
func (c *FrameClock) Tick() time.Duration {
	now := c.source.Now()
	dt := now.Sub(c.last)
	c.last = now
	c.frames++

	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// Frames returns the number of ticks taken
func (c *FrameClock) Frames() uint64 {
	return c.frames
}
