package engine

import "time"

// TimeSource supplies wall-clock readings to the frame clock
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real system clock with its monotonic component
type SystemTime struct{}

// Now returns time.Now()
func (SystemTime) Now() time.Time {
	return time.Now()
}
