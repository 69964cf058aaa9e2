package engine

import "time"

// ManualTime is a TimeSource advanced explicitly by tests
type ManualTime struct {
	current time.Time
}

// NewManualTime creates a manual source frozen at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{current: start}
}

// Now returns the frozen time
func (m *ManualTime) Now() time.Time {
	return m.current
}

// Advance moves the frozen time forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
