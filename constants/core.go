package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the tick and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 256
)
