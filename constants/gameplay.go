package constants

import "time"

// Play Field (field units, independent of terminal size)
const (
	// DefaultFieldWidth is the horizontal extent of the play field
	DefaultFieldWidth = 1024.0

	// DefaultFieldHeight is the fail boundary; a spell below it ends the run
	DefaultFieldHeight = 1024.0

	// DefaultSpawnMargin keeps spawn columns away from the side walls
	DefaultSpawnMargin = 72.0
)

// Normal Mode Spawning
const (
	// PlaySpawnInterval is the time between spawns in normal mode
	PlaySpawnInterval = 1 * time.Second

	// PlaySpeedStep is added to the fall speed at every normal-mode spawn
	PlaySpeedStep = 0.5
)

// Pro Mode Spawning
const (
	// ProSpawnInterval is the time between spawns in pro mode
	ProSpawnInterval = 2 * time.Second

	// ProSpeedStep is added to the shared fall speed at every pro-mode spawn
	ProSpeedStep = 0.3

	// ProInitialPresses is the budget before any cast: three orbs and the commit
	ProInitialPresses = 4
)
