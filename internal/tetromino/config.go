package tetromino

import "github.com/vovakirdan/tetrotime/internal/core"

// Reference timing values.
const (
	DefaultSpawnDelay    = 3 // ticks that must pass before the next spawn
	DefaultRemovalMargin = 4 // rows below the canvas before a piece is dropped
)

// Config holds the tunables shared by boards and digit boards.
type Config struct {
	// SpawnDelay is the tick counter threshold; a digit board spawns its next
	// piece once the counter exceeds it, i.e. every SpawnDelay+1 ticks.
	SpawnDelay int

	// RemovalMargin is how far past the canvas bottom a piece may fall before
	// it is removed.
	RemovalMargin int

	// Background is the color the canvas is cleared with; any other color
	// blocks descent.
	Background core.Color
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		SpawnDelay:    DefaultSpawnDelay,
		RemovalMargin: DefaultRemovalMargin,
		Background:    core.Black,
	}
}
