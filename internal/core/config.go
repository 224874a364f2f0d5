package core

// RuntimeConfig contains configuration passed to the clock face at startup.
// The screen is measured in terminal cells; the canvas packs two pixel rows
// into every cell row.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for piece colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// CanvasSize returns the pixel dimensions backing a screen of this size.
func (c RuntimeConfig) CanvasSize() (width, height int) {
	return c.ScreenW, c.ScreenH * 2
}
