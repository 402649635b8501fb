package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic behavior.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for per-region visual detail
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of an expedition.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Distinct locations discovered
	GameOver bool // Whether the expedition is complete
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input event.
type StepResult struct {
	State GameState
}
