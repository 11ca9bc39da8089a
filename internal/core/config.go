package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Field dimensions are world units (pixels); frontends convert their own
// viewport (terminal cells, window pixels) before handing it over.
type RuntimeConfig struct {
	FieldW   float64 // Playfield width in world units
	FieldH   float64 // Playfield height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   480,
		FieldH:   640,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
