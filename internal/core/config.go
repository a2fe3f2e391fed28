package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The screen size is the frontend's grid (terminal cells); the simulation
// itself runs in fixed world units.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform after each tick.
type GameState struct {
	Score     int
	HighScore int
	Waiting   bool
	GameOver  bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Cues are the audio requests emitted during this tick, in order.
	Cues []Cue

	// Quit is set when the tick saw a quit request.
	Quit bool
}
