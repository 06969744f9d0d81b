package core

// RuntimeConfig is handed to a game on Reset.
// Games size themselves to the screen and seed their RNG from it.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 asks the platform to pick one
}

// DefaultConfig returns an 80x24, 60 tick/s configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the duration of one tick in seconds.
// A non-positive tick rate falls back to 60.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Events describes what happened during the tick, one line each,
	// for the platform to log.
	Events []string
}

// RunSummary describes a finished run for the score database.
type RunSummary struct {
	Score  int
	Kills  int
	Ticks  uint64
	ArenaW int // Final arena size in world units, rounded
	ArenaH int
}
