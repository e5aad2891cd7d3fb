package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to seed their random source.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second requested from the frame driver (default 60)
	Seed     int64  // RNG seed, 0 means time-based
	Player   string // Name recorded with finished runs
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current cumulative score
	Level     int  // Current level (1-based)
	BestLevel int  // Highest level reached this session
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the game is paused
	InMenu    bool // Whether the game is waiting on its start menu
	Disposed  bool // Whether the game stopped accepting input for good

	RunSeconds float64 // Seconds played in the current run, pauses excluded
}

// StepResult is returned by Game.Frame() after each simulation frame.
type StepResult struct {
	State GameState
}
