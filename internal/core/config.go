package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int // Screen width in characters
	ScreenH    int // Screen height in characters
	StartLevel int // 1-based level to start on; clamped by the game
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		StartLevel: 1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level      int  // Selected level, 1-based
	LevelCount int  // Levels in the catalog
	Solved     bool // Current level is solved and waiting for Confirm
	GameOver   bool // The player quit; no further input is applied
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State   GameState
	Changed bool // The frame caused a state transition
	Moved   bool // The player changed position
	Pushed  bool // A crate was pushed
}
