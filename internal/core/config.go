package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Game-defined score, e.g. cells cleared
	Started  bool // The player has made the first move of this round
	GameOver bool // The round has ended
	Won      bool // The round ended in a win
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

// Round describes the board of a finished or abandoned round, for the result
// history.
type Round struct {
	Width    int
	Height   int
	Mines    int
	Revealed int
	Cheated  bool
}
