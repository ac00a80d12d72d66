package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// NoWinner is the Winner value while a round is running or when nobody survived.
const NoWinner = -1

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Players    int    // Combatants in the round
	Bots       int    // Combatants driven by the autopilot
	Shots      int    // Projectiles fired this round
	Current    int    // Index of the combatant whose turn it is
	Winner     int    // Index of the surviving combatant, or NoWinner
	WinnerName string // Display name of the winner
	GameOver   bool   // Whether the round has ended
	Paused     bool   // Whether the game is paused
	Ticks      uint64 // Simulation ticks since the round started
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Quit  bool // The input collaborator asked to leave the game
}
