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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based), 0 if the game has no levels
	Gems     int  // Gems collected during the run
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// SoundCue is a fire-and-forget request for the platform to play an effect.
// Games never wait on playback; a platform without audio drops cues.
type SoundCue int

const (
	CueNone SoundCue = iota
	CueCollect
	CueLevelComplete
	CueBlocked
)

// String returns the cue name used in logs.
func (c SoundCue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueLevelComplete:
		return "level_complete"
	case CueBlocked:
		return "blocked"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []SoundCue
	// Finished carries the final state of a run that ended during this step
	// (a new game was started over it). Nil when no run ended.
	Finished *GameState
}
