package trails

import "github.com/vovakirdan/trails/internal/maze"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateTransitioning GameStateType = "transitioning"
	StatePaused        GameStateType = "paused"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	Gems      int // collected this run
	Remaining int // gems left on this level
	Rows      int
	Cols      int
	Player    maze.Coord
	Exit      maze.Coord
	Items     []maze.Coord
	Maze      string
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.ctrl != nil && g.ctrl.State() == maze.Transitioning:
		state = StateTransitioning
	}

	snap := Snapshot{
		Tick:  g.tick,
		Gems:  g.gems,
		Rows:  g.rows,
		Cols:  g.cols,
		State: state,
	}
	if g.ctrl == nil {
		return snap
	}

	v := g.ctrl.Level()
	snap.Level = v.Level
	snap.Score = v.Score
	snap.Remaining = v.Remaining
	snap.Player = v.Player
	snap.Exit = v.Exit
	snap.Items = v.Items
	if v.Grid != nil {
		snap.Maze = v.Grid.String()
	}
	return snap
}
