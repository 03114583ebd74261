package maze

import "fmt"

// EventKind identifies what happened inside the controller.
type EventKind int

const (
	// EventItemCollected: the player picked up a gem at Pos.
	EventItemCollected EventKind = iota
	// EventExitBlocked: the player reached the exit with Remaining gems left.
	EventExitBlocked
	// EventLevelComplete: the level was cleared; a transition is pending.
	EventLevelComplete
	// EventLevelStarted: a new level was built and is now current.
	EventLevelStarted
	// EventTransitionEnded: the controller is accepting moves again.
	EventTransitionEnded
	// EventGameReset: NewGame produced a fresh level 1.
	EventGameReset
)

func (k EventKind) String() string {
	switch k {
	case EventItemCollected:
		return "item_collected"
	case EventExitBlocked:
		return "exit_blocked"
	case EventLevelComplete:
		return "level_complete"
	case EventLevelStarted:
		return "level_started"
	case EventTransitionEnded:
		return "transition_ended"
	case EventGameReset:
		return "game_reset"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by the controller. Level and Score are
// the values after the event took effect.
type Event struct {
	Kind      EventKind
	Level     int
	Score     int
	Pos       Coord
	Remaining int
	Message   string
}

// Listener receives events as the controller emits them.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// CompletionMessage is the overlay text shown after clearing level.
func CompletionMessage(level int) string {
	return fmt.Sprintf("Level %d Complete! Preparing Level %d...", level, level+1)
}

// BlockedMessage is the notice shown when the exit is reached too early.
func BlockedMessage(remaining int) string {
	return fmt.Sprintf("Collect all %d gems before reaching the exit!", remaining)
}
