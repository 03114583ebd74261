package maze

import (
	"fmt"
	"time"
)

// State is the controller's play state.
type State int

const (
	Playing State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "playing"
}

// Timing holds the two delays of a level transition.
type Timing struct {
	// Advance is the wait between clearing a level and building the next.
	Advance time.Duration
	// Settle is the wait between building the next level and accepting moves.
	Settle time.Duration
}

// DefaultTiming returns 1.5s before the next level and 1s before play resumes.
func DefaultTiming() Timing {
	return Timing{
		Advance: 1500 * time.Millisecond,
		Settle:  1000 * time.Millisecond,
	}
}

// Builder produces the layout of a level. *Sampler is the production Builder.
type Builder interface {
	Place(level int) (Layout, error)
}

type phase int

const (
	phaseIdle phase = iota
	phaseAdvance
	phaseSettle
)

// View is a read-only snapshot of the controller for renderers. Grid is
// shared with the controller and must not be modified.
type View struct {
	Ready     bool
	Grid      *Grid
	Player    Coord
	Exit      Coord
	Items     []Coord
	Level     int
	Score     int
	Remaining int
	State     State
	Blocked   bool
	Message   string
}

// Controller runs the game rules. It is not safe for concurrent use; every
// call must come from the same goroutine.
type Controller struct {
	builder   Builder
	timing    Timing
	level     *LevelState
	state     State
	phase     phase
	schedule  Schedule
	listeners []Listener
	blocked   bool
	message   string
}

// NewController returns a controller with no level built. Call NewGame to
// start playing.
func NewController(b Builder, timing Timing) *Controller {
	return &Controller{builder: b, timing: timing}
}

// Subscribe registers l to receive every event the controller emits.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// State returns the current play state.
func (c *Controller) State() State { return c.state }

// Current returns the level in play, or nil before the first NewGame.
func (c *Controller) Current() *LevelState { return c.level }

// Pending returns the time left before the next scheduled transition step.
func (c *Controller) Pending() time.Duration { return c.schedule.Remaining() }

// Level returns a snapshot of the level in play.
func (c *Controller) Level() View {
	v := View{State: c.state, Blocked: c.blocked, Message: c.message}
	if c.level == nil {
		return v
	}
	v.Ready = true
	v.Grid = c.level.grid
	v.Player = c.level.player
	v.Exit = c.level.exit
	v.Items = c.level.ItemPositions()
	v.Level = c.level.level
	v.Score = c.level.score
	v.Remaining = c.level.Remaining()
	return v
}

// NewGame discards any level and pending transition and starts over at
// level 1 with score 0. On error the controller is left without a level.
func (c *Controller) NewGame() ([]Event, error) {
	c.schedule.Cancel()
	c.phase = phaseIdle
	c.state = Playing
	c.blocked = false
	c.message = ""
	c.level = nil

	layout, err := c.builder.Place(1)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	c.level = NewLevelState(layout, 1, 0)

	return c.emit(nil, Event{Kind: EventGameReset, Level: 1, Score: 0, Remaining: c.level.Remaining()}), nil
}

// AttemptMove moves the player one cell in d. Moves into walls or off the
// grid are dropped without an event, as are moves while transitioning.
func (c *Controller) AttemptMove(d Direction) []Event {
	if c.level == nil || c.state != Playing {
		return nil
	}

	lv := c.level
	next := lv.player.Step(d)
	if !lv.grid.IsPath(next) {
		return nil
	}
	lv.player = next
	c.blocked = false

	var events []Event
	if it, ok := lv.collectAt(next); ok {
		lv.score += GemReward
		events = c.emit(events, Event{
			Kind:      EventItemCollected,
			Level:     lv.level,
			Score:     lv.score,
			Pos:       it.Pos,
			Remaining: lv.Remaining(),
		})
	}

	if next != lv.exit {
		return events
	}

	if n := lv.Remaining(); n > 0 {
		c.blocked = true
		return c.emit(events, Event{
			Kind:      EventExitBlocked,
			Level:     lv.level,
			Score:     lv.score,
			Pos:       next,
			Remaining: n,
			Message:   BlockedMessage(n),
		})
	}

	lv.score += LevelReward
	c.state = Transitioning
	c.phase = phaseAdvance
	c.message = CompletionMessage(lv.level)
	c.schedule.Start(c.timing.Advance)

	return c.emit(events, Event{
		Kind:    EventLevelComplete,
		Level:   lv.level,
		Score:   lv.score,
		Pos:     next,
		Message: c.message,
	})
}

// Advance moves the controller clock forward by dt and runs any transition
// step that comes due. A large dt may run both steps at once.
//
// If the next level cannot be built the controller stays transitioning and
// retries after another Advance delay.
func (c *Controller) Advance(dt time.Duration) ([]Event, error) {
	var events []Event
	for c.schedule.Armed() {
		fired, rest := c.schedule.Advance(dt)
		if !fired {
			break
		}
		dt = rest

		switch c.phase {
		case phaseAdvance:
			next := c.level.level + 1
			layout, err := c.builder.Place(next)
			if err != nil {
				c.schedule.Start(c.timing.Advance)
				return events, fmt.Errorf("build level %d: %w", next, err)
			}
			c.level = NewLevelState(layout, next, c.level.score)
			c.phase = phaseSettle
			c.schedule.Start(c.timing.Settle)
			events = c.emit(events, Event{
				Kind:      EventLevelStarted,
				Level:     next,
				Score:     c.level.score,
				Remaining: c.level.Remaining(),
			})
		case phaseSettle:
			c.phase = phaseIdle
			c.state = Playing
			c.message = ""
			events = c.emit(events, Event{
				Kind:      EventTransitionEnded,
				Level:     c.level.level,
				Score:     c.level.score,
				Remaining: c.level.Remaining(),
			})
		}
	}
	return events, nil
}

func (c *Controller) emit(events []Event, e Event) []Event {
	for _, l := range c.listeners {
		l.OnEvent(e)
	}
	return append(events, e)
}
