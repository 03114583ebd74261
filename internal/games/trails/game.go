// Package trails adapts the maze core to the platform's Game interface.
// Two variants are registered: a classic fixed-size maze and one that grows
// to fill the terminal.
package trails

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trails/internal/config"
	"github.com/vovakirdan/trails/internal/core"
	"github.com/vovakirdan/trails/internal/maze"
	"github.com/vovakirdan/trails/internal/registry"
)

// Layout constants.
const (
	CellWidth = 2 // screen columns per maze cell
	ChromeH   = 2 // HUD line above the maze, hint line below
)

const noticeDuration = 2 * time.Second

// maxTickRate keeps one tick at least a millisecond long.
const maxTickRate = 1000

// Variant selects how the grid is sized.
type Variant int

const (
	VariantClassic Variant = iota // size from config (21x21 by default)
	VariantFit                    // largest odd grid that fits the terminal
)

// configPath stores the custom config path set via CLI
var configPath string

// logger receives game events; silent until SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used for level transitions and placement failures.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("trails", func() registry.Game {
		return New()
	})
	registry.Register("trails_fit", func() registry.Game {
		return NewFit()
	})
}

// Game runs one maze session on top of maze.Controller.
type Game struct {
	variant Variant
	cfg     config.TrailsConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	ctrl    *maze.Controller

	rows, cols int
	tick       uint64
	paused     bool
	tooSmall   bool

	gems        int // collected this run
	levelGems   int // gems the current level started with
	notice      string
	noticeUntil uint64
	burstFrom   uint64 // tick the last level was cleared on
	cues        []core.SoundCue
}

// New creates the classic variant.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewFit creates the terminal-sized variant.
func NewFit() *Game {
	return &Game{variant: VariantFit}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantFit {
		return "trails_fit"
	}
	return "trails"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantFit {
		return "Trails: Fit to Terminal"
	}
	return "Trails: Classic"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.variant == VariantFit {
		return "A maze as large as your terminal allows"
	}
	return "Collect every gem, then find the exit"
}

// Reset loads config, reseeds the RNG and starts a new game at level 1.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	switch {
	case cfg.TickRate <= 0:
		cfg.TickRate = core.DefaultConfig().TickRate
	case cfg.TickRate > maxTickRate:
		cfg.TickRate = maxTickRate
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.cfg = loadConfig()
	g.ctrl = nil
	g.tick = 0
	g.paused = false
	g.newGame()
}

func loadConfig() config.TrailsConfig {
	cfg, err := config.LoadTrails(configPath)
	if err != nil {
		logger.Warn("using default maze config", "err", err)
		return config.DefaultTrailsConfig()
	}
	logger.Debug("maze config loaded", "source", cfg.Source)
	return cfg
}

// gridSize returns the maze dimensions for the current variant and screen.
func (g *Game) gridSize() (int, int) {
	if g.variant == VariantFit || g.cfg.Grid.FitTerminal {
		return config.FitGrid(g.runtime.ScreenW, g.runtime.ScreenH, CellWidth, ChromeH)
	}
	return g.cfg.Grid.Rows, g.cfg.Grid.Cols
}

// newGame starts over at level 1, keeping the RNG stream. The controller is
// rebuilt only when the grid size changed.
func (g *Game) newGame() {
	g.gems = 0
	g.notice = ""
	g.noticeUntil = 0

	rows, cols := g.gridSize()
	if g.ctrl == nil || rows != g.rows || cols != g.cols {
		sampler, err := maze.NewSampler(rows, cols, g.rng, maze.WithMaxAttempts(g.cfg.Sampling.MaxAttempts))
		if err != nil {
			logger.Error("cannot size maze", "rows", rows, "cols", cols, "err", err)
			return
		}
		g.rows, g.cols = rows, cols
		g.ctrl = maze.NewController(sampler, maze.Timing{
			Advance: g.cfg.Transition.AdvanceDelay(),
			Settle:  g.cfg.Transition.SettleDelay(),
		})
		g.ctrl.Subscribe(eventLog{})
	}

	events, err := g.ctrl.NewGame()
	if err != nil {
		logger.Warn("placement failed", "maze_level", 1, "err", err)
	}
	g.apply(events)
	g.checkSize()
}

// Resize adapts to a new terminal size without losing progress. The fit
// variant picks up the new size on the next new game.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.checkSize()
}

func (g *Game) checkSize() {
	g.tooSmall = g.runtime.ScreenW < g.cols*CellWidth || g.runtime.ScreenH < g.rows+ChromeH
}

func (g *Game) tickDuration() time.Duration {
	return time.Second / time.Duration(g.runtime.TickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil
	var finished *core.GameState

	if in.Has(core.ActionRestart) {
		if st := g.State(); st.Score > 0 || st.Gems > 0 {
			finished = &st
		}
		g.paused = false
		g.newGame()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.ctrl == nil {
		return core.StepResult{State: g.State(), Finished: finished}
	}

	g.tick++

	for _, a := range in.Directions() {
		if dir, ok := toDirection(a); ok {
			g.apply(g.ctrl.AttemptMove(dir))
		}
	}

	events, err := g.ctrl.Advance(g.tickDuration())
	if err != nil {
		logger.Warn("placement failed, retrying", "err", err)
	}
	g.apply(events)

	if g.notice != "" && g.tick >= g.noticeUntil {
		g.notice = ""
	}

	return core.StepResult{State: g.State(), Cues: g.cues, Finished: finished}
}

func toDirection(a core.Action) (maze.Direction, bool) {
	switch a {
	case core.ActionUp:
		return maze.Up, true
	case core.ActionDown:
		return maze.Down, true
	case core.ActionLeft:
		return maze.Left, true
	case core.ActionRight:
		return maze.Right, true
	}
	return 0, false
}

// apply turns controller events into cues and on-screen notices.
func (g *Game) apply(events []maze.Event) {
	for _, e := range events {
		switch e.Kind {
		case maze.EventItemCollected:
			g.gems++
			g.cues = append(g.cues, core.CueCollect)
		case maze.EventExitBlocked:
			g.notice = e.Message
			g.noticeUntil = g.tick + uint64(noticeDuration/g.tickDuration())
			g.cues = append(g.cues, core.CueBlocked)
		case maze.EventLevelComplete:
			g.notice = ""
			g.burstFrom = g.tick
			g.cues = append(g.cues, core.CueLevelComplete)
		case maze.EventLevelStarted, maze.EventGameReset:
			g.levelGems = e.Remaining
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Gems: g.gems, Paused: g.paused}
	if g.ctrl != nil {
		v := g.ctrl.Level()
		st.Score = v.Score
		st.Level = v.Level
	}
	return st
}

// eventLog writes every controller event to the package logger.
type eventLog struct{}

func (eventLog) OnEvent(e maze.Event) {
	switch e.Kind {
	case maze.EventLevelStarted, maze.EventLevelComplete, maze.EventGameReset:
		logger.Info(e.Kind.String(), "maze_level", e.Level, "score", e.Score, "gems", e.Remaining)
	default:
		logger.Debug(e.Kind.String(), "maze_level", e.Level, "score", e.Score, "pos", e.Pos, "remaining", e.Remaining)
	}
}
