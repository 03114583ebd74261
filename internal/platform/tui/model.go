package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trails/internal/core"
	"github.com/vovakirdan/trails/internal/platform/audio"
	"github.com/vovakirdan/trails/internal/registry"
	"github.com/vovakirdan/trails/internal/storage"
)

// Options carries the collaborators a game session needs besides the game.
type Options struct {
	// Store records finished runs. Nil disables the leaderboard.
	Store *storage.Store
	// Sound plays cues emitted by the game. Nil means silent.
	Sound audio.Cuer
	// Logger receives session events. Nil discards them.
	Logger *log.Logger
	// Player is stored with each run; the SSH user for hosted sessions.
	Player string
	// Embedded marks a model hosted inside a session that has a menu. Back
	// then returns to the menu instead of quitting the program.
	Embedded bool
}

func (o Options) withDefaults() Options {
	if o.Sound == nil {
		o.Sound = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("13")).
	Padding(1, 2)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	showHelp   bool
	helpPaused bool // pause was requested on behalf of the help overlay
	quitting   bool
	backToMenu bool
	lastRunID  string
	tickGen    int64
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = true

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts.withDefaults(),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tickGen:    nextTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.toggleHelp()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.endRun("quit")
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.showHelp {
			m.toggleHelp()
			return m, nil
		}
		m.endRun("back")
		if m.opts.Embedded {
			m.backToMenu = true
		} else {
			m.quitting = true
		}
		return m, tea.Quit
	case m.showHelp:
		// Gameplay keys are swallowed while the help overlay is open.
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// toggleHelp shows or hides the key help, pausing the game underneath.
func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	switch {
	case m.showHelp && !m.gameState.Paused:
		m.inputFrame.Set(core.ActionPause)
		m.helpPaused = true
	case !m.showHelp && m.helpPaused:
		m.inputFrame.Set(core.ActionPause)
		m.helpPaused = false
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.opts.Sound.Play(cue)
	}

	if result.Finished != nil {
		m.saveRun(*result.Finished, "new game")
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// endRun records the run in progress when the player leaves it.
func (m *Model) endRun(reason string) {
	st := m.game.State()
	if st.Score == 0 && st.Gems == 0 {
		return
	}
	m.saveRun(st, reason)
}

func (m *Model) saveRun(st core.GameState, reason string) {
	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveRun(storage.RunResult{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  st.Score,
		Level:  st.Level,
		Gems:   st.Gems,
	})
	if err != nil {
		m.opts.Logger.Error("save run", "game", m.game.ID(), "err", err)
		return
	}
	m.lastRunID = id
	m.opts.Logger.Info("run recorded", "run", id, "reason", reason,
		"score", st.Score, "maze_level", st.Level, "gems", st.Gems)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".trails", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.showHelp {
		box := helpBoxStyle.Render("Trails controls\n\n" + m.help.View(m.keys.Keys()))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the ID of the most recently recorded run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// RunResult describes how a game program ended.
type RunResult struct {
	BackToMenu bool
	LastRunID  string
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (RunResult, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{BackToMenu: fm.BackToMenu(), LastRunID: fm.LastRunID()}, nil
}
