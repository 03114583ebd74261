package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trails/internal/core"
	"github.com/vovakirdan/trails/internal/storage"
)

type stubGame struct {
	frames   []core.InputFrame
	state    core.GameState
	finished *core.GameState
	cues     []core.SoundCue
	resets   int
	resized  [2]int
}

func (g *stubGame) ID() string                { return "stub" }
func (g *stubGame) Title() string             { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)  { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)   { dst.Clear(); dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState     { return g.state }
func (g *stubGame) Resize(w, h int)           { g.resized = [2]int{w, h} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	res := core.StepResult{State: g.state, Cues: g.cues, Finished: g.finished}
	g.cues, g.finished = nil, nil
	return res
}

type recordCuer struct{ played []core.SoundCue }

func (c *recordCuer) Play(cue core.SoundCue) { c.played = append(c.played, cue) }

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(game *stubGame, opts Options) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
	return NewModel(game, cfg, opts)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg{Gen: m.tickGen})
	return m
}

func TestModelInitResetsGame(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should start the tick loop")
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, runeKey('d'))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m)
	m = tick(t, m)

	if len(game.frames) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(game.frames))
	}
	dirs := game.frames[0].Directions()
	if len(dirs) != 2 || dirs[0] != core.ActionRight || dirs[1] != core.ActionDown {
		t.Errorf("first frame directions = %v, want [right down]", dirs)
	}
	if len(game.frames[1].Directions()) != 0 {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	m, cmd := send(t, m, TickMsg{Gen: m.tickGen + 1000})
	if cmd != nil || len(game.frames) != 0 {
		t.Error("tick from another loop should be ignored")
	}
	tick(t, m)
	if len(game.frames) != 1 {
		t.Errorf("game stepped %d times, want 1", len(game.frames))
	}
}

func TestModelPlaysCues(t *testing.T) {
	game := &stubGame{cues: []core.SoundCue{core.CueCollect, core.CueLevelComplete}}
	cuer := &recordCuer{}
	m := newTestModel(game, Options{Sound: cuer})

	tick(t, m)

	if len(cuer.played) != 2 || cuer.played[1] != core.CueLevelComplete {
		t.Errorf("played = %v", cuer.played)
	}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	store := testStore(t)
	game := &stubGame{finished: &core.GameState{Score: 35, Level: 2, Gems: 5}}
	m := newTestModel(game, Options{Store: store, Player: "alice"})

	m = tick(t, m)

	if m.LastRunID() == "" {
		t.Fatal("finished run was not recorded")
	}
	entry, err := store.RunByID(m.LastRunID())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if entry.GameID != "stub" || entry.Player != "alice" || entry.Score != 35 || entry.Level != 2 || entry.Gems != 5 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestModelQuitRecordsRunInProgress(t *testing.T) {
	store := testStore(t)
	game := &stubGame{state: core.GameState{Score: 15, Level: 1, Gems: 3}}
	m := newTestModel(game, Options{Store: store})

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 15 {
		t.Errorf("scores = %+v, want one run of 15", scores)
	}
}

func TestModelQuitSkipsEmptyRun(t *testing.T) {
	store := testStore(t)
	m := newTestModel(&stubGame{}, Options{Store: store})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("empty run should not be recorded, got %+v", scores)
	}
}

func TestModelBack(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	standalone, _ := send(t, newTestModel(&stubGame{}, Options{}), esc)
	if standalone.BackToMenu() || !standalone.quitting {
		t.Error("standalone back should quit")
	}

	embedded, _ := send(t, newTestModel(&stubGame{}, Options{Embedded: true}), esc)
	if !embedded.BackToMenu() {
		t.Error("embedded back should return to the menu")
	}
}

func TestModelHelpPausesGame(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, runeKey('?'))
	if !m.showHelp {
		t.Fatal("help should be shown")
	}
	m, _ = send(t, m, runeKey('w'))
	m = tick(t, m)
	if !game.frames[0].Has(core.ActionPause) {
		t.Error("opening help should pause the game")
	}
	if game.frames[0].Has(core.ActionUp) {
		t.Error("movement should be swallowed while help is open")
	}

	// Esc closes the overlay instead of leaving the game.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp || m.quitting {
		t.Fatal("esc should only close the help overlay")
	}
	tick(t, m)
	if !game.frames[1].Has(core.ActionPause) {
		t.Error("closing help should resume the game")
	}
}

func TestModelHelpKeepsUserPause(t *testing.T) {
	game := &stubGame{state: core.GameState{Paused: true}}
	m := newTestModel(game, Options{})
	m = tick(t, m)

	m, _ = send(t, m, runeKey('?'))
	m, _ = send(t, m, runeKey('?'))
	tick(t, m)

	if game.frames[1].Has(core.ActionPause) {
		t.Error("help should not toggle a pause the player set")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 0 {
		t.Error("a Resizer should not be reset on resize")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&stubGame{}, Options{})
	if got := stripANSI(m.View()); got[:4] != "stub" {
		t.Errorf("View() starts with %q", got[:4])
	}
}
