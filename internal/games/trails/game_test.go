package trails

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trails/internal/core"
	"github.com/vovakirdan/trails/internal/maze"
	"github.com/vovakirdan/trails/internal/registry"
)

// useConfig points the loader at a temp file with the given YAML.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "trails.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

// route returns the moves of a shortest path from -> to.
func route(t *testing.T, grid *maze.Grid, from, to maze.Coord) []core.Action {
	t.Helper()
	type step struct {
		prev maze.Coord
		act  core.Action
	}
	acts := map[maze.Direction]core.Action{
		maze.Up: core.ActionUp, maze.Down: core.ActionDown,
		maze.Left: core.ActionLeft, maze.Right: core.ActionRight,
	}
	came := map[maze.Coord]step{from: {}}
	queue := []maze.Coord{from}
	for len(queue) > 0 && queue[0] != to {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range maze.Directions {
			next := cur.Step(d)
			if _, seen := came[next]; seen || !grid.IsPath(next) {
				continue
			}
			came[next] = step{prev: cur, act: acts[d]}
			queue = append(queue, next)
		}
	}
	if _, ok := came[to]; !ok {
		t.Fatalf("no path from %v to %v", from, to)
	}
	var out []core.Action
	for c := to; c != from; c = came[c].prev {
		out = append([]core.Action{came[c].act}, out...)
	}
	return out
}

// walk feeds one move per tick and returns every cue emitted.
func walk(g *Game, moves []core.Action) []core.SoundCue {
	var cues []core.SoundCue
	in := core.NewInputFrame()
	for _, a := range moves {
		in.Clear()
		in.Set(a)
		cues = append(cues, g.Step(in).Cues...)
	}
	return cues
}

func idle(g *Game, ticks int) {
	in := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		g.Step(in)
	}
}

// clearLevel collects every gem then walks to the exit.
func clearLevel(t *testing.T, g *Game) []core.SoundCue {
	t.Helper()
	var cues []core.SoundCue
	for {
		lv := g.ctrl.Current()
		if lv.Remaining() == 0 {
			break
		}
		target := lv.Items()[0].Pos
		cues = append(cues, walk(g, route(t, lv.Grid(), lv.Player(), target))...)
	}
	lv := g.ctrl.Current()
	return append(cues, walk(g, route(t, lv.Grid(), lv.Player(), lv.Exit()))...)
}

func count(cues []core.SoundCue, want core.SoundCue) int {
	n := 0
	for _, c := range cues {
		if c == want {
			n++
		}
	}
	return n
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"trails", "trails_fit"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatal(err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestResetStartsLevelOne(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, 7)

	snap := g.Snapshot()
	if snap.Level != 1 || snap.Score != 0 || snap.Remaining != 5 {
		t.Fatalf("unexpected start: %+v", snap)
	}
	if snap.Rows != 21 || snap.Cols != 21 {
		t.Errorf("classic grid = %dx%d, want 21x21", snap.Rows, snap.Cols)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s", snap.State)
	}
}

func TestDeterminism(t *testing.T) {
	useConfig(t, "")
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	moves := []core.Action{core.ActionRight, core.ActionDown, core.ActionDown, core.ActionLeft, core.ActionUp}
	for i := 0; i < 20; i++ {
		walk(g1, moves)
		walk(g2, moves)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Maze != s2.Maze {
		t.Error("Maze mismatch")
	}
	if s1.Tick != s2.Tick || s1.Score != s2.Score || s1.Player != s2.Player || s1.Exit != s2.Exit {
		t.Errorf("Snapshot mismatch: %+v vs %+v", s1, s2)
	}

	g3 := newGame(t, 54321)
	if g3.Snapshot().Maze == s1.Maze {
		t.Error("different seeds produced the same maze")
	}
}

func TestClearLevelAdvances(t *testing.T) {
	useConfig(t, "transition:\n  advance_ms: 500\n  settle_ms: 250\n")
	g := newGame(t, 99)

	cues := clearLevel(t, g)
	if n := count(cues, core.CueCollect); n != 5 {
		t.Errorf("collect cues = %d, want 5", n)
	}
	if n := count(cues, core.CueLevelComplete); n != 1 {
		t.Fatalf("level complete cues = %d, want 1", n)
	}

	snap := g.Snapshot()
	if snap.State != StateTransitioning || snap.Score != 35 || snap.Gems != 5 {
		t.Fatalf("after clear: %+v", snap)
	}

	// Moves are ignored while the overlay is up.
	player := snap.Player
	walk(g, []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight})
	if g.Snapshot().Player != player {
		t.Error("player moved during transition")
	}

	idle(g, 60) // 1s at 60 ticks/s covers both delays
	snap = g.Snapshot()
	if snap.Level != 2 || snap.State != StatePlaying {
		t.Fatalf("expected level 2 playing, got %+v", snap)
	}
	if snap.Remaining != 7 || snap.Score != 35 {
		t.Errorf("level 2: remaining %d score %d", snap.Remaining, snap.Score)
	}
	if st := g.State(); st.Level != 2 || st.Gems != 5 {
		t.Errorf("State() = %+v", st)
	}
}

func TestRestartReportsFinishedRun(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, 3)

	lv := g.ctrl.Current()
	cues := walk(g, route(t, lv.Grid(), lv.Player(), lv.Items()[0].Pos))
	if count(cues, core.CueCollect) == 0 {
		t.Fatal("expected at least one gem")
	}
	before := g.State()

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)
	if res.Finished == nil {
		t.Fatal("restart should report the finished run")
	}
	if res.Finished.Score != before.Score || res.Finished.Gems != before.Gems {
		t.Errorf("Finished = %+v, want %+v", *res.Finished, before)
	}
	if res.State.Score != 0 || res.State.Level != 1 || res.State.Gems != 0 {
		t.Errorf("state after restart: %+v", res.State)
	}

	// A restart with nothing collected records nothing.
	res = g.Step(in)
	if res.Finished != nil {
		t.Errorf("empty run reported as finished: %+v", *res.Finished)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, 11)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	if !g.Step(in).State.Paused {
		t.Fatal("expected paused")
	}

	tick := g.Snapshot().Tick
	walk(g, []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight})
	if g.Snapshot().Tick != tick || g.Snapshot().State != StatePaused {
		t.Error("paused game advanced")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("pause overlay not rendered")
	}
}

func TestTooSmallWindow(t *testing.T) {
	useConfig(t, "")
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 30, ScreenH: 12, TickRate: 60})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}
	idle(g, 5)
	if g.Snapshot().Tick != 0 {
		t.Error("game advanced while the window was too small")
	}

	screen := core.NewScreen(30, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small overlay not rendered")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State after resize = %s", g.Snapshot().State)
	}
	if g.Snapshot().Level != 1 {
		t.Error("resize should not restart the game")
	}
}

func TestFitVariantSizesToTerminal(t *testing.T) {
	useConfig(t, "")
	g := NewFit()
	g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24, TickRate: 60})

	snap := g.Snapshot()
	if snap.Rows != 21 || snap.Cols != 39 {
		t.Errorf("fit grid = %dx%d, want 21x39", snap.Rows, snap.Cols)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s", snap.State)
	}

	// Growing the terminal resizes the maze on the next new game.
	g.Resize(120, 40)
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	snap = g.Snapshot()
	if snap.Rows != 37 || snap.Cols != 59 {
		t.Errorf("fit grid after resize = %dx%d, want 37x59", snap.Rows, snap.Cols)
	}
}

func TestRenderDrawsMaze(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, 21)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Score: 0", "Level: 1", "Gems: 0/5", PlayerGlyph, GemGlyph, ExitGlyph, WallGlyph} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	offX, offY := g.mazeOrigin(screen)
	p := g.Snapshot().Player
	if got := screen.GetCell(offX+p.Col*CellWidth, offY+p.Row); got.Rune != '(' || got.Color != core.ColorPlayer {
		t.Errorf("player cell = %+v", got)
	}
}

func TestBlockedNoticeExpires(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, 8)

	g.apply([]maze.Event{{Kind: maze.EventExitBlocked, Remaining: 3, Message: maze.BlockedMessage(3)}})
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Collect all 3 gems before reaching the exit!") {
		t.Fatal("blocked notice not rendered")
	}

	idle(g, 121)
	g.Render(screen)
	if strings.Contains(screen.String(), "Collect all") {
		t.Error("notice should expire after two seconds")
	}
}

func TestHugeTickRateIsClamped(t *testing.T) {
	useConfig(t, "")
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 8, ScreenW: 80, ScreenH: 24, TickRate: 2_000_000_000})

	if g.runtime.TickRate != maxTickRate {
		t.Fatalf("TickRate = %d, want %d", g.runtime.TickRate, maxTickRate)
	}
	if g.tickDuration() <= 0 {
		t.Fatal("tick duration must be positive")
	}

	g.apply([]maze.Event{{Kind: maze.EventExitBlocked, Remaining: 2, Message: maze.BlockedMessage(2)}})
	if want := g.tick + uint64(2*maxTickRate); g.noticeUntil != want {
		t.Errorf("noticeUntil = %d, want %d", g.noticeUntil, want)
	}
}

func TestEventLogRecordsMazeLevel(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.DebugLevel)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	eventLog{}.OnEvent(maze.Event{Kind: maze.EventLevelStarted, Level: 7, Score: 40, Remaining: 17})
	eventLog{}.OnEvent(maze.Event{Kind: maze.EventItemCollected, Level: 3, Score: 15, Remaining: 4})

	out := buf.String()
	for _, want := range []string{"level_started", "maze_level=7", "score=40", "gems=17", "item_collected", "maze_level=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
