package trails

import (
	"fmt"

	"github.com/vovakirdan/trails/internal/core"
	"github.com/vovakirdan/trails/internal/maze"
)

// Two-column glyphs for maze cells.
const (
	WallGlyph   = "██"
	PlayerGlyph = "()"
	GemGlyph    = "<>"
	ExitGlyph   = "[]"
)

const hint = "arrows/wasd/hjkl move  r new game  p pause  ? help"

var sparkles = []rune{'*', '+', '·', '✦'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ctrl == nil {
		g.renderOverlay(dst, core.ColorNotice, "Maze unavailable", "Check the log for details")
		return
	}

	v := g.ctrl.Level()
	g.renderHUD(dst, v)

	if g.tooSmall {
		g.renderOverlay(dst, core.ColorNotice, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", g.cols*CellWidth, g.rows+ChromeH))
		return
	}
	if !v.Ready {
		return
	}

	offX, offY := g.mazeOrigin(dst)
	g.renderMaze(dst, v, offX, offY)

	footer := offY + v.Grid.Rows()
	if g.notice != "" {
		dst.DrawTextCentered(footer, g.notice, core.ColorNotice)
	} else {
		dst.DrawTextCentered(footer, hint, core.ColorGray)
	}

	switch {
	case v.State == maze.Transitioning:
		g.renderSparkles(dst)
		g.renderOverlay(dst, core.ColorOverlay, v.Message, fmt.Sprintf("Score: %d", v.Score))
	case g.paused:
		g.renderOverlay(dst, core.ColorHUD, "Paused", "Press P to continue")
	}
}

// mazeOrigin returns the screen position of grid cell (0,0).
func (g *Game) mazeOrigin(dst *core.Screen) (int, int) {
	r := core.CenteredRect(dst.Width(), dst.Height()-ChromeH, g.cols*CellWidth, g.rows)
	return max(r.X, 0), 1
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen, v maze.View) {
	found := g.levelGems - v.Remaining
	hud := fmt.Sprintf(" Trails | Score: %d  Level: %d  Gems: %d/%d", v.Score, v.Level, found, g.levelGems)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
}

func (g *Game) renderMaze(dst *core.Screen, v maze.View, offX, offY int) {
	grid := v.Grid
	put := func(c maze.Coord, glyph string, color core.Color) {
		dst.DrawTextColored(offX+c.Col*CellWidth, offY+c.Row, glyph, color)
	}

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if grid.At(maze.C(r, c)) == maze.Wall {
				put(maze.C(r, c), WallGlyph, core.ColorWall)
			}
		}
	}

	exitColor := core.ColorExit
	if v.Remaining > 0 {
		exitColor = core.ColorGray
	}
	put(v.Exit, ExitGlyph, exitColor)

	for _, it := range v.Items {
		put(it, GemGlyph, core.ColorGem)
	}
	put(v.Player, PlayerGlyph, core.ColorPlayer)
}

// renderSparkles scatters a few glyphs around the screen after a level
// clear. Positions derive from the tick so replays render identically.
func (g *Game) renderSparkles(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}
	age := g.tick - g.burstFrom
	for i := uint64(0); i < 24; i++ {
		seed := (i+1)*2654435761 + age/4*40503
		x := int(seed % uint64(w))
		y := 1 + int((seed/uint64(w))%uint64(max(h-ChromeH, 1)))
		glyph := sparkles[(i+age/3)%uint64(len(sparkles))]
		color := core.ColorBrightYellow
		if i%2 == 1 {
			color = core.ColorBrightMagenta
		}
		dst.SetColored(x, y, glyph, color)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, line1, color)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
