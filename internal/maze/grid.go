// Package maze implements the procedural maze core of Trails: carving a
// perfect maze, placing the start, exit and gems, and the turn-based rules
// that move the player, collect gems and advance levels.
//
// The package is pure: it knows nothing about terminals, audio or storage.
// Randomness is injected and time is advanced by the caller.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// MinDimension is the smallest grid side the carver accepts.
const MinDimension = 5

// ErrInvalidDimensions is returned when a grid side is even or too small.
var ErrInvalidDimensions = errors.New("maze: grid dimensions must be odd and at least 5")

// Cell is the terrain tag of a grid position.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// String returns the single-character form used by ParseGrid and Grid.String.
func (c Cell) String() string {
	if c == Path {
		return "."
	}
	return "#"
}

// Direction is a movement intent.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the four directions in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the row and column offset of one step in d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Coord is a (row, col) grid position.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// OddAligned reports whether both components are odd. Only odd-aligned
// coordinates are cell centers; even ones are connectors or border.
func (c Coord) OddAligned() bool {
	return c.Row%2 == 1 && c.Col%2 == 1
}

// Step returns the coordinate one cell away in direction d.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ValidateDimensions checks that rows and cols are odd and at least MinDimension.
func ValidateDimensions(rows, cols int) error {
	if rows < MinDimension || cols < MinDimension || rows%2 == 0 || cols%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return nil
}

// Grid is a rows x cols array of cells. A Grid handed out by this package
// is never modified after carving; it has no exported mutators.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// newGrid allocates a grid filled with walls.
func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols), // Wall is the zero value
	}
}

// ParseGrid builds a grid from text rows where '#' is a wall and any other
// rune is a path. Rows must all have the same length.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, errors.New("maze: empty grid")
	}
	cols := len([]rune(lines[0]))
	g := newGrid(len(lines), cols)
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("maze: row %d has %d cells, expected %d", r, len(runes), cols)
		}
		for c, ch := range runes {
			if ch != '#' {
				g.set(C(r, c), Path)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Interior reports whether c lies strictly inside the outer border ring.
func (g *Grid) Interior(c Coord) bool {
	return c.Row > 0 && c.Row < g.rows-1 && c.Col > 0 && c.Col < g.cols-1
}

// At returns the cell at c. Out-of-bounds positions read as Wall.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// IsPath reports whether c is in bounds and carved.
func (g *Grid) IsPath(c Coord) bool {
	return g.At(c) == Path
}

func (g *Grid) set(c Coord, cell Cell) {
	g.cells[c.Row*g.cols+c.Col] = cell
}

// PathCells returns every carved coordinate in row-major order.
func (g *Grid) PathCells() []Coord {
	var out []Coord
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Path {
				out = append(out, C(r, c))
			}
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(clone.cells, g.cells)
	return clone
}

// String renders the grid with '#' for walls and '.' for paths.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			b.WriteString(g.cells[r*g.cols+c].String())
		}
	}
	return b.String()
}
