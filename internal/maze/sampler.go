package maze

import (
	"errors"
	"fmt"
)

// Scoring and pacing constants.
const (
	GemReward     = 5
	LevelReward   = 10
	BaseItems     = 5
	ItemsPerLevel = 2
)

// DefaultMaxAttempts bounds every rejection-sampling loop.
const DefaultMaxAttempts = 10000

// ErrPlacementExhausted is returned when no acceptable start/exit pair was
// found within the attempt budget.
var ErrPlacementExhausted = errors.New("maze: placement attempts exhausted")

// Side is an edge of the grid.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Layout is a freshly generated level: the carved grid plus placements.
type Layout struct {
	Grid  *Grid
	Start Coord
	Exit  Coord
	Items []Coord
}

// ItemCount returns the number of gems level expects: 5 + (level-1)*2.
// Levels below 1 count as level 1.
func ItemCount(level int) int {
	if level < 1 {
		level = 1
	}
	return BaseItems + (level-1)*ItemsPerLevel
}

// Sampler places the start, exit and gems of each level and carves the
// maze between them.
type Sampler struct {
	rows        int
	cols        int
	maxAttempts int
	rng         Rand
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) SamplerOption {
	return func(s *Sampler) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewSampler returns a sampler for rows x cols grids drawing from rng.
func NewSampler(rows, cols int, rng Rand, opts ...SamplerOption) (*Sampler, error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}
	s := &Sampler{
		rows:        rows,
		cols:        cols,
		maxAttempts: DefaultMaxAttempts,
		rng:         rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Rows returns the grid height the sampler produces.
func (s *Sampler) Rows() int { return s.rows }

// Cols returns the grid width the sampler produces.
func (s *Sampler) Cols() int { return s.cols }

// MinDistance is the smallest Manhattan distance allowed between start and exit.
func (s *Sampler) MinDistance() int { return s.rows / 3 }

// Capacity is the number of cell centers left for gems once start and exit
// are placed.
func (s *Sampler) Capacity() int {
	return ((s.rows-1)/2)*((s.cols-1)/2) - 2
}

// ItemTarget is ItemCount(level) capped at Capacity.
func (s *Sampler) ItemTarget(level int) int {
	return min(ItemCount(level), s.Capacity())
}

// Place generates the layout for level.
func (s *Sampler) Place(level int) (Layout, error) {
	start, exit, err := s.endpoints()
	if err != nil {
		return Layout{}, err
	}

	// Odd dimensions put every odd-aligned interior cell on the carved lattice.
	grid := Carve(s.rows, s.cols, start, s.rng)
	if !grid.IsPath(start) || !grid.IsPath(exit) {
		return Layout{}, fmt.Errorf("%w: exit %v not carved from %v", ErrPlacementExhausted, exit, start)
	}

	return Layout{
		Grid:  grid,
		Start: start,
		Exit:  exit,
		Items: s.placeItems(grid, start, exit, s.ItemTarget(level)),
	}, nil
}

// endpoints draws start and exit until they are distinct and far enough apart.
func (s *Sampler) endpoints() (Coord, Coord, error) {
	minDist := s.MinDistance()
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		start := C(s.randomOdd(s.rows), s.randomOdd(s.cols))
		exit := s.exitOn(Side(s.rng.Intn(4)))
		if start == exit || Manhattan(start, exit) < minDist {
			continue
		}
		return start, exit, nil
	}
	return Coord{}, Coord{}, fmt.Errorf("%w: no start/exit pair %d apart in %d tries",
		ErrPlacementExhausted, minDist, s.maxAttempts)
}

// exitOn picks a cell center on the ring one cell inside the border.
func (s *Sampler) exitOn(side Side) Coord {
	switch side {
	case SideTop:
		return C(1, s.randomOdd(s.cols))
	case SideBottom:
		return C(s.rows-2, s.randomOdd(s.cols))
	case SideLeft:
		return C(s.randomOdd(s.rows), 1)
	default:
		return C(s.randomOdd(s.rows), s.cols-2)
	}
}

// randomOdd returns a uniform odd value in [1, limit-2].
func (s *Sampler) randomOdd(limit int) int {
	return 1 + 2*s.rng.Intn((limit-1)/2)
}

func (s *Sampler) placeItems(g *Grid, start, exit Coord, target int) []Coord {
	items := make([]Coord, 0, target)
	taken := map[Coord]bool{start: true, exit: true}

	accept := func(c Coord) bool {
		if taken[c] || !g.IsPath(c) {
			return false
		}
		taken[c] = true
		items = append(items, c)
		return true
	}

	for attempt := 0; attempt < s.maxAttempts && len(items) < target; attempt++ {
		accept(C(s.randomOdd(s.rows), s.randomOdd(s.cols)))
	}
	if len(items) == target {
		return items
	}

	// Budget ran out: draw the rest from the enumerated free centers.
	var free []Coord
	for _, c := range g.PathCells() {
		if c.OddAligned() && !taken[c] {
			free = append(free, c)
		}
	}
	for len(items) < target && len(free) > 0 {
		i := s.rng.Intn(len(free))
		accept(free[i])
		free[i] = free[len(free)-1]
		free = free[:len(free)-1]
	}
	return items
}
