package maze

// Item is a collectible gem.
type Item struct {
	Pos       Coord
	Collected bool
}

// LevelState is everything that describes the level in play. It is built
// whole from a Layout and only the Controller mutates it.
type LevelState struct {
	grid   *Grid
	player Coord
	exit   Coord
	items  []Item
	level  int
	score  int
}

// NewLevelState builds the state for level from layout, carrying score.
// The player starts on layout.Start.
func NewLevelState(layout Layout, level, score int) *LevelState {
	items := make([]Item, len(layout.Items))
	for i, pos := range layout.Items {
		items[i] = Item{Pos: pos}
	}
	return &LevelState{
		grid:   layout.Grid,
		player: layout.Start,
		exit:   layout.Exit,
		items:  items,
		level:  level,
		score:  score,
	}
}

// Grid returns the level's maze.
func (s *LevelState) Grid() *Grid { return s.grid }

// Player returns the player position.
func (s *LevelState) Player() Coord { return s.player }

// Exit returns the exit position.
func (s *LevelState) Exit() Coord { return s.exit }

// Level returns the 1-based level index.
func (s *LevelState) Level() int { return s.level }

// Score returns the cumulative score.
func (s *LevelState) Score() int { return s.score }

// Remaining returns the number of active gems.
func (s *LevelState) Remaining() int {
	n := 0
	for _, it := range s.items {
		if !it.Collected {
			n++
		}
	}
	return n
}

// Items returns a copy of the active gems in placement order.
func (s *LevelState) Items() []Item {
	return s.filter(false)
}

// CollectedItems returns a copy of the gems already picked up this level,
// in placement order.
func (s *LevelState) CollectedItems() []Item {
	return s.filter(true)
}

func (s *LevelState) filter(collected bool) []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.Collected == collected {
			out = append(out, it)
		}
	}
	return out
}

// ItemPositions returns the coordinates of the active gems.
func (s *LevelState) ItemPositions() []Coord {
	active := s.Items()
	out := make([]Coord, len(active))
	for i, it := range active {
		out[i] = it.Pos
	}
	return out
}

// collectAt marks the active gem at c collected. A collected gem never
// becomes active again.
func (s *LevelState) collectAt(c Coord) (Item, bool) {
	for i := range s.items {
		it := &s.items[i]
		if it.Pos != c || it.Collected {
			continue
		}
		it.Collected = true
		return *it, true
	}
	return Item{}, false
}
