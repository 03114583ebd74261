package maze

// Rand is the slice of *math/rand.Rand the generator needs.
type Rand interface {
	Intn(n int) int
}

// carveDirs are the two-step offsets to neighbouring cell centers.
var carveDirs = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// SnapOdd moves each even component of c up by one so that it lands on a
// cell center.
func SnapOdd(c Coord) Coord {
	if c.Row%2 == 0 {
		c.Row++
	}
	if c.Col%2 == 0 {
		c.Col++
	}
	return c
}

// Carve builds a perfect maze with a randomized iterative depth-first
// backtracker. Cell centers sit on odd coordinates and are linked through
// the even connector between them; the outer border stays solid.
//
// rows and cols must pass ValidateDimensions. A start that snaps outside the
// interior falls back to (1,1).
func Carve(rows, cols int, start Coord, rng Rand) *Grid {
	g := newGrid(rows, cols)

	start = SnapOdd(start)
	if !g.Interior(start) {
		start = C(1, 1)
	}

	g.set(start, Path)
	stack := []Coord{start}
	candidates := make([]Coord, 0, len(carveDirs))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range carveDirs {
			next := C(cur.Row+d[0], cur.Col+d[1])
			if g.Interior(next) && g.At(next) == Wall {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		g.set(C((cur.Row+next.Row)/2, (cur.Col+next.Col)/2), Path)
		g.set(next, Path)
		stack = append(stack, next)
	}

	return g
}
