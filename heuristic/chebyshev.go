package heuristic

// Chebyshev is the "Chebyshev" cache kind of spec.md §4.7: its BFS adjacency
// is every offset in {-1,0,1}^D except the zero vector (3^D-1 neighbors),
// which is exactly the max-norm ball, so the reverse-BFS fill the table
// describes coincides with the closed-form distance -- TrueChebyshevDistance
// -- and no BFS run is needed. The legacy per-module-sum ChebyshevDistance
// variant is deliberately not ported (SPEC_FULL.md §9, Open Question 2): it
// is flagged non-admissible in spec.md itself.
type Chebyshev struct {
	goals       [][]int
	maxDistance int
}

// NewChebyshev builds a Chebyshev cache over goalCoords, normalizing by
// maxDistance (spec.md §4.7: "divided by max_move_distance ... to preserve
// admissibility"). maxDistance <= 0 is treated as 1 (no normalization).
func NewChebyshev(goalCoords [][]int, maxDistance int) *Chebyshev {
	if maxDistance <= 0 {
		maxDistance = 1
	}
	goals := make([][]int, len(goalCoords))
	for i, g := range goalCoords {
		goals[i] = append([]int(nil), g...)
	}
	return &Chebyshev{goals: goals, maxDistance: maxDistance}
}

// Value returns the minimum Chebyshev distance from coords to any goal,
// floor-divided by maxDistance. Floor division never overestimates, so the
// admissibility bound is preserved.
func (c *Chebyshev) Value(coords []int) (int, bool) {
	if len(c.goals) == 0 {
		return 0, false
	}
	best := -1
	for _, g := range c.goals {
		d := chebyshevNormBetween(coords, g)
		if best == -1 || d < best {
			best = d
		}
	}
	return best / c.maxDistance, true
}

func chebyshevNormBetween(a, b []int) int {
	m := 0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > m {
			m = d
		}
	}
	return m
}
