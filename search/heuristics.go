package search

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/latticepath/heuristic"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
)

// Heuristic estimates the number of moves remaining from a state to the
// search goal (spec.md §4.7: "the per-configuration heuristic value is
// Σ cache[mᵢ.coord]"). Admissible records whether this estimate never
// overestimates the true remaining cost -- AStar consults it before
// allowing CONSISTENT_HEURISTIC_VALIDATOR (SPEC_FULL.md §9, ManhattanHeuristic).
type Heuristic struct {
	Name       string
	Admissible bool
	Eval       func(state *module.DataSet) int
}

// ChebyshevHeuristic sums heuristic.Chebyshev's per-module bound (spec.md
// §4.7, the Chebyshev cache kind; already normalized by MaxDistance per
// SPEC_FULL.md §9 decision 2).
func ChebyshevHeuristic(cache *heuristic.Chebyshev) Heuristic {
	return Heuristic{
		Name:       "Chebyshev",
		Admissible: true,
		Eval: func(state *module.DataSet) int {
			sum := 0
			for _, d := range state.Items() {
				if v, ok := cache.Value(d.Coords); ok {
					sum += v
				}
			}
			return sum
		},
	}
}

// MoveOffsetHeuristic sums heuristic.MoveOffset's per-module bound.
func MoveOffsetHeuristic(cache *heuristic.MoveOffset) Heuristic {
	return Heuristic{
		Name:       "MoveOffset",
		Admissible: true,
		Eval: func(state *module.DataSet) int {
			sum := 0
			for _, d := range state.Items() {
				if v, ok := cache.Value(d.Coords); ok {
					sum += v
				}
			}
			return sum
		},
	}
}

// MoveOffsetPropertyHeuristic sums heuristic.MoveOffsetProperty's
// per-module-per-property bound, reading propertyName off each module the
// same way heuristic.PropertyGoalsFromDataSet does.
func MoveOffsetPropertyHeuristic(cache *heuristic.MoveOffsetProperty, propertyName string) Heuristic {
	return Heuristic{
		Name:       "MoveOffsetProperty",
		Admissible: true,
		Eval: func(state *module.DataSet) int {
			sum := 0
			for _, d := range state.Items() {
				propInt := propIntOf(d, propertyName)
				if v, ok := cache.Value(d.Coords, propInt); ok {
					sum += v
				}
			}
			return sum
		},
	}
}

func propIntOf(d module.Data, propertyName string) uint64 {
	if d.Properties == nil {
		return 0
	}
	p := d.Properties.Find(propertyName)
	if p == nil {
		return 0
	}
	ie, ok := p.(property.IntEncodable)
	if !ok {
		return 0
	}
	v, err := ie.EncodeInt()
	if err != nil {
		return 0
	}
	return v
}

// ManhattanHeuristic sums, for each module in state, its L1 distance to the
// nearest module in goal. Non-admissible (SPEC_FULL.md §9, decision 3): a
// single move's Chebyshev reach can cover several Manhattan units at once
// (e.g. a diagonal pivot), so this sum can overestimate the true move
// count. Kept only for CLI parity with the original's "Manhattan" flag.
func ManhattanHeuristic(goal *module.DataSet) Heuristic {
	goalCoords := coordsOf(goal)
	return Heuristic{
		Name:       "Manhattan",
		Admissible: false,
		Eval: func(state *module.DataSet) int {
			sum := 0
			for _, d := range state.Items() {
				sum += nearestManhattan(d.Coords, goalCoords)
			}
			return sum
		},
	}
}

// SymDiffHeuristic counts modules in state whose coordinate is not occupied
// by any module in goal. Admissible: each such module needs at least one
// move to reach a cell goal actually uses.
func SymDiffHeuristic(goal *module.DataSet) Heuristic {
	goalSet := make(map[string]bool)
	for _, d := range goal.Items() {
		goalSet[coordKey(d.Coords)] = true
	}
	return Heuristic{
		Name:       "SymDiff",
		Admissible: true,
		Eval: func(state *module.DataSet) int {
			n := 0
			for _, d := range state.Items() {
				if !goalSet[coordKey(d.Coords)] {
					n++
				}
			}
			return n
		},
	}
}

func coordsOf(ds *module.DataSet) [][]int {
	items := ds.Items()
	out := make([][]int, len(items))
	for i, d := range items {
		out[i] = d.Coords
	}
	return out
}

func nearestManhattan(c []int, goals [][]int) int {
	best := -1
	for _, g := range goals {
		d := 0
		for i := range c {
			v := c[i] - g[i]
			if v < 0 {
				v = -v
			}
			d += v
		}
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

func coordKey(c []int) string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
