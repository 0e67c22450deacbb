package search

import (
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
)

// ExpandResult is one child configuration produced by expanding lat's
// current state, together with the moves that produced it.
type ExpandResult struct {
	State *module.DataSet
	Moves []ModuleMove
}

// Expander generates every child configuration reachable from lat's current
// state in a single search step (spec.md §4.5, "State expansion").
type Expander func(lat *lattice.Lattice) ([]ExpandResult, error)

// SerialExpander implements spec.md §4.5's serial expansion: for each
// movable module (ascending id, matching spec.md §5's deterministic
// iteration order), try every catalog move (catalog order); apply, snapshot,
// unapply.
func SerialExpander(cat *move.Catalog, ignoreProperties bool) Expander {
	return func(lat *lattice.Lattice) ([]ExpandResult, error) {
		var out []ExpandResult
		for _, id := range lat.MovableModules() {
			m, ok := lat.ModuleByID(id)
			if !ok {
				continue
			}
			for _, mv := range cat.Moves() {
				if !move.Check(lat, m, mv) {
					continue
				}
				if err := move.Apply(lat, m, mv, ignoreProperties); err != nil {
					return nil, err
				}
				snap := lat.Snapshot()
				out = append(out, ExpandResult{State: snap, Moves: []ModuleMove{{ModuleID: id, Move: mv}}})
				move.Unapply(lat, m, mv, ignoreProperties)
			}
		}
		return out, nil
	}
}

// ParallelExpander delegates to move.ParallelEngine.Step (spec.md §4.5,
// "Parallel: delegate to §4.4"), consulting visited so the engine never
// returns a state the caller has already recorded.
func ParallelExpander(engine *move.ParallelEngine, ignoreProperties bool, visited *VisitedSet) Expander {
	return func(lat *lattice.Lattice) ([]ExpandResult, error) {
		results, err := engine.Step(lat, ignoreProperties, visited.Has)
		if err != nil {
			return nil, err
		}
		out := make([]ExpandResult, len(results))
		for i, r := range results {
			out[i] = ExpandResult{State: r.State, Moves: r.Moves}
		}
		return out, nil
	}
}
