package planner

import (
	"github.com/katalvlaran/latticepath/heuristic"
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/property"
	"github.com/katalvlaran/latticepath/search"
)

// buildHeuristic selects and constructs a search.Heuristic scoring states
// against target, per spec.md §6.4's --heuristic flag and the original's
// ConfigurationSpace.cpp dispatch: "MRSH-1" (the unnamed default branch
// there) is the property-aware MoveOffset cache unless colors are ignored,
// "Nearest Chebyshev" is kept distinct from "Chebyshev" only in name here
// (the original's CacheChebyshevDistance is a reverse-BFS fill that
// coincides with TrueChebyshevDistance's closed form whenever the move
// catalog's reachability is isotropic, which this port assumes -- see
// DESIGN.md).
func buildHeuristic(lat *lattice.Lattice, cat *move.Catalog, target *module.DataSet, flags Flags) (search.Heuristic, error) {
	opts := heuristic.Options{
		CacheOptimization:  flags.HeuristicCacheOptimization,
		DistanceLimitation: flags.HeuristicCacheDistLimitations,
		HelpLimitation:     flags.HeuristicCacheHelpLimitations,
	}
	goalCoords := coordsOf(target)

	switch flags.Heuristic {
	case "", "MRSH-1":
		if flags.IgnoreColors {
			cache := heuristic.BuildMoveOffset(lat, cat, goalCoords, opts)
			return search.MoveOffsetHeuristic(cache), nil
		}
		goals, err := heuristic.PropertyGoalsFromDataSet(target, property.ColorPropertyName)
		if err != nil {
			return search.Heuristic{}, err
		}
		cache := heuristic.BuildMoveOffsetProperty(lat, cat, goals, opts)
		return search.MoveOffsetPropertyHeuristic(cache, property.ColorPropertyName), nil

	case "SymDiff", "Symmetric Difference":
		return search.SymDiffHeuristic(target), nil

	case "Manhattan":
		return search.ManhattanHeuristic(target), nil

	case "Chebyshev":
		cache := heuristic.NewChebyshev(goalCoords, cat.MaxDistance())
		return search.ChebyshevHeuristic(cache), nil

	case "Nearest Chebyshev":
		cache := heuristic.NewChebyshev(goalCoords, cat.MaxDistance())
		h := search.ChebyshevHeuristic(cache)
		h.Name = "Nearest Chebyshev"
		return h, nil
	}

	return search.Heuristic{}, ErrUnknownHeuristic
}

func coordsOf(ds *module.DataSet) [][]int {
	items := ds.Items()
	out := make([][]int, len(items))
	for i, d := range items {
		out[i] = d.Coords
	}
	return out
}

// validateFor reports whether the consistency validator should actually run
// for h: spec.md §9's Open Question resolution for ManhattanDistance ("do
// not enable the consistency validator when it is selected") generalizes to
// every non-admissible heuristic, so an inadmissible choice silently
// disables the validator rather than erroring.
func validateFor(flags Flags, h search.Heuristic) bool {
	return flags.ConsistentHeuristicValidator && h.Admissible
}
