package search

import (
	"math/rand"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
)

// RandomTarget performs k random walks in configuration space from lat's
// current state, at each step picking uniformly among legal adjacent
// snapshots not yet visited this walk, and restores lat to its original
// state before returning (spec.md §4.8). rng is caller-supplied for
// determinism, following the builder.WithRand/WithSeed convention.
func RandomTarget(lat *lattice.Lattice, cat *move.Catalog, steps int, rng *rand.Rand) (*module.DataSet, error) {
	start := lat.Snapshot()
	ignoreProperties := lat.IgnoreProperties()

	expand := SerialExpander(cat, ignoreProperties)
	walked := map[uint64]bool{start.Hash(ignoreProperties): true}
	current := start

	for i := 0; i < steps; i++ {
		if err := lat.Restore(current); err != nil {
			return nil, err
		}
		results, err := expand(lat)
		if err != nil {
			return nil, err
		}

		var candidates []*module.DataSet
		for _, r := range results {
			if !walked[r.State.Hash(ignoreProperties)] {
				candidates = append(candidates, r.State)
			}
		}
		if len(candidates) == 0 {
			break // dead end: return the last reachable snapshot
		}

		next := candidates[rng.Intn(len(candidates))]
		walked[next.Hash(ignoreProperties)] = true
		current = next
	}

	if err := lat.Restore(start); err != nil {
		return nil, err
	}
	return current, nil
}
