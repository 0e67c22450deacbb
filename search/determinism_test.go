package search_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBFS builds a fresh two-module lattice and runs BFS to goal, returning
// the resulting move sequence as (moduleID, offset) pairs so two runs can be
// compared without relying on pointer identity across separately-built
// catalogs.
func runBFS(t *testing.T, goal *module.DataSet) [][2]interface{} {
	t.Helper()
	lat := newSearchTestLattice(10)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{7, 7}}))

	cat := cardinalCatalog(t)
	steps, err := search.BFS(context.Background(), lat, search.SerialExpander(cat, false), goal, false)
	require.NoError(t, err)

	out := make([][2]interface{}, 0, len(steps))
	for _, s := range steps {
		for _, mm := range s.Moves {
			out = append(out, [2]interface{}{mm.ModuleID, append([]int(nil), mm.Move.FinalOffset...)})
		}
	}
	return out
}

// TestBFSExpansionOrderIsDeterministicAcrossRuns confirms spec.md §5's
// deterministic iteration order (ascending module id, catalog order) holds:
// two independent runs over identically-constructed lattices must produce
// byte-for-byte the same move sequence.
func TestBFSExpansionOrderIsDeterministicAcrossRuns(t *testing.T) {
	goal := module.NewDataSet([]module.Data{
		{Coords: []int{5, 2}},
		{Coords: []int{7, 7}},
	})

	first := runBFS(t, goal)
	second := runBFS(t, goal)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

// TestAStarExpansionOrderIsDeterministicAcrossRuns mirrors the BFS case for
// A*, where tie-breaking (f ascending, then g descending) must also be
// stable across runs for the same input.
func TestAStarExpansionOrderIsDeterministicAcrossRuns(t *testing.T) {
	run := func() [][2]interface{} {
		lat := newSearchTestLattice(10)
		require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))

		cat := cardinalCatalog(t)
		goal := module.NewDataSet([]module.Data{{Coords: []int{6, 4}}})

		steps, err := search.AStar(context.Background(), lat, search.SerialExpander(cat, false), goal, search.ManhattanHeuristic(goal), false, false, false)
		require.NoError(t, err)

		out := make([][2]interface{}, 0, len(steps))
		for _, s := range steps {
			for _, mm := range s.Moves {
				out = append(out, [2]interface{}{mm.ModuleID, append([]int(nil), mm.Move.FinalOffset...)})
			}
		}
		return out
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
