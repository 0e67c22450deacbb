package heuristic_test

import (
	"log"
	"math/rand"
	"testing"

	"github.com/katalvlaran/latticepath/heuristic"
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeuristicTestLattice(order, axisSize int) *lattice.Lattice {
	return lattice.New(order, axisSize, 0, lattice.Cube, log.New(log.Writer(), "", 0))
}

func cardinalCatalog(t *testing.T) *move.Catalog {
	t.Helper()
	base, err := move.ParseGrid2D([]string{"?!"})
	require.NoError(t, err)
	return move.NewCatalog([]*move.Move{base}, 2)
}

func manhattan(a, b []int) int {
	d := 0
	for i := range a {
		v := a[i] - b[i]
		if v < 0 {
			v = -v
		}
		d += v
	}
	return d
}

// TestMoveOffsetMatchesBFSDepthInMoveSpace implements spec.md §8's cache
// correctness property: with one static module and one non-static module,
// and a move set whose final offsets are the four unconstrained unit steps,
// the MoveOffset value at a coordinate must equal the Manhattan distance to
// the goal -- which is exactly what that move set's BFS computes.
func TestMoveOffsetMatchesBFSDepthInMoveSpace(t *testing.T) {
	lat := newHeuristicTestLattice(2, 20)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{1, 1}, Static: true}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{5, 5}}))

	cat := cardinalCatalog(t)
	goal := []int{10, 10}
	cache := heuristic.BuildMoveOffset(lat, cat, [][]int{goal}, heuristic.DefaultOptions())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		c := []int{3 + rng.Intn(14), 3 + rng.Intn(14)}
		v, ok := cache.Value(c)
		require.True(t, ok)
		assert.Equal(t, manhattan(c, goal), v)
	}
}

func TestMoveOffsetGoalItselfIsZero(t *testing.T) {
	lat := newHeuristicTestLattice(2, 20)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{1, 1}, Static: true}))

	cat := cardinalCatalog(t)
	goal := []int{10, 10}
	cache := heuristic.BuildMoveOffset(lat, cat, [][]int{goal}, heuristic.DefaultOptions())

	v, ok := cache.Value(goal)
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

// TestMoveOffsetCacheOptimizationMarksUnreachableCellsOutOfBounds confirms
// the cache-optimization refinement permanently seals off a region the BFS
// fill never reached, by enclosing it behind a single-cell-wide static wall
// with no gap.
func TestMoveOffsetCacheOptimizationMarksUnreachableCellsOutOfBounds(t *testing.T) {
	lat := newHeuristicTestLattice(2, 12)
	nextID := 0
	for y := 0; y < 12; y++ {
		require.NoError(t, lat.AddModule(module.Module{ID: nextID, Coords: []int{6, y}, Static: true}))
		nextID++
	}

	cat := cardinalCatalog(t)
	opts := heuristic.DefaultOptions()
	heuristic.WithCacheOptimization()(&opts)
	heuristic.BuildMoveOffset(lat, cat, [][]int{{2, 2}}, opts)

	// (9, 2) sits on the far side of the unbroken wall: unreachable from the
	// goal, so it must now read OutOfBounds.
	assert.Equal(t, tensor.OutOfBounds, lat.Cells().GetChecked([]int{9, 2}))
}

// TestMoveOffsetDistanceAndHelpLimitationNeverUndercutManhattan exercises
// both the distance-limitation and help-limitation refinements together and
// checks that the resulting bound, where the fill reaches the cell, is never
// below the unobstructed Manhattan distance -- the refinements only prune or
// re-check candidate predecessors of unit steps, so the fill can never find a
// shorter path than the unrefined BFS.
func TestMoveOffsetDistanceAndHelpLimitationNeverUndercutManhattan(t *testing.T) {
	lat := newHeuristicTestLattice(2, 20)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{1, 1}, Static: true}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{5, 5}}))
	require.NoError(t, lat.AddModule(module.Module{ID: 2, Coords: []int{8, 8}}))

	cat := cardinalCatalog(t)
	opts := heuristic.DefaultOptions()
	heuristic.WithDistanceLimitation()(&opts)
	heuristic.WithHelpLimitation()(&opts)

	goal := []int{10, 10}
	cache := heuristic.BuildMoveOffset(lat, cat, [][]int{goal}, opts)

	c := []int{3, 3}
	v, ok := cache.Value(c)
	if ok {
		assert.GreaterOrEqual(t, v, manhattan(c, goal))
	}
}
