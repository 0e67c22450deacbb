package search_test

import (
	"context"
	"log"
	"testing"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFSFindsShortestPathForASingleFreeModule(t *testing.T) {
	lat := newSearchTestLattice(10)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))

	cat := cardinalCatalog(t)
	goal := module.NewDataSet([]module.Data{{Coords: []int{4, 2}}})

	steps, err := search.BFS(context.Background(), lat, search.SerialExpander(cat, false), goal, false)
	require.NoError(t, err)
	assert.Len(t, steps, 2)

	// BFS leaves the lattice at the last configuration it expanded; replay
	// the path from the start.
	require.NoError(t, lat.Restore(module.NewDataSet([]module.Data{{Coords: []int{2, 2}}})))
	m, _ := lat.ModuleByID(0)
	for _, s := range steps {
		require.Len(t, s.Moves, 1)
		require.NoError(t, move.Apply(lat, m, s.Moves[0].Move, false))
	}
	assert.Equal(t, []int{4, 2}, m.Coords)
}

func TestBFSReturnsNilWhenAlreadyAtGoal(t *testing.T) {
	lat := newSearchTestLattice(10)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))

	cat := cardinalCatalog(t)
	goal := module.NewDataSet([]module.Data{{Coords: []int{2, 2}}})

	steps, err := search.BFS(context.Background(), lat, search.SerialExpander(cat, false), goal, false)
	require.NoError(t, err)
	assert.Nil(t, steps)
}

func TestBFSReturnsExhaustedWhenModuleIsFullyBoxedIn(t *testing.T) {
	lat := lattice.New(2, 10, 2, lattice.Cube, log.New(log.Writer(), "", 0))
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{5, 5}}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{4, 5}, Static: true}))
	require.NoError(t, lat.AddModule(module.Module{ID: 2, Coords: []int{6, 5}, Static: true}))
	require.NoError(t, lat.AddModule(module.Module{ID: 3, Coords: []int{5, 4}, Static: true}))
	require.NoError(t, lat.AddModule(module.Module{ID: 4, Coords: []int{5, 6}, Static: true}))

	cat := cardinalCatalog(t)
	goal := module.NewDataSet([]module.Data{
		{Coords: []int{8, 8}},
		{Coords: []int{4, 5}},
		{Coords: []int{6, 5}},
		{Coords: []int{5, 4}},
		{Coords: []int{5, 6}},
	})

	_, err := search.BFS(context.Background(), lat, search.SerialExpander(cat, false), goal, false)
	assert.ErrorIs(t, err, search.ErrExhausted)
}
