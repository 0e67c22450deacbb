package lattice_test

import (
	"testing"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
	"github.com/katalvlaran/latticepath/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddModuleWritesCellAndPanicsOnOccupied(t *testing.T) {
	lat := newTestLattice(2, 4, 1, lattice.Cube)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))
	assert.Equal(t, tensor.Cell(0), lat.Cells().GetChecked([]int{2, 2}))

	assert.Panics(t, func() {
		_ = lat.AddModule(module.Module{ID: 1, Coords: []int{2, 2}})
	})
}

func TestAddBoundaryRejectsOccupiedCell(t *testing.T) {
	lat := newTestLattice(2, 4, 1, lattice.Cube)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))
	err := lat.AddBoundary([]int{2, 2})
	require.ErrorIs(t, err, lattice.ErrBoundaryOccupied)
}

func TestClearAdjacencyRemovesBothDirections(t *testing.T) {
	lat := newTestLattice(2, 4, 1, lattice.Cube)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{3, 2}}))

	lat.ClearAdjacency(0)
	assert.Empty(t, lat.AdjacencyOf(0))
	assert.Empty(t, lat.AdjacencyOf(1))
	assert.False(t, lat.CheckConnected(0))
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	lat := newTestLattice(2, 6, 1, lattice.Cube)
	props0 := property.NewSet()
	require.NoError(t, props0.Add(property.NewColorProperty(0xFF0000)))
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}, Properties: props0}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{3, 2}}))

	before := lat.Snapshot()

	target := module.NewDataSet([]module.Data{
		{Coords: []int{2, 2}, Properties: props0.Clone()},
		{Coords: []int{4, 2}},
	})
	require.NoError(t, lat.Restore(target))

	after := lat.Snapshot()
	assert.True(t, after.Equal(target))
	assert.False(t, before.Equal(after))
}

func TestRestoreReportsStateCorruptOnCountMismatch(t *testing.T) {
	lat := newTestLattice(2, 6, 1, lattice.Cube)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))

	target := module.NewDataSet([]module.Data{
		{Coords: []int{2, 2}},
		{Coords: []int{3, 2}},
	})
	err := lat.Restore(target)
	require.ErrorIs(t, err, lattice.ErrStateCorrupt)
}

func TestMovableModulesExcludesStaticAndArticulationPoints(t *testing.T) {
	// Chain: 0 - 1 - 2, id1 is a cut vertex connecting 0 and 2.
	lat := newTestLattice(2, 6, 1, lattice.Cube)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{3, 2}}))
	require.NoError(t, lat.AddModule(module.Module{ID: 2, Coords: []int{4, 2}, Static: true}))

	movable := lat.MovableModules()
	assert.Equal(t, []int{0}, movable)
}
