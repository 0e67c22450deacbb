package move_test

import (
	"log"
	"testing"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eastSlide is the same "?!"/"x#" slide template exercised by
// template_test.go: FinalOffset [1,0], an anchor requirement at [1,1], and
// an empty requirement at [0,1].
func eastSlide(t *testing.T) *move.Move {
	t.Helper()
	mv, err := move.ParseGrid2D([]string{"?!", "x#"})
	require.NoError(t, err)
	return mv
}

func TestCheckPassesAndFailsOnOffsetConstraints(t *testing.T) {
	lat := lattice.New(2, 6, 2, lattice.Cube, log.New(log.Writer(), "", 0))
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{3, 3}, Static: true}))
	mover, _ := lat.ModuleByID(0)

	mv := eastSlide(t)
	assert.True(t, move.Check(lat, mover, mv))

	// Occupy the must-be-empty slot: the move is now illegal.
	require.NoError(t, lat.AddModule(module.Module{ID: 2, Coords: []int{2, 3}}))
	assert.False(t, move.Check(lat, mover, mv))
}

func TestApplyUnapplyIsExactInverse(t *testing.T) {
	lat := lattice.New(2, 6, 2, lattice.Cube, log.New(log.Writer(), "", 0))
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{3, 3}, Static: true}))
	mover, _ := lat.ModuleByID(0)

	before := lat.Snapshot()

	mv := eastSlide(t)
	require.NoError(t, move.Apply(lat, mover, mv, false))
	assert.Equal(t, []int{3, 2}, mover.Coords)

	move.Unapply(lat, mover, mv, false)
	assert.Equal(t, []int{2, 2}, mover.Coords)

	after := lat.Snapshot()
	assert.True(t, before.Equal(after))
}

// TestApplyUnapplyRestoresOrientationByteIdentically guards against
// double-cancelling the sign of a Dynamic property's OnMove hook: Unapply
// must fire OnMove with the original (non-negated) FinalOffset and
// reversing=true, not a negated offset with reversing=true, or the heading
// nets a second +90/-90 instead of returning to its starting value.
func TestApplyUnapplyRestoresOrientationByteIdentically(t *testing.T) {
	lat := lattice.New(2, 6, 2, lattice.Cube, log.New(log.Writer(), "", 0))
	props := property.NewSet()
	require.NoError(t, props.Add(property.NewOrientationProperty([]int{0, 0})))
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}, Properties: props}))
	require.NoError(t, lat.AddModule(module.Module{ID: 1, Coords: []int{3, 3}, Static: true}))
	mover, _ := lat.ModuleByID(0)

	before := lat.Snapshot()

	mv := eastSlide(t)
	require.NoError(t, move.Apply(lat, mover, mv, false))
	oriented := mover.Properties.Find(property.OrientationPropertyName).(*property.OrientationProperty)
	assert.Equal(t, 90, oriented.Degrees[0], "apply should rotate the dominant axis +90")

	move.Unapply(lat, mover, mv, false)
	assert.Equal(t, 0, oriented.Degrees[0], "unapply should restore the original heading, not add another +90")

	after := lat.Snapshot()
	assert.True(t, before.Equal(after))
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	lat := lattice.New(2, 6, 2, lattice.Cube, log.New(log.Writer(), "", 0))
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{2, 2}}))
	mover, _ := lat.ModuleByID(0)

	mv := eastSlide(t)
	err := move.Apply(lat, mover, mv, false)
	require.ErrorIs(t, err, move.ErrIllegalMove)
}
