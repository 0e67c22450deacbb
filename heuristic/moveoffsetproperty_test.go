package heuristic_test

import (
	"testing"

	"github.com/katalvlaran/latticepath/heuristic"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveOffsetPropertySeparatesGoalsByPropertyValue(t *testing.T) {
	lat := newHeuristicTestLattice(2, 20)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{1, 1}, Static: true}))

	cat := cardinalCatalog(t)
	goals := []heuristic.PropertyGoal{
		{Coords: []int{10, 10}, PropInt: 1},
		{Coords: []int{3, 3}, PropInt: 2},
	}
	cache := heuristic.BuildMoveOffsetProperty(lat, cat, goals, heuristic.DefaultOptions())

	c := []int{5, 5}
	v1, ok := cache.Value(c, 1)
	require.True(t, ok)
	assert.Equal(t, manhattan(c, []int{10, 10}), v1)

	v2, ok := cache.Value(c, 2)
	require.True(t, ok)
	assert.Equal(t, manhattan(c, []int{3, 3}), v2)
}

func TestMoveOffsetPropertyValueFalseForUnknownProperty(t *testing.T) {
	lat := newHeuristicTestLattice(2, 20)
	require.NoError(t, lat.AddModule(module.Module{ID: 0, Coords: []int{1, 1}, Static: true}))

	cat := cardinalCatalog(t)
	goals := []heuristic.PropertyGoal{{Coords: []int{10, 10}, PropInt: 1}}
	cache := heuristic.BuildMoveOffsetProperty(lat, cat, goals, heuristic.DefaultOptions())

	_, ok := cache.Value([]int{5, 5}, 99)
	assert.False(t, ok)
}

func TestPropertyGoalsFromDataSetEncodesColorProperty(t *testing.T) {
	red := property.NewColorPropertyRGB(255, 0, 0)
	reds := property.NewSet()
	require.NoError(t, reds.Add(red))

	ds := module.NewDataSet([]module.Data{
		{Coords: []int{1, 2}, Properties: reds},
		{Coords: []int{3, 4}},
	})

	goals, err := heuristic.PropertyGoalsFromDataSet(ds, property.ColorPropertyName)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	var sawColored, sawUncolored bool
	for _, g := range goals {
		if g.Coords[0] == 1 && g.Coords[1] == 2 {
			sawColored = true
			assert.Equal(t, uint64(0xFF0000), g.PropInt)
		}
		if g.Coords[0] == 3 && g.Coords[1] == 4 {
			sawUncolored = true
			assert.Equal(t, uint64(0), g.PropInt)
		}
	}
	assert.True(t, sawColored)
	assert.True(t, sawUncolored)
}
