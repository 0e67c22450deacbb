package heuristic_test

import (
	"testing"

	"github.com/katalvlaran/latticepath/heuristic"
	"github.com/stretchr/testify/assert"
)

func TestChebyshevValueIsMaxAxisDistanceDividedByMaxDistance(t *testing.T) {
	c := heuristic.NewChebyshev([][]int{{5, 5}}, 1)
	v, ok := c.Value([]int{2, 5})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = c.Value([]int{2, 2})
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestChebyshevValuePicksNearestGoal(t *testing.T) {
	c := heuristic.NewChebyshev([][]int{{0, 0}, {10, 10}}, 1)
	v, ok := c.Value([]int{9, 9})
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestChebyshevValueNormalizesByMaxDistance(t *testing.T) {
	c := heuristic.NewChebyshev([][]int{{0, 0}}, 2)
	v, ok := c.Value([]int{4, 0})
	assert.True(t, ok)
	assert.Equal(t, 2, v) // floor(4/2)
}

func TestChebyshevValueFalseWithNoGoals(t *testing.T) {
	c := heuristic.NewChebyshev(nil, 1)
	_, ok := c.Value([]int{0, 0})
	assert.False(t, ok)
}
