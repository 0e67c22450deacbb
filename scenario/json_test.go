package scenario_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/property"
	"github.com/katalvlaran/latticepath/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenarioJSON = `{
  "order": 2,
  "modules": [
    {"position": [-1, 0], "static": true},
    {"position": [2, 0], "properties": {"colorProperty": {"color": "#ff0000"}}},
    {"position": [3, 0], "properties": {"colorProperty": [0, 255, 0]}}
  ],
  "adjacencyMode": "Cube Face",
  "tensorPadding": 1
}`

func TestLoadStateDecodesModulesStaticLastNonStaticFirst(t *testing.T) {
	modules, cfg, err := scenario.LoadState(strings.NewReader(sampleScenarioJSON))
	require.NoError(t, err)
	require.Len(t, modules, 3)

	assert.Equal(t, lattice.Cube, cfg.Mode)
	assert.Equal(t, 1, cfg.Pad)

	// Non-static modules get the dense id prefix; the static module comes
	// last (spec.md §3: "non-static ids form the prefix [0, S)").
	assert.False(t, modules[0].Static)
	assert.False(t, modules[1].Static)
	assert.True(t, modules[2].Static)
	assert.Equal(t, 0, modules[0].ID)
	assert.Equal(t, 1, modules[1].ID)
	assert.Equal(t, 2, modules[2].ID)

	red, ok := modules[0].Properties.Find(property.ColorPropertyName).(*property.ColorProperty)
	require.True(t, ok)
	assert.Equal(t, 0xFF0000, red.RGB)

	green, ok := modules[1].Properties.Find(property.ColorPropertyName).(*property.ColorProperty)
	require.True(t, ok)
	assert.Equal(t, 0x00FF00, green.RGB)
}

func TestLoadStateDecodesOrientationProperty(t *testing.T) {
	const withOrientation = `{
	  "order": 2,
	  "modules": [
	    {"position": [0, 0], "properties": {"orientationProperty": {"orientation": [90, -90]}}},
	    {"position": [1, 0], "properties": {"orientationProperty": [0, 450]}}
	  ]
	}`
	modules, _, err := scenario.LoadState(strings.NewReader(withOrientation))
	require.NoError(t, err)
	require.Len(t, modules, 2)

	wrapped, ok := modules[0].Properties.Find(property.OrientationPropertyName).(*property.OrientationProperty)
	require.True(t, ok)
	assert.Equal(t, []int{90, 270}, wrapped.Degrees)

	bare, ok := modules[1].Properties.Find(property.OrientationPropertyName).(*property.OrientationProperty)
	require.True(t, ok)
	assert.Equal(t, []int{0, 90}, bare.Degrees)
}

func TestLoadStateRejectsDuplicatePositions(t *testing.T) {
	const dup = `{"order":2,"modules":[{"position":[1,1]},{"position":[1,1]}]}`
	_, _, err := scenario.LoadState(strings.NewReader(dup))
	assert.ErrorIs(t, err, scenario.ErrDuplicateModulePosition)
}

func TestLoadStateRejectsUnknownAdjacencyMode(t *testing.T) {
	const bad = `{"order":2,"modules":[{"position":[0,0]}],"adjacencyMode":"Hex"}`
	_, _, err := scenario.LoadState(strings.NewReader(bad))
	assert.ErrorIs(t, err, scenario.ErrUnknownAdjacencyMode)
}

func TestPreprocessShiftsNegativeCoordinatesNonNegative(t *testing.T) {
	modules, cfg, err := scenario.LoadState(strings.NewReader(sampleScenarioJSON))
	require.NoError(t, err)

	shifted, sized, err := scenario.Preprocess(modules, cfg)
	require.NoError(t, err)

	for _, m := range shifted {
		for _, c := range m.Coords {
			assert.GreaterOrEqual(t, c, 0)
			assert.Less(t, c, sized.AxisSize)
		}
	}
	assert.Greater(t, sized.AxisSize, 0)
}
