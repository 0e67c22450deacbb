package move_test

import (
	"testing"

	"github.com/katalvlaran/latticepath/move"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogDeduplicatesAndIndexesByOffset(t *testing.T) {
	base, err := move.ParseGrid2D([]string{"?!"})
	require.NoError(t, err)

	cat := move.NewCatalog([]*move.Move{base}, 2)

	assert.Len(t, cat.Moves(), 4)
	assert.Len(t, cat.ByOffset([]int{1, 0}), 1)
	assert.Equal(t, 1, cat.MaxDistance())
}

func TestNewCatalogDeduplicatesAcrossOverlappingBases(t *testing.T) {
	base1, err := move.ParseGrid2D([]string{"?!"})
	require.NoError(t, err)
	base2, err := move.ParseGrid2D([]string{"?!"})
	require.NoError(t, err)

	cat := move.NewCatalog([]*move.Move{base1, base2}, 2)
	assert.Len(t, cat.Moves(), 4)
}
