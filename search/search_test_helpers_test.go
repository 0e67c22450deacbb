package search_test

import (
	"log"
	"testing"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/move"
	"github.com/stretchr/testify/require"
)

func newSearchTestLattice(axisSize int) *lattice.Lattice {
	return lattice.New(2, axisSize, 0, lattice.Cube, log.New(log.Writer(), "", 0))
}

func cardinalCatalog(t *testing.T) *move.Catalog {
	t.Helper()
	base, err := move.ParseGrid2D([]string{"?!"})
	require.NoError(t, err)
	return move.NewCatalog([]*move.Move{base}, 2)
}
