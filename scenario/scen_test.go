package scenario_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/scenario"
	"github.com/katalvlaran/latticepath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSCENEmitsFourBlankLineSeparatedBlocks(t *testing.T) {
	groups := []scenario.VisualGroup{{ID: 0, R: 255, G: 0, B: 0, Scale: 50}}
	modules := []scenario.ModuleView{{ID: 0, GroupID: 0, Coords: []int{2, 2}}}

	slide := &move.Move{FinalOffset: []int{1, 0}}
	pivot := &move.Move{FinalOffset: []int{0, 1}, Offsets: []move.OffsetCheck{{Offset: []int{1, 1}, MustBeOccupied: true}}}
	path := []search.Step{
		{Moves: []search.ModuleMove{{ModuleID: 0, Move: slide}}},
		{Moves: []search.ModuleMove{{ModuleID: 0, Move: pivot}}},
	}

	var buf strings.Builder
	require.NoError(t, scenario.WriteSCEN(&buf, groups, modules, path))

	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	require.Len(t, blocks, 4)

	assert.Equal(t, "0,255,0,0,50", blocks[0])
	assert.Equal(t, "0,0,2,2,0", blocks[1])
	assert.Equal(t, "0,-1,1,0,0", blocks[2]) // sliding +x: magnitude 1, sign negative
	assert.Equal(t, "0,2,0,1,0", blocks[3])  // pivot +y: magnitude 2, sign positive
}
