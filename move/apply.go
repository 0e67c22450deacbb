package move

import (
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
	"github.com/katalvlaran/latticepath/tensor"
)

// Apply relocates m by mv's FinalOffset: clears its adjacency, writes
// FreeSpace to its old cell, adds the offset to its coordinate, writes its
// id to the new cell, reruns EdgeCheck, and -- unless ignoreProperties --
// fires every Dynamic property's OnMove hook (spec.md §4.3: "apply").
// Returns ErrIllegalMove if Check fails first.
func Apply(lat *lattice.Lattice, m *module.Module, mv *Move, ignoreProperties bool) error {
	if !Check(lat, m, mv) {
		return ErrIllegalMove
	}
	relocate(lat, m, mv.FinalOffset, mv.FinalOffset, ignoreProperties, false)
	return nil
}

// Unapply is Apply's exact inverse: it relocates m by -mv.FinalOffset and
// fires Dynamic updates with reversing=true, without re-running Check (the
// module's current position is mv's destination, not a position Check's
// offset constraints describe) -- grounded on
// original_source/pathfinder/moves/MoveManager.cpp's UnMoveModule, which is
// MoveModule with the offset negated and no precondition re-check. The
// property hook fires with the original (non-negated) mv.FinalOffset --
// reversing is the single sign source (property/property_test.go:71-78) --
// so negating the offset again here would double-cancel the heading change
// Apply made instead of restoring it.
func Unapply(lat *lattice.Lattice, m *module.Module, mv *Move, ignoreProperties bool) {
	negated := make([]int, len(mv.FinalOffset))
	for i, v := range mv.FinalOffset {
		negated[i] = -v
	}
	relocate(lat, m, negated, mv.FinalOffset, ignoreProperties, true)
}

func relocate(lat *lattice.Lattice, m *module.Module, coordOffset, propertyOffset []int, ignoreProperties, reversing bool) {
	lat.ClearAdjacency(m.ID)
	lat.Cells().Set(m.Coords, tensor.FreeSpace)
	m.Coords = addOffset(m.Coords, coordOffset)
	lat.Cells().Set(m.Coords, tensor.Cell(m.ID))
	lat.EdgeCheck(m.ID)

	if !ignoreProperties && m.Properties != nil {
		_ = m.Properties.EachDynamic(func(p property.Dynamic) error {
			return p.OnMove(propertyOffset, reversing)
		})
	}
}
