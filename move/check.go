package move

import (
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
	"github.com/katalvlaran/latticepath/tensor"
)

func addOffset(coords, offset []int) []int {
	out := make([]int, len(coords))
	for i := range coords {
		out[i] = coords[i] + offset[i]
	}
	return out
}

// Check reports whether mv is legal for m at its current position: every
// offset constraint is satisfied against lat's cell tensor, and every
// property predicate passes (spec.md §4.3: "move_check").
func Check(lat *lattice.Lattice, m *module.Module, mv *Move) bool {
	cells := lat.Cells()
	for _, oc := range mv.Offsets {
		cell := cells.GetChecked(addOffset(m.Coords, oc.Offset))
		if oc.MustBeOccupied {
			if !cell.IsModule() {
				return false
			}
		} else if cell != tensor.FreeSpace {
			return false
		}
	}
	for _, pc := range mv.PropertyChecks {
		if !evalPropertyCheck(lat, m, pc) {
			return false
		}
	}
	return true
}

func evalPropertyCheck(lat *lattice.Lattice, m *module.Module, pc PropertyCheck) bool {
	coords := addOffset(m.Coords, pc.ModuleOffset)
	cell := lat.Cells().GetChecked(coords)
	if !cell.IsModule() {
		return false
	}
	other, ok := lat.ModuleByID(int(cell))
	if !ok || other.Properties == nil {
		return false
	}
	p := other.Properties.Find(pc.PropertyName)
	if p == nil {
		return false
	}
	ie, ok := p.(property.IntEncodable)
	if !ok {
		return false
	}
	v, err := ie.EncodeInt()
	return err == nil && v == pc.WantInt
}

// FreeSpaceCheck is a weaker version of Check used by heuristic caches to
// model "someone could be there": "must be empty" slots must hold FreeSpace
// (OutOfBounds, OccupiedNoAnchor or a module there fails), anchor slots must
// not be OutOfBounds (spec.md §4.3).
func FreeSpaceCheck(cells *tensor.CellTensor, coord []int, mv *Move) bool {
	for _, oc := range mv.Offsets {
		cell := cells.GetChecked(addOffset(coord, oc.Offset))
		if oc.MustBeOccupied {
			if cell == tensor.OutOfBounds {
				return false
			}
		} else if cell != tensor.FreeSpace {
			return false
		}
	}
	return true
}

// FreeSpaceCheckWithHelp further weakens FreeSpaceCheck: anchor slots may be
// empty if helpTensor's value there is below helpBudget, and at most
// helpBudget anchor slots total may be "borrowed" this way (spec.md §4.3).
func FreeSpaceCheckWithHelp(cells *tensor.CellTensor, coord []int, mv *Move, helpTensor *tensor.Tensor[int], helpBudget int) bool {
	borrowed := 0
	for _, oc := range mv.Offsets {
		cell := cells.GetChecked(addOffset(coord, oc.Offset))
		if oc.MustBeOccupied {
			if cell == tensor.OutOfBounds {
				return false
			}
			if cell == tensor.FreeSpace {
				if borrowed >= helpBudget {
					return false
				}
				hc := addOffset(coord, oc.Offset)
				if !helpTensor.InBounds(hc) || helpTensor.Get(hc) >= helpBudget {
					return false
				}
				borrowed++
			}
			continue
		}
		if cell != tensor.FreeSpace {
			return false
		}
	}
	return true
}
