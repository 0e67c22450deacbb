package move

import (
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/tensor"
)

// ParallelEngine implements the parallel move step of spec.md §4.4: given a
// lattice, it enumerates subsets of movable modules, verifies each subset
// stays connected with its members' adjacency cleared, then enumerates
// legal per-module move assignments against a shared scratch occupancy
// tensor, applying and recording every assignment that passes.
type ParallelEngine struct {
	Catalog *Catalog
}

// NewParallelEngine constructs a ParallelEngine over cat.
func NewParallelEngine(cat *Catalog) *ParallelEngine {
	return &ParallelEngine{Catalog: cat}
}

// ModuleMove pairs a module id with the move it executed, the unit of
// information a path reconstruction or a .scen "Moves" block needs.
type ModuleMove struct {
	ModuleID int
	Move     *Move
}

// StepResult is one parallel-expansion outcome: the resulting snapshot and
// the per-module moves that produced it (one entry per subset member).
type StepResult struct {
	State *module.DataSet
	Moves []ModuleMove
}

// Step runs one parallel expansion step over lat. isVisited is consulted
// (and must report true/false for a candidate's DataSet.Hash) so the
// engine never records a state the caller has already seen -- this keeps
// move free of any dependency on the search package's visited-set type.
func (e *ParallelEngine) Step(lat *lattice.Lattice, ignoreProperties bool, isVisited func(hash uint64) bool) ([]StepResult, error) {
	free := lat.MovableModules()
	n := len(free)
	if n == 0 {
		return nil, nil
	}

	var out []StepResult
	failCache := make(map[int]map[*Move]bool, n)

	for mask := 1; mask < (1 << uint(n)); mask++ {
		var subset []int
		for i, id := range free {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, id)
			}
		}

		if !e.subsetStaysConnected(lat, subset) {
			continue
		}

		candidates := make([][]*Move, len(subset))
		feasible := true
		for i, id := range subset {
			m, _ := lat.ModuleByID(id)
			legal := e.legalMovesAt(lat, id, m.Coords, failCache)
			if len(legal) == 0 {
				feasible = false
				break
			}
			candidates[i] = legal
		}
		if !feasible {
			continue
		}

		e.enumerateAssignments(lat, subset, candidates, ignoreProperties, isVisited, &out)
	}

	return out, nil
}

// legalMovesAt returns the subset of the catalog's moves that pass
// FreeSpaceCheck at coord, consulting and populating a per-module fail
// cache to skip moves already known to fail for this module (spec.md §4.4:
// "maintain a per-free-module cache of moves that fail free_space_check").
func (e *ParallelEngine) legalMovesAt(lat *lattice.Lattice, id int, coord []int, failCache map[int]map[*Move]bool) []*Move {
	cache := failCache[id]
	if cache == nil {
		cache = make(map[*Move]bool)
		failCache[id] = cache
	}
	var legal []*Move
	for _, mv := range e.Catalog.Moves() {
		if cache[mv] {
			continue
		}
		if FreeSpaceCheck(lat.Cells(), coord, mv) {
			legal = append(legal, mv)
		} else {
			cache[mv] = true
		}
	}
	return legal
}

// subsetStaysConnected temporarily clears every member of subset's
// adjacency (optionally forcing an anchor edge to a static module), checks
// connectivity, then restores adjacency from the coordinate tensor (spec.md
// §4.4, step 1).
func (e *ParallelEngine) subsetStaysConnected(lat *lattice.Lattice, subset []int) bool {
	for _, id := range subset {
		lat.ClearAdjacency(id)
	}

	permitMissing := 0
	if anchor, ok := lat.AnyStaticID(); ok {
		for _, id := range subset {
			lat.ForceEdge(id, anchor)
		}
	} else {
		permitMissing = len(subset)
	}

	connected := lat.CheckConnected(permitMissing)

	for _, id := range subset {
		lat.ClearAdjacency(id)
	}
	for _, id := range subset {
		lat.EdgeCheck(id)
	}

	return connected
}

// assignment pairs a module id with the move it will make.
type assignment struct {
	id int
	mv *Move
}

func (e *ParallelEngine) enumerateAssignments(lat *lattice.Lattice, subset []int, candidates [][]*Move, ignoreProperties bool, isVisited func(uint64) bool, out *[]StepResult) {
	current := make([]assignment, len(subset))
	var recurse func(i int)
	recurse = func(i int) {
		if i == len(subset) {
			e.tryAssignment(lat, current, ignoreProperties, isVisited, out)
			return
		}
		for _, mv := range candidates[i] {
			current[i] = assignment{id: subset[i], mv: mv}
			recurse(i + 1)
		}
	}
	recurse(0)
}

// tryAssignment runs the parallel move check of spec.md §4.4 step 2 against
// a scratch occupancy tensor, and if every module's move passes, applies
// them all, records the resulting snapshot (if new), and undoes them in
// reverse order.
func (e *ParallelEngine) tryAssignment(lat *lattice.Lattice, assigns []assignment, ignoreProperties bool, isVisited func(uint64) bool, out *[]StepResult) {
	scratch := lat.Cells().Clone()

	for _, a := range assigns {
		m, _ := lat.ModuleByID(a.id)
		scratch.Set(m.Coords, tensor.OccupiedNoAnchor)
	}

	for _, a := range assigns {
		m, _ := lat.ModuleByID(a.id)
		if !parallelMoveCheck(scratch, m.Coords, a.mv) {
			return
		}
		dest := addOffset(m.Coords, a.mv.FinalOffset)
		scratch.Set(dest, tensor.OccupiedNoAnchor)
	}

	for _, a := range assigns {
		m, _ := lat.ModuleByID(a.id)
		if err := Apply(lat, m, a.mv, ignoreProperties); err != nil {
			// Scratch check passed, so a live application must never fail;
			// if it does, the two checks disagree and recording a
			// half-applied state would corrupt the lattice.
			panic(err)
		}
	}

	snap := lat.Snapshot()
	if !isVisited(snap.Hash(lat.IgnoreProperties())) {
		moves := make([]ModuleMove, len(assigns))
		for i, a := range assigns {
			moves[i] = ModuleMove{ModuleID: a.id, Move: a.mv}
		}
		*out = append(*out, StepResult{State: snap, Moves: moves})
	}

	for i := len(assigns) - 1; i >= 0; i-- {
		m, _ := lat.ModuleByID(assigns[i].id)
		Unapply(lat, m, assigns[i].mv, ignoreProperties)
	}
}

// parallelMoveCheck runs the weakened per-assignment legality test of
// spec.md §4.4 step 2 against a shared scratch tensor that has every
// subset member's current cell marked OCCUPIED_NO_ANCHOR.
func parallelMoveCheck(scratch *tensor.CellTensor, coord []int, mv *Move) bool {
	for _, oc := range mv.Offsets {
		slot := addOffset(coord, oc.Offset)
		cell := scratch.GetChecked(slot)
		if oc.MustBeOccupied {
			if cell < 0 || cell == tensor.OccupiedNoAnchor {
				return false
			}
		} else {
			if cell != tensor.FreeSpace {
				return false
			}
			scratch.Set(slot, tensor.OccupiedNoAnchor)
		}
	}
	return true
}
