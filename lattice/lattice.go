// Package lattice implements the mutable coordinate-tensor-plus-adjacency-graph
// state machine described by spec.md §4.2: module placement, edge
// maintenance, connectivity checks, articulation-point analysis, and the
// snapshot/restore protocol used to move between search states.
package lattice

import (
	"fmt"
	"log"
	"sort"

	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
	"github.com/katalvlaran/latticepath/tensor"
)

// Lattice is a plain struct, not a package-level singleton, despite the
// original's process-wide statics (spec.md §4.2, §5) -- one value per
// search run, owned by the planner (SPEC_FULL.md DESIGN NOTES translation).
type Lattice struct {
	cells      *tensor.CellTensor
	order      int
	axisSize   int
	pad        int
	mode       AdjacencyMode
	adjIndices []int

	modules map[int]*module.Module
	adjList [][]int

	ignoreProperties bool
	logger           *log.Logger
}

// New builds an axisSize+2*pad cube of cells: interior cells start
// FreeSpace, the pad-thick exterior shell starts OutOfBounds
// (spec.md §4.2, "init"). adjacency offsets are derived from mode via
// SetAdjIndices.
func New(order, axisSize, pad int, mode AdjacencyMode, logger *log.Logger) *Lattice {
	if logger == nil {
		logger = log.Default()
	}
	padded := axisSize + 2*pad
	cells := tensor.NewCellTensor(order, padded, tensor.OutOfBounds, nil)

	for i := 0; i < cells.Len(); i++ {
		coords := cells.CoordsFromIndex(i)
		interior := true
		for _, c := range coords {
			if c < pad || c >= padded-pad {
				interior = false
				break
			}
		}
		if interior {
			cells.SetIndex(i, tensor.FreeSpace)
		}
	}

	l := &Lattice{
		cells:    cells,
		order:    order,
		axisSize: padded,
		pad:      pad,
		mode:     mode,
		modules:  make(map[int]*module.Module),
		logger:   logger,
	}
	l.SetAdjIndices(offsetsForMode(mode, order))
	return l
}

// SetIgnoreProperties toggles whether Snapshot/Restore and the hashing it
// feeds treat property state as significant (spec.md §4.2: "the
// ignore-properties flag").
func (l *Lattice) SetIgnoreProperties(v bool) { l.ignoreProperties = v }

// IgnoreProperties reports the current flag value.
func (l *Lattice) IgnoreProperties() bool { return l.ignoreProperties }

// Order returns the coordinate dimensionality.
func (l *Lattice) Order() int { return l.order }

// AxisSize returns the padded per-axis cell count.
func (l *Lattice) AxisSize() int { return l.axisSize }

// Pad returns the boundary thickness added on each side of each axis.
func (l *Lattice) Pad() int { return l.pad }

// Cells exposes the backing occupancy tensor for move legality checks.
func (l *Lattice) Cells() *tensor.CellTensor { return l.cells }

// ModuleByID returns the registered module with the given id, or (nil,
// false) if none exists.
func (l *Lattice) ModuleByID(id int) (*module.Module, bool) {
	m, ok := l.modules[id]
	return m, ok
}

// AdjacencyOf returns a copy of id's current adjacency list.
func (l *Lattice) AdjacencyOf(id int) []int {
	return append([]int(nil), l.adjList[id]...)
}

// AnyStaticID returns the id of an arbitrary static module, used by the
// parallel move engine to force a temporary anchor edge (spec.md §4.4: "if
// static modules exist, force an edge from each m in M to an arbitrary
// static anchor").
func (l *Lattice) AnyStaticID() (int, bool) {
	for id, m := range l.modules {
		if m.Static {
			return id, true
		}
	}
	return 0, false
}

// ForceEdge adds a temporary undirected edge between a and b, bypassing
// EdgeCheck's geometric adjacency test.
func (l *Lattice) ForceEdge(a, b int) { l.addEdge(a, b) }

// SetAdjIndices converts offset vectors into linear-index deltas for O(1)
// neighbor lookups (spec.md §4.2, "set_adj_indices"); an offset whose delta
// is zero (e.g. the zero vector) is skipped.
func (l *Lattice) SetAdjIndices(offsets [][]int) {
	l.adjIndices = l.adjIndices[:0]
	for _, off := range offsets {
		idx := l.cells.IndexFromCoords(off)
		if idx != 0 {
			l.adjIndices = append(l.adjIndices, idx)
		}
	}
}

// AddModule writes m's coordinate into the cell tensor, records it in the
// registry, and runs EdgeCheck to populate its initial adjacency. Panics if
// the target cell is not FreeSpace (spec.md §4.2: "Panics if cell was not
// FREE_SPACE", a programmer-error precondition per §7).
func (l *Lattice) AddModule(m module.Module) error {
	cur := l.cells.GetChecked(m.Coords)
	if cur != tensor.FreeSpace {
		panic(fmt.Errorf("%w: id=%d coords=%v cell=%v", ErrCellOccupied, m.ID, m.Coords, cur))
	}
	l.cells.Set(m.Coords, tensor.Cell(m.ID))

	mm := m
	l.modules[m.ID] = &mm

	if m.ID >= len(l.adjList) {
		grown := make([][]int, m.ID+1)
		copy(grown, l.adjList)
		l.adjList = grown
	}

	l.EdgeCheck(m.ID)
	return nil
}

// AddBoundary marks coords OutOfBounds. Returns ErrBoundaryOccupied if a
// module currently occupies it (spec.md §4.2: "Errors if a module occupies
// it").
func (l *Lattice) AddBoundary(coords []int) error {
	cur := l.cells.GetChecked(coords)
	if cur.IsModule() {
		return fmt.Errorf("%w: coords=%v", ErrBoundaryOccupied, coords)
	}
	l.cells.Set(coords, tensor.OutOfBounds)
	return nil
}

// ClearAdjacency removes id from every neighbor's adjacency list and empties
// id's own list (spec.md §4.2: "Used before moving").
func (l *Lattice) ClearAdjacency(id int) {
	for _, nb := range l.adjList[id] {
		l.adjList[nb] = removeValue(l.adjList[nb], id)
	}
	l.adjList[id] = l.adjList[id][:0]
}

func removeValue(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// EdgeCheck scans every adjacency delta from m's cell and adds an undirected
// edge to any neighbor cell holding a non-negative module id (spec.md §4.2:
// "For each linear delta, if the neighbor cell holds a non-negative id, add
// the undirected edge").
func (l *Lattice) EdgeCheck(id int) {
	m, ok := l.modules[id]
	if !ok {
		return
	}
	modIdx := l.cells.IndexFromCoords(m.Coords)
	maxIdx := l.cells.Len() - 1
	for _, delta := range l.adjIndices {
		nbIdx := modIdx + delta
		if nbIdx < 0 || nbIdx > maxIdx {
			continue
		}
		nb := l.cells.GetIndex(nbIdx)
		if nb.IsModule() {
			l.addEdge(id, int(nb))
		}
	}
}

func (l *Lattice) addEdge(a, b int) {
	if a == b {
		return
	}
	if !containsInt(l.adjList[a], b) {
		l.adjList[a] = append(l.adjList[a], b)
	}
	if !containsInt(l.adjList[b], a) {
		l.adjList[b] = append(l.adjList[b], a)
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// CheckConnected reports whether a DFS from module id 0 reaches at least
// moduleCount-permitMissing modules (spec.md §4.2: "DFS from id 0; returns
// true iff visited count >= moduleCount - permit_missing").
func (l *Lattice) CheckConnected(permitMissing int) bool {
	count := len(l.modules)
	if count == 0 {
		return true
	}
	visited := make(map[int]bool, count)
	stack := []int{0}
	visited[0] = true
	visitedCount := 0
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visitedCount++
		for _, nb := range l.adjList[node] {
			if !visited[nb] {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return visitedCount >= count-permitMissing
}

// MovableModules runs articulation-point analysis over the full adjacency
// graph (static modules included, exactly as
// original_source/pathfinder/lattice/Lattice.cpp's BuildMovableModules
// does), then returns the ids of every non-static, non-cut module (spec.md
// §4.2: "non-static, non-cut modules only"). The iterative DFS is
// authoritative per SPEC_FULL.md §4.2 / §9.
func (l *Lattice) MovableModules() []int {
	cuts := apIterative(l.adjList)
	out := make([]int, 0, len(l.modules))
	for id, m := range l.modules {
		if m.Static || cuts[id] {
			continue
		}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// NonStaticCount returns the number of registered non-static modules.
func (l *Lattice) NonStaticCount() int {
	n := 0
	for _, m := range l.modules {
		if !m.Static {
			n++
		}
	}
	return n
}

// StaticCoords returns a copy of every static module's current coordinate,
// used by heuristic cache construction to seed reverse-BFS fills without
// needing the module registry (spec.md §4.7, "for each goal position").
func (l *Lattice) StaticCoords() [][]int {
	var out [][]int
	for _, m := range l.modules {
		if m.Static {
			out = append(out, append([]int(nil), m.Coords...))
		}
	}
	return out
}

// WithNonStaticCleared temporarily marks every non-static module's cell
// FreeSpace, runs fn, then restores the original occupancy -- the "remove
// all non-static modules from the lattice ... restore afterwards" step
// heuristic cache construction requires (spec.md §4.7). Adjacency lists are
// left untouched since fn is expected to only read the cell tensor.
func (l *Lattice) WithNonStaticCleared(fn func()) {
	type saved struct {
		coords []int
		cell   tensor.Cell
	}
	var restore []saved
	for _, m := range l.modules {
		if m.Static {
			continue
		}
		restore = append(restore, saved{coords: m.Coords, cell: l.cells.GetChecked(m.Coords)})
		l.cells.Set(m.Coords, tensor.FreeSpace)
	}

	fn()

	for _, s := range restore {
		l.cells.Set(s.coords, s.cell)
	}
}

// Snapshot returns the set of ModuleData for every non-static module
// (spec.md §4.2: "get_module_info").
func (l *Lattice) Snapshot() *module.DataSet {
	items := make([]module.Data, 0, len(l.modules))
	for _, m := range l.modules {
		if m.Static {
			continue
		}
		coords := make([]int, len(m.Coords))
		copy(coords, m.Coords)
		var props *property.Set
		if m.Properties != nil {
			props = m.Properties.Clone()
		}
		items = append(items, module.Data{Coords: coords, Properties: props})
	}
	return module.NewDataSet(items)
}

// Restore transforms the lattice to match target following the three-step
// protocol of spec.md §4.2:
//  1. entries whose coordinate already holds a non-static module: update
//     properties in place, mark done.
//  2. remaining entries are destinations, matched in stable id order
//     against remaining (non-done) movable modules.
//  3. if counts disagree, the call is a no-op-with-error: ErrStateCorrupt is
//     logged and returned without mutating the lattice further.
func (l *Lattice) Restore(target *module.DataSet) error {
	entries := target.Items()

	nonStaticIDs := make([]int, 0, len(l.modules))
	for id, m := range l.modules {
		if !m.Static {
			nonStaticIDs = append(nonStaticIDs, id)
		}
	}
	sort.Ints(nonStaticIDs)

	if len(entries) != len(nonStaticIDs) {
		l.logger.Printf("lattice: restore failed: %v (target has %d entries, lattice has %d non-static modules)",
			ErrStateCorrupt, len(entries), len(nonStaticIDs))
		return ErrStateCorrupt
	}

	done := make(map[int]bool, len(nonStaticIDs))
	var destinations []module.Data

	for _, entry := range entries {
		cur := l.cells.GetChecked(entry.Coords)
		if cur.IsModule() {
			id := int(cur)
			if m, ok := l.modules[id]; ok && !m.Static {
				if entry.Properties != nil {
					m.Properties = entry.Properties.Clone()
				}
				done[id] = true
				continue
			}
		}
		destinations = append(destinations, entry)
	}

	var movable []int
	for _, id := range nonStaticIDs {
		if !done[id] {
			movable = append(movable, id)
		}
	}

	if len(movable) != len(destinations) {
		l.logger.Printf("lattice: restore failed: %v (movable=%d destinations=%d)",
			ErrStateCorrupt, len(movable), len(destinations))
		return ErrStateCorrupt
	}

	for i, id := range movable {
		m := l.modules[id]
		dest := destinations[i]

		l.ClearAdjacency(id)
		l.cells.Set(m.Coords, tensor.FreeSpace)
		m.Coords = append([]int(nil), dest.Coords...)
		if dest.Properties != nil {
			m.Properties = dest.Properties.Clone()
		}
		l.cells.Set(m.Coords, tensor.Cell(id))
		l.EdgeCheck(id)
	}

	return nil
}
