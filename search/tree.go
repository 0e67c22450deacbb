package search

import (
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
)

// ConfigID indexes a node in a Tree's arena (spec.md §4.5: "Configurations
// live on the heap, owned by their parent"; ADDED translation per
// SPEC_FULL.md §3.1: a slice-backed arena instead of individually
// heap-allocated parent-owning nodes, since Go has no manual ownership to
// mirror and a flat arena keeps path reconstruction a simple parent-id walk).
type ConfigID uint32

// noParent marks the root of a Tree.
const noParent = ^ConfigID(0)

// origin tags which search endpoint discovered a configuration, used by the
// bidirectional searches to detect a meeting (spec.md §4.6).
type origin uint8

const (
	originNone origin = iota
	originStart
	originGoal
)

// ModuleMove re-exports move.ModuleMove's shape for path/Step reconstruction,
// so callers of this package never need to import move just to name the
// field type.
type ModuleMove = move.ModuleMove

// Step is one edge of a reconstructed path: every module that moved to
// produce this configuration from its parent, and with which move. len==1
// for serial expansion; len>1 for a parallel step (spec.md §4.4/§6.3).
// Reversed marks a step spliced in from a bidirectional search's goal-side
// half-path: a consumer should undo (move.Unapply) rather than apply these
// moves when walking root-to-goal (spec.md §4.6, "reversing the END half").
type Step struct {
	Moves    []ModuleMove
	Reversed bool
}

// config is one arena-held search node.
type config struct {
	state  *module.DataSet
	parent ConfigID
	depth  int
	moves  []ModuleMove // moves that produced this node from its parent; nil at the root
	org    origin
}

// Tree is the arena backing a single search run's configuration graph
// (spec.md §4.5, ADDED translation: "Configurations live on the heap, owned
// by their parent" -- root owned by the search -- becomes a flat slice
// instead of individually new'd/freed nodes, since resource discipline in Go
// is the garbage collector's job, not the ownership chain's; see DESIGN.md).
type Tree struct {
	nodes []config
}

// NewTree returns an empty arena.
func NewTree() *Tree { return &Tree{} }

// AddRoot inserts state as a new root (no parent) tagged with org, returning
// its id.
func (t *Tree) AddRoot(state *module.DataSet, org origin) ConfigID {
	t.nodes = append(t.nodes, config{state: state, parent: noParent, org: org})
	return ConfigID(len(t.nodes) - 1)
}

// AddChild inserts state as a child of parent, produced via moves, returning
// its id.
func (t *Tree) AddChild(parent ConfigID, state *module.DataSet, moves []ModuleMove) ConfigID {
	p := t.nodes[parent]
	t.nodes = append(t.nodes, config{state: state, parent: parent, depth: p.depth + 1, moves: moves, org: p.org})
	return ConfigID(len(t.nodes) - 1)
}

// State returns id's snapshot.
func (t *Tree) State(id ConfigID) *module.DataSet { return t.nodes[id].state }

// Depth returns id's distance (in edges) from its root.
func (t *Tree) Depth(id ConfigID) int { return t.nodes[id].depth }

// Parent returns id's parent and whether id is a root.
func (t *Tree) Parent(id ConfigID) (ConfigID, bool) {
	p := t.nodes[id].parent
	return p, p != noParent
}

// Origin returns which search endpoint's expansion first produced id.
func (t *Tree) Origin(id ConfigID) origin { return t.nodes[id].org }

// PathFromRoot walks id back to its root and returns the Steps in
// root-to-id order.
func (t *Tree) PathFromRoot(id ConfigID) []Step {
	var rev []Step
	cur := id
	for {
		n := t.nodes[cur]
		if n.parent == noParent {
			break
		}
		rev = append(rev, Step{Moves: n.moves})
		cur = n.parent
	}
	out := make([]Step, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}
	return out
}
