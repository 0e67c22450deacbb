package scenario

import "github.com/katalvlaran/latticepath/lattice"

// LatticeConfig carries the lattice-construction parameters a scenario file
// supplies or implies (spec.md §6.1: "order", "adjacencyMode"/"adjacencyOffsets",
// "boundaries", "tensorPadding"), generalizing the original's free-standing
// LatticeSetup globals into a value the caller threads through lattice.New.
type LatticeConfig struct {
	Order       int
	AxisSize    int
	Pad         int
	Mode        lattice.AdjacencyMode
	// CustomOffsets overrides Mode when non-empty (spec.md §6.1:
	// "adjacencyOffsets... overrides mode").
	CustomOffsets [][]int
	Boundaries    [][]int
}

// VisualGroup is one line of a .scen file's first block: a visual style
// shared by every module assigned to it (spec.md §6.3, "id,r,g,b,scale").
type VisualGroup struct {
	ID    int
	R     int
	G     int
	B     int
	Scale int
}

// ModuleView is one line of a .scen file's second block: a module's
// identity, its visual group, and its coordinate (spec.md §6.3,
// "id,group,x,y,z").
type ModuleView struct {
	ID      int
	GroupID int
	Coords  []int
}
