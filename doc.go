// Package latticepath finds reconfiguration paths for modular-robot
// lattices: given a start and goal configuration plus a catalog of
// module moves, it searches for the sequence (or set of simultaneous
// sequences) of moves that carries one into the other.
//
// The work is split across:
//
//	tensor/    — dense coordinate-indexed storage shared by the lattice cells and heuristic caches
//	module/    — module identity, position, and property bookkeeping
//	property/  — per-module property values (color, orientation, ...)
//	lattice/   — the live cell grid, adjacency tracking, and movable-module filtering
//	move/      — move template parsing, symmetry expansion, and legality checks
//	heuristic/ — admissible distance estimates for A*
//	search/    — BFS, A*, and their bidirectional variants over lattice states
//	scenario/  — scenario/move JSON decoding and .scen path export
//	planner/   — wires the above into a single Run call
//	cmd/latticepath/ — the CLI
package latticepath
