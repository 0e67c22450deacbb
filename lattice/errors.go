package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrCellOccupied is wrapped in the value AddModule panics with when the
	// target cell does not hold FreeSpace.
	ErrCellOccupied = errors.New("lattice: cell is not free")
	// ErrBoundaryOccupied is returned by AddBoundary when a module already
	// occupies the target cell.
	ErrBoundaryOccupied = errors.New("lattice: cannot place boundary over a module")
	// ErrModuleNotFound is returned when a lookup by module id fails.
	ErrModuleNotFound = errors.New("lattice: module id not found")
	// ErrStateCorrupt is the "no-op-with-error" signal from Restore when the
	// target set's module count disagrees with the current lattice (spec.md
	// §4.2, step 3 of the snapshot/restore protocol). It is logged, not
	// propagated as fatal, by callers that follow SPEC_FULL.md §4.2.
	ErrStateCorrupt = errors.New("lattice: restore target disagrees with current module count")
	// ErrAdjacencyMismatch indicates the adjacency list and coordinate
	// tensor disagree about which modules are neighbors -- a programmer
	// error, not a recoverable runtime condition.
	ErrAdjacencyMismatch = errors.New("lattice: adjacency list inconsistent with coordinate tensor")
)
