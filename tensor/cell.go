// Package tensor provides a dense N-dimensional array indexed by integer
// coordinate vectors, with fast index<->coordinate mapping and an optional
// origin offset transparently applied to every access.
package tensor

// Cell is the payload type for coordinate tensors that track module
// occupancy. Any non-negative Cell value is a module id; the remaining
// values are sentinels.
type Cell int32

const (
	// FreeSpace marks an empty, in-bounds cell.
	FreeSpace Cell = -1
	// OutOfBounds marks a cell inside the padding or a forbidden region.
	OutOfBounds Cell = -2
	// OccupiedNoAnchor is a transient marker used only by the parallel
	// move checker (tensor/cell.go is the single source of truth so that
	// lattice and move never disagree on its value).
	OccupiedNoAnchor Cell = 1<<31 - 1
)

// IsModule reports whether c identifies an occupying module rather than a
// sentinel value.
func (c Cell) IsModule() bool {
	return c >= 0
}
