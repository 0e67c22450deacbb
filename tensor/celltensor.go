package tensor

// CellTensor is the integer-occupancy specialization of Tensor used by the
// lattice: any out-of-range access returns the OutOfBounds sentinel instead
// of panicking, per spec §4.1 ("accessing out-of-range coordinates returns
// the OUT_OF_BOUNDS sentinel for the integer specialization").
type CellTensor struct {
	*Tensor[Cell]
}

// NewCellTensor constructs a CellTensor of the given order and axisSize,
// filled with fill.
func NewCellTensor(order, axisSize int, fill Cell, originOffset []int) *CellTensor {
	return &CellTensor{Tensor: New[Cell](order, axisSize, fill, originOffset)}
}

// GetChecked returns OutOfBounds for any coords outside [0, axisSize) on any
// axis, and the stored Cell otherwise. coords are pre-offset (the offset, if
// any, is applied internally exactly as Get does).
func (c *CellTensor) GetChecked(coords []int) Cell {
	if !c.InBounds(coords) {
		return OutOfBounds
	}
	return c.Get(coords)
}

// SetChecked stores v at coords, returning false without writing if coords
// is out of range.
func (c *CellTensor) SetChecked(coords []int, v Cell) bool {
	if !c.InBounds(coords) {
		return false
	}
	c.Set(coords, v)
	return true
}

// Clone returns an independent scratch copy, used by the parallel move
// engine's per-assignment OCCUPIED_NO_ANCHOR bookkeeping (spec.md §4.4).
func (c *CellTensor) Clone() *CellTensor {
	return &CellTensor{Tensor: c.Tensor.Clone()}
}
