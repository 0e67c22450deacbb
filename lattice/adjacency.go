package lattice

// AdjacencyMode selects which neighbor offsets EdgeCheck uses, grounded on
// original_source/pathfinder/lattice/Lattice.cpp's cubeAdjOffsets and
// rhomDodAdjOffsets tables (there hard-coded for order 3; generalized here
// to any order).
type AdjacencyMode int

const (
	// Cube connects a cell to its 2*order axis-aligned neighbors (the
	// offsets {+e_i, -e_i} for every axis i).
	Cube AdjacencyMode = iota
	// RhombicDodecahedron connects a cell to the neighbors obtained by
	// moving +-1 along each of two distinct axes simultaneously (the
	// original's rhomDodAdjOffsets table, generalized from 3 axes to any
	// order: for every unordered axis pair (i,j), all four sign
	// combinations).
	RhombicDodecahedron
)

// offsetsForMode returns the raw offset vectors (length == order) used to
// build adjIndices for the given mode.
func offsetsForMode(mode AdjacencyMode, order int) [][]int {
	switch mode {
	case RhombicDodecahedron:
		return rhombicDodecahedronOffsets(order)
	default:
		return cubeOffsets(order)
	}
}

func cubeOffsets(order int) [][]int {
	offsets := make([][]int, 0, 2*order)
	for axis := 0; axis < order; axis++ {
		plus := make([]int, order)
		plus[axis] = 1
		offsets = append(offsets, plus)

		minus := make([]int, order)
		minus[axis] = -1
		offsets = append(offsets, minus)
	}
	return offsets
}

func rhombicDodecahedronOffsets(order int) [][]int {
	var offsets [][]int
	for i := 0; i < order; i++ {
		for j := i + 1; j < order; j++ {
			for _, si := range [2]int{1, -1} {
				for _, sj := range [2]int{1, -1} {
					v := make([]int, order)
					v[i] = si
					v[j] = sj
					offsets = append(offsets, v)
				}
			}
		}
	}
	return offsets
}
