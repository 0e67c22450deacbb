package scenario

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/search"
)

// WriteSCEN emits the blank-line-separated blocks of spec.md §6.3:
// visual groups, modules, then one moves-block per path step (each step's
// first move line is that block's "checkpoint" line, per
// original_source/Visualization/src/Scenario.cpp's parser, which resets its
// checkpoint flag on every blank line and clears it after the block's first
// move). Coordinates are padded to three components (z=0 for a 2-D lattice)
// since the format is always x,y,z.
func WriteSCEN(w io.Writer, groups []VisualGroup, modules []ModuleView, path []search.Step) error {
	bw := bufio.NewWriter(w)

	for _, g := range groups {
		if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d,%d\n", g.ID, clamp(g.R, 0, 255), clamp(g.G, 0, 255), clamp(g.B, 0, 255), clamp(g.Scale, 10, 100)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	for _, m := range modules {
		x, y, z := coord3(m.Coords)
		if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d,%d\n", m.ID, m.GroupID, x, y, z); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	for _, step := range path {
		for _, mm := range step.Moves {
			dx, dy, dz := coord3(signedOffset(mm.Move, step.Reversed))
			if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d,%d\n", mm.ModuleID, anchorCode(mm.Move), dx, dy, dz); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func coord3(c []int) (int, int, int) {
	var out [3]int
	copy(out[:], c)
	return out[0], out[1], out[2]
}

func signedOffset(mv *move.Move, reversed bool) []int {
	if !reversed {
		return mv.FinalOffset
	}
	neg := make([]int, len(mv.FinalOffset))
	for i, v := range mv.FinalOffset {
		neg[i] = -v
	}
	return neg
}

// anchorCode encodes mv.FinalOffset's dominant face direction per
// original_source/Visualization/src/Scenario.cpp's decoder: magnitude 1..3
// for +x/+y/+z, 4..6 for -x/-y/-z, 0 for an offset that is not a single-axis
// unit-or-more step (a diagonal/pivot move with no clean face direction).
// The sign distinguishes pivot (positive) from sliding (negative) -- a move
// is a pivot if any of its Offsets requires an occupied anchor cell.
func anchorCode(mv *move.Move) int {
	mag := faceDirection(mv.FinalOffset)
	if mag == 0 {
		return 0
	}
	if isPivot(mv) {
		return mag
	}
	return -mag
}

func isPivot(mv *move.Move) bool {
	for _, oc := range mv.Offsets {
		if oc.MustBeOccupied {
			return true
		}
	}
	return false
}

func faceDirection(offset []int) int {
	axis := -1
	for i, v := range offset {
		if v == 0 {
			continue
		}
		if axis != -1 {
			return 0 // more than one non-zero axis: not a clean face direction
		}
		axis = i
	}
	if axis == -1 || axis > 2 {
		return 0
	}
	if offset[axis] > 0 {
		return axis + 1
	}
	return axis + 4
}
