package move

import "fmt"

// CellMark is one of the five characters a move template grid may use,
// grounded on original_source/pathfinder/moves/MoveManager.h's Move::State
// enum (`NOCHECK=' ', EMPTY='x', INITIAL='?', FINAL='!', STATIC='#'`).
type CellMark rune

const (
	NoCheck    CellMark = ' '
	MustEmpty  CellMark = 'x'
	MustAnchor CellMark = '#'
	Initial    CellMark = '?'
	Final      CellMark = '!'
)

// OffsetCheck is one constrained cell of a move template: a coordinate
// offset relative to the moving module's initial position, and whether
// that offset must be occupied (an anchor) or must be empty.
type OffsetCheck struct {
	Offset         []int
	MustBeOccupied bool
}

// AnimSegment is a single animation tag for downstream visualization
// (spec.md §4.3, "a list of animation segments"). The tag is opaque text
// carried through symmetry expansion unchanged; only its Offset transforms,
// generalizing the original's lattice-specific AnimType enum (PIVOT_PX,
// RD_PXPY, ...) to an arbitrary-order lattice -- that enum hard-codes 3
// axes and two specific adjacency shapes (cube, rhombic dodecahedron) and
// does not generalize past order 3.
type AnimSegment struct {
	Tag    string
	Offset []int
}

// PropertyCheck is a declarative precondition evaluated against the
// property bundle of the module occupying ModuleOffset (relative to the
// moving module), grounded on
// original_source/pathfinder/moves/MoveManager.h's MovePropertyCheck.
// Generalized to work over any property.IntEncodable implementation
// (rather than a registry of free functions keyed by string + nlohmann::json
// args) since color is the only concrete static property in this port.
type PropertyCheck struct {
	ModuleOffset []int
	PropertyName string
	WantInt      uint64
}

// Move is a single concrete, fully-expanded move: the result of parsing a
// template grid and (optionally) applying one symmetry transform. It is
// what the Catalog stores and what Check/Apply/Unapply operate on.
type Move struct {
	// Name carries the scenario-JSON move name through symmetry expansion,
	// purely for diagnostics (logging, .scen authoring); it plays no part in
	// Check/Apply or in structural-equality dedup.
	Name            string
	Offsets         []OffsetCheck
	InitOffset      []int
	FinalOffset     []int
	PropertyChecks  []PropertyCheck
	Anim            []AnimSegment
}

// ParseGrid2D parses a 2-D move template: rows[y] is a string whose
// character at column x describes the cell at offset (x, y) relative to
// the module's initial position (spec.md §4.3).
func ParseGrid2D(rows []string) (*Move, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTemplate
	}
	width := len(rows[0])
	for _, r := range rows {
		if len(r) != width {
			return nil, ErrNonRectangularTemplate
		}
	}

	type cellPos = struct {
		x, y int
		mark CellMark
	}
	var cells []cellPos
	for y, row := range rows {
		for x, ch := range row {
			m := CellMark(ch)
			if m == NoCheck {
				continue
			}
			cells = append(cells, cellPos{x, y, m})
		}
	}

	initOff, finalOff, err := findInitialAndFinal2D(cells)
	if err != nil {
		return nil, err
	}

	mv := &Move{InitOffset: []int{0, 0}, FinalOffset: finalOff}
	for _, c := range cells {
		if c.mark == Initial {
			continue
		}
		// Final falls through to an implicit must-be-empty check, exactly as
		// original_source/pathfinder/moves/MoveManager.cpp's InitMove switch
		// does (FINAL has no break, so it also executes the EMPTY case):
		// the destination cell must be unoccupied before the move.
		off := []int{c.x - initOff[0], c.y - initOff[1]}
		mv.Offsets = append(mv.Offsets, OffsetCheck{Offset: off, MustBeOccupied: c.mark == MustAnchor})
	}
	return mv, nil
}

func findInitialAndFinal2D(cells []struct {
	x, y int
	mark CellMark
}) ([]int, []int, error) {
	var init, final []int
	for _, c := range cells {
		switch c.mark {
		case Initial:
			if init != nil {
				return nil, nil, ErrDuplicateMarker
			}
			init = []int{c.x, c.y}
		case Final:
			if final != nil {
				return nil, nil, ErrDuplicateMarker
			}
			final = []int{c.x, c.y}
		}
	}
	if init == nil {
		return nil, nil, ErrMissingInitial
	}
	if final == nil {
		return nil, nil, ErrMissingFinal
	}
	return init, []int{final[0] - init[0], final[1] - init[1]}, nil
}

// ParseGrid3D parses a 3-D move template: layers[z][y] is a string whose
// character at column x describes the cell at offset (x, y, z) relative to
// the module's initial position.
func ParseGrid3D(layers [][]string) (*Move, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyTemplate
	}

	type cellPos struct {
		x, y, z int
		mark    CellMark
	}
	var cells []cellPos
	width, height := -1, len(layers[0])
	for z, rows := range layers {
		if len(rows) != height {
			return nil, ErrNonRectangularTemplate
		}
		for y, row := range rows {
			if width == -1 {
				width = len(row)
			} else if len(row) != width {
				return nil, ErrNonRectangularTemplate
			}
			for x, ch := range row {
				m := CellMark(ch)
				if m == NoCheck {
					continue
				}
				cells = append(cells, cellPos{x, y, z, m})
			}
		}
	}

	var init, final *[3]int
	for _, c := range cells {
		switch c.mark {
		case Initial:
			if init != nil {
				return nil, ErrDuplicateMarker
			}
			init = &[3]int{c.x, c.y, c.z}
		case Final:
			if final != nil {
				return nil, ErrDuplicateMarker
			}
			final = &[3]int{c.x, c.y, c.z}
		}
	}
	if init == nil {
		return nil, ErrMissingInitial
	}
	if final == nil {
		return nil, ErrMissingFinal
	}

	mv := &Move{
		InitOffset:  []int{0, 0, 0},
		FinalOffset: []int{final[0] - init[0], final[1] - init[1], final[2] - init[2]},
	}
	for _, c := range cells {
		if c.mark == Initial {
			continue
		}
		// Final also yields a must-be-empty offset check (see the matching
		// comment in ParseGrid2D).
		off := []int{c.x - init[0], c.y - init[1], c.z - init[2]}
		mv.Offsets = append(mv.Offsets, OffsetCheck{Offset: off, MustBeOccupied: c.mark == MustAnchor})
	}
	return mv, nil
}

// clone returns a deep, independent copy of mv.
func (mv *Move) clone() *Move {
	out := &Move{
		Name:        mv.Name,
		InitOffset:  append([]int(nil), mv.InitOffset...),
		FinalOffset: append([]int(nil), mv.FinalOffset...),
	}
	for _, o := range mv.Offsets {
		out.Offsets = append(out.Offsets, OffsetCheck{Offset: append([]int(nil), o.Offset...), MustBeOccupied: o.MustBeOccupied})
	}
	for _, pc := range mv.PropertyChecks {
		out.PropertyChecks = append(out.PropertyChecks, PropertyCheck{
			ModuleOffset: append([]int(nil), pc.ModuleOffset...),
			PropertyName: pc.PropertyName,
			WantInt:      pc.WantInt,
		})
	}
	for _, a := range mv.Anim {
		out.Anim = append(out.Anim, AnimSegment{Tag: a.Tag, Offset: append([]int(nil), a.Offset...)})
	}
	return out
}

// key returns a canonical string for structural-equality dedup during
// symmetry expansion (spec.md §4.3: "Deduplicate by structural equality
// (offsets-with-anchor-flag list equality and final-offset equality)").
func (mv *Move) key() string {
	type sortable struct {
		off    []int
		anchor bool
	}
	entries := make([]sortable, len(mv.Offsets))
	for i, o := range mv.Offsets {
		entries[i] = sortable{off: o.Offset, anchor: o.MustBeOccupied}
	}
	// Sort lexicographically so two structurally-equal offset sets in
	// different orders produce the same key.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && lessOffset(entries[j], entries[j-1]); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	s := fmt.Sprintf("final=%v|", mv.FinalOffset)
	for _, e := range entries {
		s += fmt.Sprintf("%v:%v;", e.off, e.anchor)
	}
	return s
}

func lessOffset(a, b struct {
	off    []int
	anchor bool
}) bool {
	for i := 0; i < len(a.off) && i < len(b.off); i++ {
		if a.off[i] != b.off[i] {
			return a.off[i] < b.off[i]
		}
	}
	if len(a.off) != len(b.off) {
		return len(a.off) < len(b.off)
	}
	return !a.anchor && b.anchor
}
