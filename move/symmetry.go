package move

// rotate returns a clone of mv with axes a and b swapped in every offset
// vector it carries (spec.md §4.3: "the rotation that swaps axes i and j").
func (mv *Move) rotate(a, b int) *Move {
	out := mv.clone()
	swap := func(v []int) { v[a], v[b] = v[b], v[a] }
	swap(out.InitOffset)
	swap(out.FinalOffset)
	for i := range out.Offsets {
		swap(out.Offsets[i].Offset)
	}
	for i := range out.PropertyChecks {
		swap(out.PropertyChecks[i].ModuleOffset)
	}
	for i := range out.Anim {
		swap(out.Anim[i].Offset)
	}
	return out
}

// reflect returns a clone of mv with axis negated in every offset vector
// (spec.md §4.3: "the reflection that negates axis i").
func (mv *Move) reflect(axis int) *Move {
	out := mv.clone()
	neg := func(v []int) { v[axis] = -v[axis] }
	neg(out.InitOffset)
	neg(out.FinalOffset)
	for i := range out.Offsets {
		neg(out.Offsets[i].Offset)
	}
	for i := range out.PropertyChecks {
		neg(out.PropertyChecks[i].ModuleOffset)
	}
	for i := range out.Anim {
		neg(out.Anim[i].Offset)
	}
	return out
}

// Expand generates every image of base under the group of axis rotations
// and reflections, deduplicated by structural equality (spec.md §4.3). For
// each unordered axis pair (i,j), the rotation swapping them is applied
// cumulatively to the growing set; then, for each axis i, the reflection
// negating it is applied cumulatively. The result always includes base
// itself.
func Expand(base *Move, order int) []*Move {
	seen := map[string]*Move{base.key(): base}
	set := []*Move{base}

	appendIfNew := func(m *Move) {
		k := m.key()
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = m
		set = append(set, m)
	}

	for i := 0; i < order; i++ {
		for j := i + 1; j < order; j++ {
			for _, m := range append([]*Move(nil), set...) {
				appendIfNew(m.rotate(i, j))
			}
		}
	}

	for axis := 0; axis < order; axis++ {
		for _, m := range append([]*Move(nil), set...) {
			appendIfNew(m.reflect(axis))
		}
	}

	return set
}
