package heuristic

import (
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/tensor"
)

// MoveOffset is the "MoveOffset" cache kind of spec.md §4.7: a reverse
// breadth-first fill over the move catalog's final offsets, giving a
// per-coordinate lower bound on the number of moves needed to reach the
// nearest goal position.
type MoveOffset struct {
	dist *tensor.Tensor[int]
}

// queueItem pairs a coordinate with its BFS depth, following the teacher's
// queueItem{id, depth} convention (bfs/bfs.go, graph/bfs.go).
type queueItem struct {
	coords []int
	depth  int
}

// BuildMoveOffset fills a MoveOffset cache: goalCoords seed the BFS frontier
// at depth 0, lat's non-static modules are temporarily cleared so the fill
// sees only static obstacles (spec.md §4.7, "Construction"), and a
// predecessor coordinate p is a legal reverse edge into frontier cell c via
// move mv iff mv.FinalOffset == c-p and move.FreeSpaceCheck(lat.Cells(), p,
// mv) passes.
func BuildMoveOffset(lat *lattice.Lattice, cat *move.Catalog, goalCoords [][]int, opts Options) *MoveOffset {
	dist := tensor.New[int](lat.Order(), lat.AxisSize(), Unreachable, nil)

	var staticDist *tensor.Tensor[int]
	limit := lat.NonStaticCount()
	if opts.DistanceLimitation {
		staticDist = buildStaticDistance(lat, cat, limit)
	}

	// Help-limitation (spec.md §4.7): approximate the per-goal help budget
	// as "every other non-static module could in principle help", since
	// computing the exact per-goal reachability count would require a
	// separate BFS per goal position; the borrow tensor stays at zero
	// throughout the fill (no cross-call borrow bookkeeping), so the
	// refinement only widens FreeSpaceCheck to FreeSpaceCheckWithHelp's
	// "anchor slot may be empty" allowance, not a precisely shared budget.
	var helpTensor *tensor.Tensor[int]
	helpBudget := 0
	if opts.HelpLimitation {
		helpTensor = tensor.New[int](lat.Order(), lat.AxisSize(), 0, nil)
		helpBudget = lat.NonStaticCount() - 1
		if helpBudget < 0 {
			helpBudget = 0
		}
	}

	lat.WithNonStaticCleared(func() {
		var queue []queueItem
		for _, g := range goalCoords {
			if !dist.InBounds(g) {
				continue
			}
			if dist.Get(g) != 0 {
				dist.Set(g, 0)
			}
			queue = append(queue, queueItem{coords: g, depth: 0})
		}

		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			if dist.Get(cur.coords) != cur.depth {
				continue // stale entry, a shorter path already settled here
			}
			for _, mv := range cat.Moves() {
				pred := subOffset(cur.coords, mv.FinalOffset)
				if !dist.InBounds(pred) {
					continue
				}
				if opts.DistanceLimitation && staticDist.InBounds(pred) && staticDist.Get(pred) > limit {
					continue
				}
				legal := false
				if opts.HelpLimitation {
					legal = move.FreeSpaceCheckWithHelp(lat.Cells(), pred, mv, helpTensor, helpBudget)
				} else {
					legal = move.FreeSpaceCheck(lat.Cells(), pred, mv)
				}
				if !legal {
					continue
				}
				nd := cur.depth + 1
				if nd < dist.Get(pred) {
					dist.Set(pred, nd)
					queue = append(queue, queueItem{coords: pred, depth: nd})
				}
			}
		}
	})

	if opts.CacheOptimization {
		markUnreachableOutOfBounds(lat, dist)
	}

	return &MoveOffset{dist: dist}
}

// Value returns the BFS-filled lower bound at coords.
func (c *MoveOffset) Value(coords []int) (int, bool) {
	if !c.dist.InBounds(coords) {
		return 0, false
	}
	v := c.dist.Get(coords)
	if v == Unreachable {
		return 0, false
	}
	return v, true
}

// buildStaticDistance is the "static-distance" cache of spec.md §4.7's
// distance-limitation refinement: forward reverse-BFS from every static
// module, capped at S = non-static module count.
func buildStaticDistance(lat *lattice.Lattice, cat *move.Catalog, limit int) *tensor.Tensor[int] {
	dist := tensor.New[int](lat.Order(), lat.AxisSize(), Unreachable, nil)

	var queue []queueItem
	for _, s := range lat.StaticCoords() {
		if !dist.InBounds(s) {
			continue
		}
		if dist.Get(s) != 0 {
			dist.Set(s, 0)
		}
		queue = append(queue, queueItem{coords: s, depth: 0})
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.depth >= limit {
			continue
		}
		if dist.Get(cur.coords) != cur.depth {
			continue
		}
		for _, mv := range cat.Moves() {
			next := addOffset(cur.coords, mv.FinalOffset)
			if !dist.InBounds(next) {
				continue
			}
			nd := cur.depth + 1
			if nd < dist.Get(next) {
				dist.Set(next, nd)
				queue = append(queue, queueItem{coords: next, depth: nd})
			}
		}
	}
	return dist
}

// markUnreachableOutOfBounds is the "cache optimization" refinement of
// spec.md §4.7: any cell the fill never reached is permanently marked
// OutOfBounds on the lattice so future move checks skip it. Cells currently
// occupied by a module are left untouched (AddBoundary refuses them).
func markUnreachableOutOfBounds(lat *lattice.Lattice, dist *tensor.Tensor[int]) {
	for i := 0; i < dist.Len(); i++ {
		if dist.GetIndex(i) == Unreachable {
			_ = lat.AddBoundary(dist.CoordsFromIndex(i))
		}
	}
}

func addOffset(coords, offset []int) []int {
	out := make([]int, len(coords))
	for i := range coords {
		out[i] = coords[i] + offset[i]
	}
	return out
}

func subOffset(coords, offset []int) []int {
	out := make([]int, len(coords))
	for i := range coords {
		out[i] = coords[i] - offset[i]
	}
	return out
}
