// Package heuristic implements the per-goal precomputed lower-bound caches
// of spec.md §4.7: Chebyshev, MoveOffset, and MoveOffsetProperty, each a
// reverse-BFS fill (or, for Chebyshev, the closed-form equivalent) over the
// move catalog's adjacency, grounded on
// original_source/pathfinder/search/HeuristicCache.{h,cpp} and on the
// teacher's container/heap-based dijkstra/dijkstra.go for the general shape
// of a frontier-driven graph fill.
package heuristic

import "math"

// Unreachable marks a cache cell that no reverse-BFS fill ever touched --
// the per-coordinate lower bound is undefined there.
const Unreachable = math.MaxInt32

// Cache is the common per-coordinate lower bound every cache kind of
// spec.md §4.7 exposes: the minimum number of moves (after any
// normalization the kind applies) from coords to the nearest goal.
type Cache interface {
	Value(coords []int) (dist int, ok bool)
}
