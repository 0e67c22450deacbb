package lattice

// apRecursive computes the articulation-point set of the graph described by
// adj (an adjacency list indexed by module id) using the textbook recursive
// low-link DFS, grounded on
// original_source/pathfinder/lattice/Lattice.cpp's APUtil/BuildMovableModules.
func apRecursive(adj [][]int) map[int]bool {
	n := len(adj)
	visited := make([]bool, n)
	disc := make([]int, n)
	low := make([]int, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	ap := make(map[int]bool)
	timer := 0

	var visit func(u int)
	visit = func(u int) {
		children := 0
		visited[u] = true
		disc[u] = timer
		low[u] = timer
		timer++

		for _, v := range adj[u] {
			if !visited[v] {
				parent[v] = u
				children++
				visit(v)
				if low[v] < low[u] {
					low[u] = low[v]
				}
				if parent[u] == -1 && children > 1 {
					ap[u] = true
				}
				if parent[u] != -1 && low[v] >= disc[u] {
					ap[u] = true
				}
			} else if v != parent[u] {
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
			}
		}
	}

	for id := 0; id < n; id++ {
		if !visited[id] {
			visit(id)
		}
	}
	return ap
}

type apFrame struct {
	node int
	idx  int
}

// apIterative computes the same articulation-point set as apRecursive using
// an explicit stack, as spec.md §4.2 requires both a recursive and an
// explicit-stack implementation that "must produce identical AP sets".
//
// This deliberately does not port
// original_source/pathfinder/lattice/Lattice.cpp's BuildMovableModulesNonRec
// verbatim: that version's root-children counter disagrees with the
// recursive algorithm on disconnected inputs (spec.md §9 Open Question).
// Per SPEC_FULL.md §9, the fix is to only apply the low[child] >= disc[u]
// articulation rule when u is not the root of its own DFS tree, exactly
// mirroring the `parent[u] != -1` guard in apRecursive, rather than
// conflating it with the root's own children count.
func apIterative(adj [][]int) map[int]bool {
	n := len(adj)
	ap := make(map[int]bool)
	if n == 0 {
		return ap
	}

	visited := make([]bool, n)
	disc := make([]int, n)
	low := make([]int, n)
	parent := make([]int, n)
	skippedParentEdge := make([]bool, n)
	timer := 0

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		parent[start] = -1
		rootChildren := 0
		visited[start] = true
		disc[start] = timer
		low[start] = timer
		timer++

		stack := []apFrame{{node: start, idx: 0}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			u := top.node

			if top.idx < len(adj[u]) {
				v := adj[u][top.idx]
				top.idx++

				if v == parent[u] && !skippedParentEdge[u] {
					skippedParentEdge[u] = true
					continue
				}

				if !visited[v] {
					parent[v] = u
					if u == start {
						rootChildren++
					}
					visited[v] = true
					disc[v] = timer
					low[v] = timer
					timer++
					stack = append(stack, apFrame{node: v, idx: 0})
				} else if disc[v] < low[u] {
					low[u] = disc[v]
				}
			} else {
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					p := stack[len(stack)-1].node
					if low[u] < low[p] {
						low[p] = low[u]
					}
					if p != start && low[u] >= disc[p] {
						ap[p] = true
					}
				}
			}
		}

		if rootChildren > 1 {
			ap[start] = true
		}
	}

	return ap
}
