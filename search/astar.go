package search

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
)

// openItem is one entry of AStar's priority queue: a configuration, its
// accumulated cost g, the hash it was scored under, and the combined score
// f = g + h. Grounded on dijkstra/dijkstra.go's nodeItem/nodePQ
// lazy-decrease-key pattern.
type openItem struct {
	id   ConfigID
	hash uint64
	g    int
	f    int
}

// openPQ orders by f ascending, ties broken by g descending -- "higher g
// first, i.e. deeper states pop before shallower ones at equal f" (spec.md
// §4.6).
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].g > pq[j].g
}
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// AStar runs A* from lat's current configuration to goal using h as the
// scoring heuristic (spec.md §4.6). When parallelDivisor is true, each
// child's heuristic value is divided by the free-module count observed at
// its parent's configuration before expansion -- "the best case relocates
// all free modules in one step" (spec.md §4.6, "Cost with parallel moves");
// using the parent's count rather than recomputing articulation points per
// child is a deliberate simplification, since within one expansion step the
// free-module set rarely changes except under parallel moves themselves.
// When validate is true, the running max of g+h over popped nodes must
// never decrease (spec.md §4.6, heuristic-consistency check); validate
// requires h.Admissible, else ErrInadmissibleHeuristic (SPEC_FULL.md §9).
func AStar(ctx context.Context, lat *lattice.Lattice, expand Expander, goal *module.DataSet, h Heuristic, ignoreProperties, parallelDivisor, validate bool) ([]Step, error) {
	if validate && !h.Admissible {
		return nil, ErrInadmissibleHeuristic
	}

	start := lat.Snapshot()
	goalHash := goal.Hash(ignoreProperties)
	startHash := start.Hash(ignoreProperties)

	tree := NewTree()
	visited := NewVisitedSet()
	root := tree.AddRoot(start, originStart)
	visited.Insert(startHash, HashedState{ID: root, Depth: 0, Origin: originStart})

	if startHash == goalHash && start.Equal(goal) {
		return nil, nil
	}

	gScore := map[uint64]int{startHash: 0}
	runningMax := h.Eval(start)

	pq := make(openPQ, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, &openItem{id: root, hash: startHash, g: 0, f: runningMax})

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		top := heap.Pop(&pq).(*openItem)
		if top.g > gScore[top.hash] {
			continue // stale entry: a strictly better g already won this hash
		}

		state := tree.State(top.id)
		if validate {
			gh := top.g + h.Eval(state)
			if gh < runningMax {
				return nil, ErrHeuristicInconsistent
			}
			runningMax = gh
		}

		if err := lat.Restore(state); err != nil {
			return nil, err
		}

		divisor := 1
		if parallelDivisor {
			if n := len(lat.MovableModules()); n > 0 {
				divisor = n
			}
		}

		results, err := expand(lat)
		if err != nil {
			return nil, err
		}

		for _, r := range results {
			childHash := r.State.Hash(ignoreProperties)
			childG := top.g + 1

			if prevG, ok := gScore[childHash]; ok && prevG <= childG {
				continue
			}
			gScore[childHash] = childG

			child := tree.AddChild(top.id, r.State, r.Moves)
			visited.Reopen(childHash, HashedState{ID: child, Depth: childG, Origin: originStart})

			if childHash == goalHash && r.State.Equal(goal) {
				return tree.PathFromRoot(child), nil
			}

			childH := h.Eval(r.State)
			if parallelDivisor {
				childH /= divisor
			}
			heap.Push(&pq, &openItem{id: child, hash: childHash, g: childG, f: childG + childH})
		}
	}

	return nil, ErrExhausted
}
