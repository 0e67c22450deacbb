package search

import (
	"context"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
)

// BFS runs breadth-first search from lat's current configuration to goal,
// returning the move sequence as a root-to-goal []Step (spec.md §4.6: "push
// the start; loop popping the current front; if current equals goal,
// reconstruct path from parent chain; else expand... insert those not in
// visited"). Returns ErrExhausted if every reachable configuration is
// exhausted without finding goal. ctx is checked once per dequeue, matching
// bfs.BFS's cancellation granularity in the teacher repo.
func BFS(ctx context.Context, lat *lattice.Lattice, expand Expander, goal *module.DataSet, ignoreProperties bool) ([]Step, error) {
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

	queue := []ConfigID{root}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		id := queue[0]
		queue = queue[1:]

		if err := lat.Restore(tree.State(id)); err != nil {
			return nil, err
		}
		results, err := expand(lat)
		if err != nil {
			return nil, err
		}

		for _, r := range results {
			h := r.State.Hash(ignoreProperties)
			if visited.Has(h) {
				continue
			}
			child := tree.AddChild(id, r.State, r.Moves)
			visited.Insert(h, HashedState{ID: child, Depth: tree.Depth(child), Origin: originStart})

			if h == goalHash && r.State.Equal(goal) {
				return tree.PathFromRoot(child), nil
			}
			queue = append(queue, child)
		}
	}

	return nil, ErrExhausted
}
