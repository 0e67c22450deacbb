package search

import (
	"context"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
)

// BidirectionalBFS runs spec.md §4.6's bidirectional breadth-first search: a
// single FIFO seeded with both start and goal, each carrying an origin tag.
// When an expansion reaches a state already visited from the other origin,
// the two half-paths are spliced (end half reversed) and returned.
func BidirectionalBFS(ctx context.Context, lat *lattice.Lattice, expand Expander, start, goal *module.DataSet, ignoreProperties bool) ([]Step, error) {
	startHash := start.Hash(ignoreProperties)
	goalHash := goal.Hash(ignoreProperties)

	tree := NewTree()
	visited := NewVisitedSet()
	rootStart := tree.AddRoot(start, originStart)
	rootGoal := tree.AddRoot(goal, originGoal)
	visited.Insert(startHash, HashedState{ID: rootStart, Depth: 0, Origin: originStart})
	visited.Insert(goalHash, HashedState{ID: rootGoal, Depth: 0, Origin: originGoal})

	if startHash == goalHash && start.Equal(goal) {
		return nil, nil
	}

	queue := []ConfigID{rootStart, rootGoal}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		id := queue[0]
		queue = queue[1:]
		myOrigin := tree.Origin(id)

		if err := lat.Restore(tree.State(id)); err != nil {
			return nil, err
		}
		results, err := expand(lat)
		if err != nil {
			return nil, err
		}

		for _, r := range results {
			h := r.State.Hash(ignoreProperties)
			if existing, seen := visited.Lookup(h); seen {
				if existing.Origin != myOrigin {
					child := tree.AddChild(id, r.State, r.Moves)
					return spliceBidirectional(tree, child, existing.ID), nil
				}
				continue
			}
			child := tree.AddChild(id, r.State, r.Moves)
			visited.Insert(h, HashedState{ID: child, Depth: tree.Depth(child), Origin: myOrigin})
			queue = append(queue, child)
		}
	}

	return nil, ErrExhausted
}

// spliceBidirectional concatenates the start-side root-to-meeting path with
// the goal-side root-to-meeting path reversed, per spec.md §4.6: "reconstruct
// the two half-paths and concatenate, reversing the END half." a and b are
// two ConfigIDs recording the same (or hash-equal) meeting state, one
// discovered from each origin; which is which is resolved by inspecting
// their recorded origin.
func spliceBidirectional(tree *Tree, a, b ConfigID) []Step {
	startSide, goalSide := a, b
	if tree.Origin(a) != originStart {
		startSide, goalSide = b, a
	}

	head := tree.PathFromRoot(startSide)
	tail := tree.PathFromRoot(goalSide)

	out := make([]Step, 0, len(head)+len(tail))
	out = append(out, head...)
	for i := len(tail) - 1; i >= 0; i-- {
		moves := append([]ModuleMove(nil), tail[i].Moves...)
		out = append(out, Step{Moves: moves, Reversed: true})
	}
	return out
}
