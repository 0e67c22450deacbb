package search

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
)

// BidirectionalAStar runs spec.md §4.6's bidirectional A*: a single priority
// queue holds frontier nodes from both origins, hForward scores start-side
// nodes against goal and hBackward scores goal-side nodes against start
// ("h is computed to the opposite endpoint"). A meeting -- a child hash
// already recorded by the other origin -- splices the two half-paths,
// reversing the goal-side half. Reopening (a strictly lower g for an
// already-seen hash from the SAME origin) is tracked per origin, since the
// two origins are expected to rediscover each other's territory.
func BidirectionalAStar(ctx context.Context, lat *lattice.Lattice, expand Expander, start, goal *module.DataSet, hForward, hBackward Heuristic, ignoreProperties, parallelDivisor, validate bool) ([]Step, error) {
	if validate && (!hForward.Admissible || !hBackward.Admissible) {
		return nil, ErrInadmissibleHeuristic
	}

	startHash := start.Hash(ignoreProperties)
	goalHash := goal.Hash(ignoreProperties)

	tree := NewTree()
	rootStart := tree.AddRoot(start, originStart)
	rootGoal := tree.AddRoot(goal, originGoal)

	if startHash == goalHash && start.Equal(goal) {
		return nil, nil
	}

	gStart := map[uint64]int{startHash: 0}
	gGoal := map[uint64]int{goalHash: 0}
	idxStart := map[uint64]ConfigID{startHash: rootStart}
	idxGoal := map[uint64]ConfigID{goalHash: rootGoal}

	pq := make(openPQ, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, &openItem{id: rootStart, hash: startHash, g: 0, f: hForward.Eval(start)})
	heap.Push(&pq, &openItem{id: rootGoal, hash: goalHash, g: 0, f: hBackward.Eval(goal)})

	var runningMax int
	firstPop := true

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		top := heap.Pop(&pq).(*openItem)
		myOrigin := tree.Origin(top.id)

		var gMap, otherMap map[uint64]int
		var idxMap, otherIdx map[uint64]ConfigID
		var h Heuristic
		if myOrigin == originStart {
			gMap, otherMap = gStart, gGoal
			idxMap, otherIdx = idxStart, idxGoal
			h = hForward
		} else {
			gMap, otherMap = gGoal, gStart
			idxMap, otherIdx = idxGoal, idxStart
			h = hBackward
		}

		if top.g > gMap[top.hash] {
			continue // stale entry
		}

		state := tree.State(top.id)
		if validate {
			gh := top.g + h.Eval(state)
			if !firstPop && gh < runningMax {
				return nil, ErrHeuristicInconsistent
			}
			if firstPop || gh > runningMax {
				runningMax = gh
			}
			firstPop = false
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

			if _, met := otherMap[childHash]; met {
				child := tree.AddChild(top.id, r.State, r.Moves)
				return spliceBidirectional(tree, child, otherIdx[childHash]), nil
			}

			if prevG, ok := gMap[childHash]; ok && prevG <= childG {
				continue
			}
			gMap[childHash] = childG
			child := tree.AddChild(top.id, r.State, r.Moves)
			idxMap[childHash] = child

			childH := h.Eval(r.State)
			if parallelDivisor {
				childH /= divisor
			}
			heap.Push(&pq, &openItem{id: child, hash: childHash, g: childG, f: childG + childH})
		}
	}

	return nil, ErrExhausted
}
