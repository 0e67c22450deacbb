package search

import "errors"

var (
	// ErrExhausted is returned when a search exhausts every reachable
	// configuration without finding the goal (spec.md §7, "Search
	// exhaustion").
	ErrExhausted = errors.New("search: exhausted reachable configurations without finding goal")

	// ErrHeuristicInconsistent is returned by AStar/BidirectionalAStar when
	// CONSISTENT_HEURISTIC_VALIDATOR is enabled and the running max of g+h
	// over popped nodes strictly decreases (spec.md §4.6).
	ErrHeuristicInconsistent = errors.New("search: heuristic inconsistency detected (g+h decreased)")

	// ErrInadmissibleHeuristic is returned when the caller asks to combine
	// the consistency validator with a heuristic flagged non-admissible
	// (SPEC_FULL.md §9, Manhattan).
	ErrInadmissibleHeuristic = errors.New("search: heuristic is flagged non-admissible, refusing consistency validation")

	// ErrNoStartOrGoal is returned when Run is called without a usable
	// start or goal snapshot.
	ErrNoStartOrGoal = errors.New("search: start and goal snapshots are both required")
)
