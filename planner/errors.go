package planner

import "errors"

// Sentinel errors for planner-level input validation (spec.md §7, "Input
// errors" / "Configuration errors").
var (
	// ErrUnknownSearchMethod is returned for a SearchMethod flag value
	// other than "BFS", "BDBFS", "A*", "BDA*".
	ErrUnknownSearchMethod = errors.New("planner: unknown search method")
	// ErrUnknownHeuristic is returned for a Heuristic flag value other
	// than "MRSH-1", "SymDiff", "Manhattan", "Chebyshev", "Nearest Chebyshev"
	// (an empty value selects "MRSH-1"; "Symmetric Difference" is accepted
	// as an alias of "SymDiff").
	ErrUnknownHeuristic = errors.New("planner: unknown heuristic")
	// ErrUnknownEdgeCheck is returned for an EdgeCheck flag value other
	// than "cube", "rd".
	ErrUnknownEdgeCheck = errors.New("planner: unknown edge-check mode")
	// ErrMissingInitialFile is returned when InitialFile is empty.
	ErrMissingInitialFile = errors.New("planner: initial-file is required")
	// ErrNoMoves is returned when neither MovesFolder nor any move file
	// yields a single move template.
	ErrNoMoves = errors.New("planner: no move templates loaded")
)
