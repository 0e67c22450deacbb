// Package scenario implements the JSON scenario/move file formats and the
// .scen text exporter of spec.md §6.1-§6.3, generalized here to concrete Go
// types backed by encoding/json (SPEC_FULL.md §6.1/6.2).
package scenario

import "errors"

// Sentinel errors for scenario and move JSON decoding (spec.md §7, "Input
// errors").
var (
	// ErrMalformedJSON is returned when a scenario or move file fails to
	// decode as valid JSON against the expected shape.
	ErrMalformedJSON = errors.New("scenario: malformed JSON")
	// ErrUnknownAdjacencyMode is returned for an "adjacencyMode" value other
	// than "Cube Face" or "Cube Edge".
	ErrUnknownAdjacencyMode = errors.New("scenario: unknown adjacency mode")
	// ErrDuplicateModulePosition is returned when two modules share a
	// coordinate.
	ErrDuplicateModulePosition = errors.New("scenario: duplicate module position")
	// ErrInvalidColor is returned when a colorProperty value cannot be
	// decoded into an RGB triple.
	ErrInvalidColor = errors.New("scenario: invalid colorProperty value")
	// ErrInvalidOrientation is returned when an orientationProperty value
	// cannot be decoded into a per-axis degrees list.
	ErrInvalidOrientation = errors.New("scenario: invalid orientationProperty value")
	// ErrInvalidMoveTemplate is returned when a move's "def" grid cannot be
	// parsed by move.ParseGrid2D/ParseGrid3D.
	ErrInvalidMoveTemplate = errors.New("scenario: invalid move template")
)
