package move

import "errors"

// Sentinel errors for move parsing, checking and application.
var (
	// ErrEmptyTemplate is returned when a move grid has no rows.
	ErrEmptyTemplate = errors.New("move: template grid must have at least one row")
	// ErrNonRectangularTemplate is returned when template rows differ in length.
	ErrNonRectangularTemplate = errors.New("move: template rows must share one length")
	// ErrMissingInitial is returned when a template has no '?' cell.
	ErrMissingInitial = errors.New("move: template is missing its initial ('?') position")
	// ErrMissingFinal is returned when a template has no '!' cell.
	ErrMissingFinal = errors.New("move: template is missing its final ('!') position")
	// ErrDuplicateMarker is returned when '?' or '!' appears more than once.
	ErrDuplicateMarker = errors.New("move: template has more than one initial or final marker")
	// ErrIllegalMove is returned by Apply when Check fails for the given move.
	ErrIllegalMove = errors.New("move: illegal for this module at its current position")
)
