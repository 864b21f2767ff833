package puzzles

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("puzzles: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("puzzles: all grid rows must have the same length")
	// ErrStartOutOfRange indicates the start cell lies outside the grid.
	ErrStartOutOfRange = errors.New("puzzles: start cell is outside the grid")
)
