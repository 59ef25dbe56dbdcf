package powder

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is created with a non-positive width or height.
	ErrInvalidDimensions = errors.New("powder: invalid grid dimensions")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("powder: coordinate out of bounds")
	// ErrInvalidColor is returned when a color component is outside its valid range.
	ErrInvalidColor = errors.New("powder: invalid color")
	// ErrCorruptCell signals a cell that does not hold a known material. It is a
	// broken invariant, not a recoverable condition.
	ErrCorruptCell = errors.New("powder: corrupt cell")
)
