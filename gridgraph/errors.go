package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths, or a flood mask
	// whose shape differs from the height grid.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no path exists between the requested cells or components.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrCellIndex indicates a flat cell index outside [0, Width*Height).
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
)
