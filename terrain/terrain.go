package terrain

import (
	"fmt"
	"iter"
)

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.width }

// Height returns the number of rows.
func (t *Terrain) Height() int { return t.height }

// Size returns the number of cells, i.e. the length of the flat view.
func (t *Terrain) Size() int { return len(t.cells) }

// MaxHeight returns the configured peak height for generated islands, or
// the highest land cell for terrains made with Build.
func (t *Terrain) MaxHeight() float64 { return t.maxHeight }

// index maps (x, y) to y*Width + x without bounds checks.
func (t *Terrain) index(x, y int) int { return y*t.width + x }

// InBounds reports whether (x, y) lies on the grid.
func (t *Terrain) InBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// Index returns the flat index of (x, y) or ErrIndexOutOfRange.
func (t *Terrain) Index(x, y int) (int, error) {
	if !t.InBounds(x, y) {
		return 0, fmt.Errorf("Index(%d,%d) on %dx%d grid: %w", x, y, t.width, t.height, ErrIndexOutOfRange)
	}
	return t.index(x, y), nil
}

// Coordinate converts a flat index back to (x, y). The index is not checked.
func (t *Terrain) Coordinate(i int) (x, y int) {
	return i % t.width, i / t.width
}

// Get returns a copy of the cell at flat index i or ErrIndexOutOfRange.
func (t *Terrain) Get(i int) (Cell, error) {
	if i < 0 || i >= len(t.cells) {
		return Cell{}, fmt.Errorf("Get(%d) on %d cells: %w", i, len(t.cells), ErrIndexOutOfRange)
	}
	return t.cells[i], nil
}

// At returns a copy of the cell at (x, y) or ErrIndexOutOfRange.
func (t *Terrain) At(x, y int) (Cell, error) {
	i, err := t.Index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return t.cells[i], nil
}

// All yields every cell in row-major order with its flat index.
func (t *Terrain) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i, c := range t.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// FloodedCount returns the number of flooded cells, ocean included.
func (t *Terrain) FloodedCount() int {
	n := 0
	for _, c := range t.cells {
		if c.Flooded {
			n++
		}
	}
	return n
}

// OceanCount returns the number of ocean cells.
func (t *Terrain) OceanCount() int {
	n := 0
	for _, c := range t.cells {
		if c.IsOcean() {
			n++
		}
	}
	return n
}
