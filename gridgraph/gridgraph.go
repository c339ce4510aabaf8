// Package gridgraph provides utilities to treat a terrain snapshot as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of dry islands and enclosed basins
//   - Cheapest wading path between two islands
//   - Shortest dry escape route between two cells
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/islandflood/terrain"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular height
// grid and an optional flood mask of the same shape (nil means all dry).
// Inputs are copied, so later changes to them are not observed.
// Returns ErrEmptyGrid if heights has no rows or no columns,
// ErrNonRectangular if any row length differs or the mask shape differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(heights [][]float64, flooded [][]bool, opts GridOptions) (*GridGraph, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(heights), len(heights[0])
	for _, row := range heights {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if flooded != nil {
		if len(flooded) != h {
			return nil, fmt.Errorf("%w: flood mask has %d rows, want %d", ErrNonRectangular, len(flooded), h)
		}
		for _, row := range flooded {
			if len(row) != w {
				return nil, fmt.Errorf("%w: flood mask row length %d, want %d", ErrNonRectangular, len(row), w)
			}
		}
	}

	gg := newGrid(w, h, opts)
	for y := 0; y < h; y++ {
		copy(gg.heights[y*w:(y+1)*w], heights[y])
		if flooded != nil {
			copy(gg.flooded[y*w:(y+1)*w], flooded[y])
		}
	}

	return gg, nil
}

// FromTerrain snapshots the current heights and flood state of t.
// Complexity: O(W×H).
func FromTerrain(t *terrain.Terrain, opts GridOptions) *GridGraph {
	gg := newGrid(t.Width(), t.Height(), opts)
	for i, c := range t.All() {
		gg.heights[i] = c.Height
		gg.flooded[i] = c.Flooded
	}

	return gg
}

// newGrid allocates the flat arrays and precomputes neighbor offsets.
func newGrid(w, h int, opts GridOptions) *GridGraph {
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		heights:         make([]float64, w*h),
		flooded:         make([]bool, w*h),
		neighborOffsets: offsets,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Len returns the number of cells, Width*Height.
func (gg *GridGraph) Len() int { return len(gg.heights) }

// NeighborIDs lists the in-bounds neighbors of cell id under gg.Conn,
// wet or dry, in offset order (N first, clockwise).
func (gg *GridGraph) NeighborIDs(id int) []int {
	x, y := gg.Coordinate(id)
	out := make([]int, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			out = append(out, gg.index(nx, ny))
		}
	}

	return out
}

// Dry reports whether cell id is neither flooded nor ocean.
// Out-of-range ids are not dry.
func (gg *GridGraph) Dry(id int) bool {
	return id >= 0 && id < len(gg.flooded) && !gg.flooded[id]
}

// HeightAt returns the height of cell id. It panics if id is out of range.
func (gg *GridGraph) HeightAt(id int) float64 { return gg.heights[id] }

// Index maps (x,y) to its row-major index, or ErrCellIndex when out of bounds.
func (gg *GridGraph) Index(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrCellIndex, x, y, gg.Width, gg.Height)
	}
	return gg.index(x, y), nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// checkCell validates a flat cell index.
func (gg *GridGraph) checkCell(id int) error {
	if id < 0 || id >= gg.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrCellIndex, id, gg.Len())
	}
	return nil
}
