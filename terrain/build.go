// SPDX-License-Identifier: MIT
// Package: islandflood/terrain
//
// build.go - cell building and neighbour wiring.
//
// Contract:
//   • Input rows are indexed [y][x], non-empty and rectangular.
//   • Ocean cells get Height 0 and Flooded=true; land keeps its height.
//   • wire runs once, after the whole slice exists.

package terrain

import (
	"fmt"
	"io"
	"log/slog"
)

// Build converts a rectangular height grid into a wired Terrain, asking
// policy which cells are ocean. The grid is copied.
//
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNilPolicy on bad input.
// Complexity: O(W·H) time and memory.
func Build(rows [][]float64, policy Policy) (*Terrain, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("Build: row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}

	t := &Terrain{
		width:  w,
		height: h,
		cells:  make([]Cell, 0, w*h),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for y, row := range rows {
		for x, height := range row {
			if policy(x, y, height) {
				t.cells = append(t.cells, Cell{X: x, Y: y, Kind: Ocean, Flooded: true})
				continue
			}
			t.cells = append(t.cells, Cell{Height: height, X: x, Y: y, Kind: Land})
			if height > t.maxHeight {
				t.maxHeight = height
			}
		}
	}
	t.wire()
	return t, nil
}

// wire sets each cell's four links, clamping at the grid border:
//
//	left   = (max(x-1, 0), y)
//	top    = (x, max(y-1, 0))
//	right  = (min(x+1, W-1), y)
//	bottom = (x, min(y+1, H-1))
func (t *Terrain) wire() {
	lastX, lastY := t.width-1, t.height-1
	for i := range t.cells {
		c := &t.cells[i]
		c.Left = t.index(max(c.X-1, 0), c.Y)
		c.Top = t.index(c.X, max(c.Y-1, 0))
		c.Right = t.index(min(c.X+1, lastX), c.Y)
		c.Bottom = t.index(c.X, min(c.Y+1, lastY))
	}
}
