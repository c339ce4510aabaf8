// SPDX-License-Identifier: MIT
// Package: islandflood/terrain
//
// flood.go - water propagation.
//
// Algorithm:
//   1. Scan cells in row-major order; skip ocean and already flooded cells.
//   2. A cell with at least one flooded neighbour seeds a fill.
//   3. The fill pops indices from an explicit stack; a popped cell that is
//      dry with Height < water becomes flooded and pushes its four
//      neighbours.
//
// Invariants:
//   • Flooded never reverts, so repeated or lower levels are no-ops.
//   • Each cell changes state at most once per call: O(W·H) per call.

package terrain

// Flood raises the water to level and returns how many cells flooded in
// this call.
func (t *Terrain) Flood(level float64) int {
	var (
		total int
		stack = make([]int, 0, 64)
	)
	for i := range t.cells {
		c := &t.cells[i]
		if c.Flooded || c.IsOcean() {
			continue
		}
		if !t.touchesWater(c) {
			continue
		}
		var n int
		n, stack = t.fill(i, level, stack)
		total += n
	}
	t.log.Debug("flood", "level", level, "newly_flooded", total)
	return total
}

// touchesWater reports whether any of c's neighbours is flooded.
func (t *Terrain) touchesWater(c *Cell) bool {
	return t.cells[c.Left].Flooded ||
		t.cells[c.Top].Flooded ||
		t.cells[c.Right].Flooded ||
		t.cells[c.Bottom].Flooded
}

// fill floods from start through every connected dry cell below level. The
// stack buffer is reused across calls and returned for the next one.
func (t *Terrain) fill(start int, level float64, stack []int) (int, []int) {
	n := 0
	stack = append(stack[:0], start)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := &t.cells[i]
		if c.Flooded || !(c.Height < level) {
			continue
		}
		c.Flooded = true
		n++
		stack = append(stack, c.Left, c.Top, c.Right, c.Bottom)
	}
	return n, stack
}
