package terrain

import "github.com/katalvlaran/islandflood/heightfield"

// Policy decides whether the cell at (x, y) with generated height h becomes
// ocean.
type Policy func(x, y int, h float64) bool

// Radial makes every cell at Manhattan distance ≥ oceanDistance from
// (centerX, centerY) ocean. Mountain and random islands use it.
func Radial(centerX, centerY, oceanDistance int) Policy {
	return func(x, y int, _ float64) bool {
		return heightfield.ManhattanDistance(x, y, centerX, centerY) >= oceanDistance
	}
}

// Threshold makes every cell with height ≤ level ocean. Fractal islands use
// Threshold(0).
func Threshold(level float64) Policy {
	return func(_, _ int, h float64) bool {
		return h <= level
	}
}
