// SPDX-License-Identifier: MIT
// Package: islandflood/heightfield
//
// impl_fractal.go - recursive midpoint displacement.
//
// Canonical model:
//   • Start from an all-zero field; seed the centre with maxHeight and the
//     four edge midpoints (c,0), (c,Size), (0,c), (Size,c) with 1.
//   • Subdivide the four quadrants around the centre. For a quadrant with
//     corners TL, TR, BR, BL compute the top, right, bottom, left and centre
//     midpoints as the mean of their bounding corners plus nudge(area).
//   • Clamp each midpoint to [minHeight, maxHeight] and write it only if the
//     cell still holds exactly 0; neighbouring quadrants share edges.
//   • Recurse while both quadrant sides exceed 1.
//
// Determinism:
//   • Five nudges are drawn per visited quadrant in the fixed order
//     top, right, bottom, left, centre, whether or not they are written.
//
// Complexity:
//   • O(Side²) quadrants visited, recursion depth O(log Side).

package heightfield

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	methodFractal  = "Fractal"
	minFractalSize = 2
	edgeSeedHeight = 1.0
)

// Fractal returns a Generator producing random terrain by midpoint
// displacement. Size must be at least 2 so the centre and edge seeds are
// distinct cells.
func Fractal(maxHeight int) Generator {
	return func(f *Field, cfg genConfig) error {
		if err := checkMaxHeight(methodFractal, maxHeight); err != nil {
			return err
		}
		if cfg.minHeight >= float64(maxHeight) {
			return fmt.Errorf("%s: minHeight=%v not below maxHeight=%d: %w",
				methodFractal, cfg.minHeight, maxHeight, ErrBadHeight)
		}
		if f.Size < minFractalSize {
			return fmt.Errorf("%s: size=%d (must be ≥ %d): %w",
				methodFractal, f.Size, minFractalSize, ErrBadSize)
		}
		d := displacer{
			field:   f,
			rng:     cfg.rng,
			descent: cfg.descent,
			min:     cfg.minHeight,
			max:     float64(maxHeight),
		}
		d.seed()
		c, s := Center(f.Size), f.Size
		d.subdivide(0, 0, c, c)
		d.subdivide(c, 0, s, c)
		d.subdivide(c, c, s, s)
		d.subdivide(0, c, c, s)
		return nil
	}
}

// displacer holds the mutable state of one Fractal run.
type displacer struct {
	field    *Field
	rng      *rand.Rand
	descent  float64
	min, max float64
}

// seed writes the centre peak and the four edge midpoints.
func (d *displacer) seed() {
	c, s := Center(d.field.Size), d.field.Size
	d.field.Set(c, c, d.max)
	d.field.Set(c, 0, edgeSeedHeight)
	d.field.Set(c, s, edgeSeedHeight)
	d.field.Set(0, c, edgeSeedHeight)
	d.field.Set(s, c, edgeSeedHeight)
}

// nudge returns a random displacement proportional to area, pointing down
// with probability descent, plus a unit jitter in [0,1).
func (d *displacer) nudge(area float64) float64 {
	sign := 1.0
	if d.rng.Float64() < d.descent {
		sign = -1.0
	}
	return sign*d.rng.Float64()*area + d.rng.Float64()
}

func (d *displacer) clamp(h float64) float64 {
	return math.Max(d.min, math.Min(d.max, h))
}

// place writes h at (x, y) unless an earlier pass already set the cell.
func (d *displacer) place(x, y int, h float64) {
	if d.field.At(x, y) == 0 {
		d.field.Set(x, y, d.clamp(h))
	}
}

// subdivide displaces the midpoints of the quadrant with top-left (x0, y0)
// and bottom-right (x1, y1), then recurses into its four children.
func (d *displacer) subdivide(x0, y0, x1, y1 int) {
	if x1-x0 <= 1 || y1-y0 <= 1 {
		return
	}
	f := d.field
	tl, tr := f.At(x0, y0), f.At(x1, y0)
	bl, br := f.At(x0, y1), f.At(x1, y1)
	mx, my := (x0+x1)/2, (y0+y1)/2
	area := float64((x1 - x0) * (y1 - y0))

	top := d.nudge(area) + (tl+tr)/2
	right := d.nudge(area) + (tr+br)/2
	bottom := d.nudge(area) + (bl+br)/2
	left := d.nudge(area) + (tl+bl)/2
	mid := d.nudge(area) + (tl+tr+br+bl)/4

	d.place(mx, y0, top)
	d.place(x1, my, right)
	d.place(mx, y1, bottom)
	d.place(x0, my, left)
	d.place(mx, my, mid)

	d.subdivide(x0, y0, mx, my)
	d.subdivide(mx, y0, x1, my)
	d.subdivide(mx, my, x1, y1)
	d.subdivide(x0, my, mx, y1)
}
