// SPDX-License-Identifier: MIT
// Package: islandflood/heightfield
//
// api.go - orchestrator and strategy type.
//
// Design contract:
//   • One orchestrator: Generate(size, gen, opts...).
//   • Strategies are closures built by Mountain, Uniform and Fractal
//     (impl_*.go) and receive the resolved config by value.
//   • Same seed, size and strategy ⇒ identical field.

package heightfield

import (
	"fmt"
	"math"
)

// Generator fills a freshly allocated field. Implementations validate their
// own parameters and return sentinel errors; they never panic.
type Generator func(f *Field, cfg genConfig) error

// Generate allocates a field with last index size and runs gen over it.
// Errors are wrapped as "Generate: %w".
//
// Complexity: dominated by gen, O(Side²) for the bundled strategies.
func Generate(size int, gen Generator, opts ...Option) (*Field, error) {
	if gen == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNilGenerator)
	}
	if size < 1 {
		return nil, fmt.Errorf("Generate: size=%d (must be ≥ 1): %w", size, ErrBadSize)
	}
	cfg := newGenConfig(opts...)
	f := NewField(size)
	if err := gen(f, cfg); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	return f, nil
}

// ManhattanDistance returns |x1−x2| + |y1−y2|.
func ManhattanDistance(x1, y1, x2, y2 int) int {
	dx, dy := x1-x2, y1-y2
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Center returns the centre coordinate used by every strategy for a field
// with last index size.
func Center(size int) int { return size / 2 }

// MaxHeightLimit is the largest maxHeight any strategy accepts.
const MaxHeightLimit = math.MaxInt32

func checkMaxHeight(method string, maxHeight int) error {
	if maxHeight <= 0 || maxHeight > MaxHeightLimit {
		return fmt.Errorf("%s: maxHeight=%d (must be in [1, %d]): %w", method, maxHeight, MaxHeightLimit, ErrBadHeight)
	}
	return nil
}
