// SPDX-License-Identifier: MIT
// Package: islandflood/heightfield
//
// errors.go - sentinel errors for the heightfield package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Generators attach context with %w; they never panic at runtime.
//   • Option constructors (WithX) panic on meaningless values instead.

package heightfield

import "errors"

// ErrBadSize indicates the requested size is smaller than the generator
// supports (Size < 1 for every generator, Size < 2 for Fractal).
var ErrBadSize = errors.New("heightfield: invalid size")

// ErrBadHeight indicates a maxHeight outside [1, MaxHeightLimit], or a
// Fractal floor at or above maxHeight.
var ErrBadHeight = errors.New("heightfield: maxHeight must be positive")

// ErrNilGenerator indicates Generate was called with a nil Generator.
var ErrNilGenerator = errors.New("heightfield: nil generator")
