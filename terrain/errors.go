// SPDX-License-Identifier: MIT
// Package: islandflood/terrain
//
// errors.go - sentinel errors for the terrain package.
//
// Error policy:
//   • Branch with errors.Is; messages carry context through %w.
//   • Generation and flooding never fail on valid input. The only faults are
//     bad indices and bad configuration, reported immediately.

package terrain

import "errors"

// ErrIndexOutOfRange indicates a flat index or coordinate outside the grid.
var ErrIndexOutOfRange = errors.New("terrain: index out of range")

// ErrInvalidConfig indicates a degenerate configuration (size < 1,
// maxHeight <= 0, oceanDistance <= 0 for radial islands, ...).
var ErrInvalidConfig = errors.New("terrain: invalid config")

// ErrUnknownGenerator indicates an unrecognised generator name.
var ErrUnknownGenerator = errors.New("terrain: unknown generator")

// ErrEmptyGrid indicates Build received no rows or no columns.
var ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")

// ErrNonRectangular indicates Build received rows of differing lengths.
var ErrNonRectangular = errors.New("terrain: all rows must have the same length")

// ErrNilPolicy indicates Build was called without an ocean policy.
var ErrNilPolicy = errors.New("terrain: nil ocean policy")
