// Package heightfield generates square height maps for island terrains.
//
// What:
//
//   - Field is a (Size+1)×(Size+1) grid of float64 heights; Size is the last
//     valid index on either axis.
//   - Three strategies, each a Generator closure:
//     Mountain – maxHeight minus the Manhattan distance to the centre;
//     Uniform  – integer heights drawn uniformly from [0, maxHeight];
//     Fractal  – recursive midpoint displacement seeded at the centre
//     (maxHeight) and the four edge midpoints (1).
//   - Generate resolves functional options into an immutable config and runs
//     one Generator.
//
// Determinism:
//
//   - Mountain is a pure function of (x, y, maxHeight).
//   - Uniform and Fractal draw from the configured *rand.Rand. Pass WithSeed
//     or WithRand to reproduce a field; without either, a time-seeded source
//     is used and every call differs.
//
// Complexity:
//
//   - All generators: O(Side²) time and memory. Fractal recursion depth is
//     O(log Side).
//
// Errors:
//
//   - ErrBadSize: size below the generator minimum.
//   - ErrBadHeight: maxHeight outside [1, MaxHeightLimit], or a Fractal
//     floor (WithMinHeight) at or above maxHeight.
//   - ErrNilGenerator: Generate called without a strategy.
package heightfield
