// SPDX-License-Identifier: MIT
// Package: islandflood/heightfield
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Determinism is opt-in through WithSeed or WithRand.

package heightfield

import (
	"math"
	"math/rand"
)

// Option customizes a Generate call.
type Option func(*genConfig)

// WithRand supplies the random source used by Uniform and Fractal.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("heightfield: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic random source from seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMinHeight sets the Fractal floor. math.Inf(-1) disables it, which
// reproduces the upper-bound-only clamp. Panics on NaN.
func WithMinHeight(h float64) Option {
	if math.IsNaN(h) {
		panic("heightfield: WithMinHeight(NaN)")
	}
	return func(c *genConfig) {
		c.minHeight = h
	}
}

// WithDescentProbability sets the chance that a Fractal nudge is negative.
// Panics unless 0 <= p <= 1.
func WithDescentProbability(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic("heightfield: WithDescentProbability(p outside [0,1])")
	}
	return func(c *genConfig) {
		c.descent = p
	}
}
