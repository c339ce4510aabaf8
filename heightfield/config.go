// SPDX-License-Identifier: MIT
// Package: islandflood/heightfield
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   • rng         = nil   (resolved to a time-seeded source by Generate)
//   • minHeight   = -30   (Fractal floor)
//   • descent     = 0.32  (probability a Fractal nudge points downwards)

package heightfield

import (
	"math/rand"
	"time"
)

const (
	defaultMinHeight = -30.0
	defaultDescent   = 0.32
)

// genConfig carries every knob a Generator may read. It is passed by value.
type genConfig struct {
	rng       *rand.Rand
	minHeight float64
	descent   float64
}

// newGenConfig applies opts in order (last wins) over the defaults and
// resolves a missing RNG to a time-seeded one.
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		minHeight: defaultMinHeight,
		descent:   defaultDescent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}
