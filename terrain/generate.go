// SPDX-License-Identifier: MIT
// Package: islandflood/terrain
//
// generate.go - the terrain engine orchestrator.
//
// Pipeline (all-or-nothing):
//   1. Validate the Config.
//   2. Generate heights with the selected heightfield strategy.
//   3. Build cells: Radial policy for mountain/random, Threshold(0) for
//      terrain.
//   4. Wire neighbours.

package terrain

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/islandflood/heightfield"
)

// Option customizes Generate.
type Option func(*engineOptions)

type engineOptions struct {
	log *slog.Logger
	rng *rand.Rand
}

// WithLogger routes generation and flood events to log at Debug level.
// A nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *engineOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// WithRand supplies the random source, overriding Config.Seed.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("terrain: WithRand(nil)")
	}
	return func(o *engineOptions) {
		o.rng = r
	}
}

// Generate builds a wired island from cfg. The caller owns the result and
// drives it with Flood.
//
// Returns ErrInvalidConfig (wrapping the cause) for degenerate input.
// Complexity: O(Size²).
func Generate(cfg Config, opts ...Option) (*Terrain, error) {
	o := engineOptions{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	gen, policy := cfg.strategy()
	hopts := []heightfield.Option{
		heightfield.WithMinHeight(cfg.MinHeight),
		heightfield.WithDescentProbability(cfg.DescentProbability),
	}
	switch {
	case o.rng != nil:
		hopts = append(hopts, heightfield.WithRand(o.rng))
	case cfg.Seed != 0:
		hopts = append(hopts, heightfield.WithSeed(cfg.Seed))
	}

	field, err := heightfield.Generate(cfg.Size, gen, hopts...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w: %w", ErrInvalidConfig, err)
	}
	t, err := Build(field.Rows(), policy)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	t.maxHeight = float64(cfg.MaxHeight)
	t.log = o.log

	t.log.Debug("terrain generated",
		"generator", string(cfg.Generator),
		"size", cfg.Size,
		"max_height", cfg.MaxHeight,
		"cells", t.Size(),
		"ocean", t.OceanCount(),
	)
	return t, nil
}

// strategy picks the height generator and ocean policy for c.Generator.
func (c Config) strategy() (heightfield.Generator, Policy) {
	center := heightfield.Center(c.Size)
	switch c.Generator {
	case Random:
		return heightfield.Uniform(c.MaxHeight), Radial(center, center, c.OceanDistance)
	case RandomTerrain:
		return heightfield.Fractal(c.MaxHeight), Threshold(0)
	default:
		return heightfield.Mountain(c.MaxHeight), Radial(center, center, c.OceanDistance)
	}
}
