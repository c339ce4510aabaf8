// SPDX-License-Identifier: MIT
// Package: islandflood/terrain
//
// config.go - generator selection and engine configuration.
//
// Defaults (DefaultConfigFor):
//   • size            = 64        (last valid index; 65×65 cells)
//   • max_height      = size/2    (64 for the random generator)
//   • ocean_distance  = size/2    (radial generators only)
//   • min_height      = -30       (terrain generator floor)
//   • descent         = 0.32      (terrain generator nudge direction)
//   • seed            = 0         (0 means time-seeded)

package terrain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/islandflood/heightfield"
)

// Generator names a height-field strategy.
type Generator string

const (
	// Mountain is a radial peak with a diamond-shaped coast.
	Mountain Generator = "mountain"
	// Random draws uniform heights inside a diamond-shaped coast.
	Random Generator = "random"
	// RandomTerrain is midpoint displacement with a sea-level coast.
	RandomTerrain Generator = "terrain"
)

// generatorAliases maps every accepted spelling to its canonical name.
var generatorAliases = map[string]Generator{
	"mountain": Mountain,
	"random":   Random,
	"uniform":  Random,
	"terrain":  RandomTerrain,
	"fractal":  RandomTerrain,
}

// Generators lists the canonical generator names.
func Generators() []Generator { return []Generator{Mountain, Random, RandomTerrain} }

// Radial reports whether g shapes its coast by distance from the centre.
func (g Generator) Radial() bool { return g == Mountain || g == Random }

// ParseGenerator resolves a generator name, ignoring case and surrounding
// space. Unknown names wrap ErrUnknownGenerator and, when one is close
// enough, suggest the nearest accepted spelling.
func ParseGenerator(s string) (Generator, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if g, ok := generatorAliases[name]; ok {
		return g, nil
	}
	if best := suggestGenerator(name); best != "" {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownGenerator, s, best)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGenerator, s)
}

func suggestGenerator(name string) string {
	if len(name) < 3 {
		return ""
	}
	best, bestDist := "", math.MaxInt
	for alias := range generatorAliases {
		d := levenshtein.ComputeDistance(name, alias)
		if d > suggestLimit(len(alias)) {
			continue
		}
		if d < bestDist || (d == bestDist && alias < best) {
			best, bestDist = alias, d
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// UnmarshalYAML decodes a generator name through ParseGenerator.
func (g *Generator) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseGenerator(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*g = parsed
	return nil
}

// Config selects and parameterizes an island.
type Config struct {
	Generator     Generator `yaml:"generator"`
	Size          int       `yaml:"size"`           // last valid index
	MaxHeight     int       `yaml:"max_height"`     // peak / upper clamp
	OceanDistance int       `yaml:"ocean_distance"` // radial generators only
	Seed          int64     `yaml:"seed"`           // 0 = time-seeded

	MinHeight          float64 `yaml:"min_height"` // terrain generator floor
	DescentProbability float64 `yaml:"descent"`    // terrain generator
}

const (
	// DefaultSize is the last grid index of a default island (65×65 cells).
	DefaultSize = 64
	// DefaultRandomMaxHeight is the peak of the random generator; the other
	// generators default to DefaultSize/2.
	DefaultRandomMaxHeight = 64
	// DefaultMinHeight is the terrain generator's floor.
	DefaultMinHeight = -30.0
	// DefaultDescentProbability is the chance a terrain nudge points down.
	DefaultDescentProbability = 0.32
)

// DefaultConfig returns the mountain island defaults.
func DefaultConfig() Config { return DefaultConfigFor(Mountain) }

// DefaultConfigFor returns the defaults for generator g at DefaultSize.
func DefaultConfigFor(g Generator) Config {
	cfg := Config{
		Generator:          g,
		Size:               DefaultSize,
		MaxHeight:          DefaultSize / 2,
		OceanDistance:      DefaultSize / 2,
		MinHeight:          DefaultMinHeight,
		DescentProbability: DefaultDescentProbability,
	}
	if g == Random {
		cfg.MaxHeight = DefaultRandomMaxHeight
	}
	return cfg
}

// Validate rejects degenerate configurations with ErrInvalidConfig.
func (c Config) Validate() error {
	switch c.Generator {
	case Mountain, Random, RandomTerrain:
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnknownGenerator, c.Generator)
	}
	minSize := 1
	if c.Generator == RandomTerrain {
		minSize = 2
	}
	switch {
	case c.Size < minSize:
		return fmt.Errorf("%w: size=%d (must be ≥ %d for %s)", ErrInvalidConfig, c.Size, minSize, c.Generator)
	case c.MaxHeight <= 0 || c.MaxHeight > heightfield.MaxHeightLimit:
		return fmt.Errorf("%w: max_height=%d (must be in [1, %d])", ErrInvalidConfig, c.MaxHeight, heightfield.MaxHeightLimit)
	case c.Generator.Radial() && c.OceanDistance <= 0:
		return fmt.Errorf("%w: ocean_distance=%d (must be > 0)", ErrInvalidConfig, c.OceanDistance)
	case math.IsNaN(c.MinHeight):
		return fmt.Errorf("%w: min_height is NaN", ErrInvalidConfig)
	case c.Generator == RandomTerrain && c.MinHeight >= float64(c.MaxHeight):
		return fmt.Errorf("%w: min_height=%v (must be below max_height=%d)", ErrInvalidConfig, c.MinHeight, c.MaxHeight)
	case !(c.DescentProbability >= 0 && c.DescentProbability <= 1):
		return fmt.Errorf("%w: descent=%v (must be within [0,1])", ErrInvalidConfig, c.DescentProbability)
	}
	return nil
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// the defaults of the generator the file names (mountain if none). Unknown
// keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config bytes; see LoadConfig.
func ParseConfig(data []byte) (Config, error) {
	var head struct {
		Generator Generator `yaml:"generator"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}
	if head.Generator == "" {
		head.Generator = Mountain
	}

	cfg := DefaultConfigFor(head.Generator)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}
	return cfg, nil
}

// String implements flag.Value.
func (g Generator) String() string { return string(g) }

// Set implements flag.Value through ParseGenerator.
func (g *Generator) Set(s string) error {
	parsed, err := ParseGenerator(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Merge copies every field of base into cfg whose command-line flag was not
// set explicitly. Flag names are the yaml keys with '_' replaced by '-'.
func Merge(cfg *Config, base Config, explicitFlags map[string]bool) {
	if !explicitFlags["generator"] {
		cfg.Generator = base.Generator
	}
	if !explicitFlags["size"] {
		cfg.Size = base.Size
	}
	if !explicitFlags["max-height"] {
		cfg.MaxHeight = base.MaxHeight
	}
	if !explicitFlags["ocean-distance"] {
		cfg.OceanDistance = base.OceanDistance
	}
	if !explicitFlags["seed"] {
		cfg.Seed = base.Seed
	}
	if !explicitFlags["min-height"] {
		cfg.MinHeight = base.MinHeight
	}
	if !explicitFlags["descent"] {
		cfg.DescentProbability = base.DescentProbability
	}
}
