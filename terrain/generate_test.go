package terrain_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islandflood/terrain"
)

func heights(tr *terrain.Terrain) []float64 {
	hs := make([]float64, 0, tr.Size())
	for _, c := range tr.All() {
		hs = append(hs, c.Height)
	}
	return hs
}

func TestGenerate_Mountain(t *testing.T) {
	tr, err := terrain.Generate(terrain.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 65, tr.Width())
	assert.Equal(t, 65, tr.Height())
	assert.Equal(t, 65*65, tr.Size())
	assert.Equal(t, 32.0, tr.MaxHeight())
	// Land is every cell with Manhattan distance < 32: 1 + Σ 4d for d=1..31.
	assert.Equal(t, 65*65-1985, tr.OceanCount())
	assert.Equal(t, tr.OceanCount(), tr.FloodedCount())

	i, err := tr.Index(43, 61)
	require.NoError(t, err)
	assert.Equal(t, 61*65+43, i)

	land := mustAt(t, tr, 10, 36)
	assert.Equal(t, terrain.Land, land.Kind)
	assert.Equal(t, 6.0, land.Height)

	for _, xy := range [][2]int{{13, 5}, {58, 8}, {33, 1}, {10, 56}} {
		c := mustAt(t, tr, xy[0], xy[1])
		assert.Truef(t, c.IsOcean(), "(%d,%d)", xy[0], xy[1])
		assert.Equal(t, 0.0, c.Height)
	}
}

func TestGenerate_MountainHeightAt64(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.MaxHeight = 64
	cfg.OceanDistance = 60
	tr, err := terrain.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24.0, mustAt(t, tr, 43, 61).Height)
}

func TestGenerate_Random(t *testing.T) {
	cfg := terrain.DefaultConfigFor(terrain.Random)
	cfg.Seed = 4
	tr, err := terrain.Generate(cfg)
	require.NoError(t, err)

	for _, c := range tr.All() {
		if c.IsOcean() {
			continue
		}
		require.GreaterOrEqual(t, c.Height, 0.0)
		require.LessOrEqual(t, c.Height, 64.0)
	}
	assert.True(t, mustAt(t, tr, 51, 51).IsOcean())
	assert.False(t, mustAt(t, tr, 25, 36).IsOcean())
}

func TestGenerate_TerrainSeeded(t *testing.T) {
	cfg := terrain.DefaultConfigFor(terrain.RandomTerrain)
	cfg.MaxHeight = 128
	cfg.Seed = 5

	a, err := terrain.Generate(cfg)
	require.NoError(t, err)
	b, err := terrain.Generate(cfg, terrain.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	assert.Equal(t, heights(a), heights(b))

	peak := mustAt(t, a, 32, 32)
	assert.Equal(t, 128.0, peak.Height)
	assert.Equal(t, terrain.Land, peak.Kind)
	for _, xy := range [][2]int{{32, 0}, {32, 64}, {0, 32}, {64, 32}} {
		c := mustAt(t, a, xy[0], xy[1])
		assert.Equal(t, 1.0, c.Height)
	}
	for _, c := range a.All() {
		if c.IsOcean() {
			require.Equal(t, 0.0, c.Height)
		} else {
			require.Greater(t, c.Height, 0.0)
		}
	}
	// Corners are never written by subdivision and stay at sea level.
	assert.True(t, mustAt(t, a, 0, 0).IsOcean())
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.Size = 0
	tr, err := terrain.Generate(cfg)
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, terrain.ErrInvalidConfig)

	cfg = terrain.DefaultConfigFor(terrain.Random)
	cfg.OceanDistance = 0
	_, err = terrain.Generate(cfg)
	assert.ErrorIs(t, err, terrain.ErrInvalidConfig)

	cfg = terrain.DefaultConfigFor(terrain.RandomTerrain)
	cfg.MinHeight, cfg.Seed = 100, 3
	_, err = terrain.Generate(cfg)
	assert.ErrorIs(t, err, terrain.ErrInvalidConfig)

	assert.Panics(t, func() { terrain.WithRand(nil) })
}

func TestGenerate_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tr, err := terrain.Generate(terrain.DefaultConfig(), terrain.WithLogger(log))
	require.NoError(t, err)
	tr.Flood(3)

	out := buf.String()
	assert.Contains(t, out, "terrain generated")
	assert.Contains(t, out, "generator=mountain")
	assert.Contains(t, out, "newly_flooded=")
}
