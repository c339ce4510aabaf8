package heightfield_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islandflood/heightfield"
)

// TestFractal_Seeds checks the centre peak and the four edge midpoints. The
// zero-only write guard means subdivision never overwrites them.
func TestFractal_Seeds(t *testing.T) {
	const maxHeight = 128
	f, err := heightfield.Generate(islandSize, heightfield.Fractal(maxHeight), heightfield.WithSeed(3))
	require.NoError(t, err)

	c := heightfield.Center(islandSize)
	assert.Equal(t, float64(maxHeight), f.At(c, c))
	assert.Equal(t, 1.0, f.At(c, 0))
	assert.Equal(t, 1.0, f.At(c, islandSize))
	assert.Equal(t, 1.0, f.At(0, c))
	assert.Equal(t, 1.0, f.At(islandSize, c))
}

func TestFractal_ClampedToRange(t *testing.T) {
	const maxHeight = 40
	for seed := int64(0); seed < 5; seed++ {
		f, err := heightfield.Generate(islandSize, heightfield.Fractal(maxHeight),
			heightfield.WithSeed(seed),
			heightfield.WithMinHeight(-10),
			heightfield.WithDescentProbability(0.5),
		)
		require.NoError(t, err)
		for _, row := range f.Rows() {
			for _, h := range row {
				require.GreaterOrEqual(t, h, -10.0)
				require.LessOrEqual(t, h, float64(maxHeight))
			}
		}
	}
}

// With every nudge pointing up, no midpoint can fall below its corner mean,
// and all seeds are non-negative.
func TestFractal_NoDescentStaysNonNegative(t *testing.T) {
	f, err := heightfield.Generate(32, heightfield.Fractal(32),
		heightfield.WithSeed(11),
		heightfield.WithDescentProbability(0),
	)
	require.NoError(t, err)
	for _, row := range f.Rows() {
		for _, h := range row {
			require.GreaterOrEqual(t, h, 0.0)
		}
	}
}

func TestFractal_AlwaysDescendingHitsFloor(t *testing.T) {
	f, err := heightfield.Generate(islandSize, heightfield.Fractal(64),
		heightfield.WithSeed(5),
		heightfield.WithDescentProbability(1),
	)
	require.NoError(t, err)

	lowest := 0.0
	for _, row := range f.Rows() {
		for _, h := range row {
			if h < lowest {
				lowest = h
			}
		}
	}
	assert.Equal(t, -30.0, lowest, "default floor should bound the deepest cell")
}

func TestFractal_SeedReproducible(t *testing.T) {
	a, err := heightfield.Generate(islandSize, heightfield.Fractal(64), heightfield.WithSeed(99))
	require.NoError(t, err)
	b, err := heightfield.Generate(islandSize, heightfield.Fractal(64),
		heightfield.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())

	c, err := heightfield.Generate(islandSize, heightfield.Fractal(64), heightfield.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a.Rows(), c.Rows())
}

func TestFractal_SmallestField(t *testing.T) {
	f, err := heightfield.Generate(2, heightfield.Fractal(8), heightfield.WithSeed(1))
	require.NoError(t, err)
	// 3×3: every non-corner cell is a seed; corners stay 0.
	assert.Equal(t, [][]float64{
		{0, 1, 0},
		{1, 8, 1},
		{0, 1, 0},
	}, f.Rows())
}
