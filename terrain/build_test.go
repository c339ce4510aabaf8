package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islandflood/terrain"
)

// never marks no cell as ocean.
func never(int, int, float64) bool { return false }

func mustBuild(t *testing.T, rows [][]float64, policy terrain.Policy) *terrain.Terrain {
	t.Helper()
	tr, err := terrain.Build(rows, policy)
	require.NoError(t, err)
	return tr
}

func mustAt(t *testing.T, tr *terrain.Terrain, x, y int) terrain.Cell {
	t.Helper()
	c, err := tr.At(x, y)
	require.NoError(t, err)
	return c
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name   string
		rows   [][]float64
		policy terrain.Policy
		err    error
	}{
		{"EmptyRows", [][]float64{}, never, terrain.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, never, terrain.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, never, terrain.ErrNonRectangular},
		{"NilPolicy", [][]float64{{1}}, nil, terrain.ErrNilPolicy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := terrain.Build(tc.rows, tc.policy)
			assert.Nil(t, tr)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuild_OceanCells(t *testing.T) {
	tr := mustBuild(t, [][]float64{{-4, 3}, {7, 0}}, terrain.Threshold(0))

	ocean := mustAt(t, tr, 0, 0)
	assert.True(t, ocean.IsOcean())
	assert.True(t, ocean.Flooded, "ocean starts flooded")
	assert.Equal(t, 0.0, ocean.Height, "ocean sits at sea level")

	land := mustAt(t, tr, 1, 0)
	assert.Equal(t, terrain.Land, land.Kind)
	assert.False(t, land.Flooded)
	assert.Equal(t, 3.0, land.Height)

	assert.Equal(t, 2, tr.OceanCount())
	assert.Equal(t, 7.0, tr.MaxHeight())
}

// TestWire_Clamp checks the clamp-at-edge policy on a 3×3 grid: border cells
// point at themselves on their outward side.
func TestWire_Clamp(t *testing.T) {
	tr := mustBuild(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, never)

	idx := func(x, y int) int {
		i, err := tr.Index(x, y)
		require.NoError(t, err)
		return i
	}
	cases := []struct {
		x, y                     int
		left, top, right, bottom int
	}{
		{0, 0, idx(0, 0), idx(0, 0), idx(1, 0), idx(0, 1)},
		{1, 1, idx(0, 1), idx(1, 0), idx(2, 1), idx(1, 2)},
		{2, 2, idx(1, 2), idx(2, 1), idx(2, 2), idx(2, 2)},
		{2, 0, idx(1, 0), idx(2, 0), idx(2, 0), idx(2, 1)},
		{0, 2, idx(0, 2), idx(0, 1), idx(1, 2), idx(0, 2)},
	}
	for _, tc := range cases {
		c := mustAt(t, tr, tc.x, tc.y)
		assert.Equalf(t, [4]int{tc.left, tc.top, tc.right, tc.bottom}, c.Neighbors(),
			"neighbors of (%d,%d)", tc.x, tc.y)
	}
}

func TestWire_Chain(t *testing.T) {
	tr := mustBuild(t, [][]float64{{1, 2, 3, 4, 5}}, never)

	first := mustAt(t, tr, 0, 0)
	assert.Equal(t, 0, first.Left)
	assert.Equal(t, 0, first.Top)
	assert.Equal(t, 0, first.Bottom)
	assert.Equal(t, 1, first.Right)

	last := mustAt(t, tr, 4, 0)
	assert.Equal(t, 4, last.Right)
	assert.Equal(t, 3, last.Left)
}

func TestAccess_Bounds(t *testing.T) {
	tr := mustBuild(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, never)
	assert.Equal(t, 2, tr.Width())
	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, 6, tr.Size())

	_, err := tr.Get(6)
	assert.ErrorIs(t, err, terrain.ErrIndexOutOfRange)
	_, err = tr.Get(-1)
	assert.ErrorIs(t, err, terrain.ErrIndexOutOfRange)
	_, err = tr.At(2, 0)
	assert.ErrorIs(t, err, terrain.ErrIndexOutOfRange)
	_, err = tr.Index(0, 3)
	assert.ErrorIs(t, err, terrain.ErrIndexOutOfRange)

	c, err := tr.Get(5)
	require.NoError(t, err)
	assert.Equal(t, 1, c.X)
	assert.Equal(t, 2, c.Y)
	x, y := tr.Coordinate(5)
	assert.Equal(t, [2]int{1, 2}, [2]int{x, y})
}

func TestAccess_GetReturnsCopy(t *testing.T) {
	tr := mustBuild(t, [][]float64{{1, 2}}, never)
	c, err := tr.Get(0)
	require.NoError(t, err)
	c.Flooded = true
	c.Height = 100

	again, err := tr.Get(0)
	require.NoError(t, err)
	assert.False(t, again.Flooded)
	assert.Equal(t, 1.0, again.Height)
}

func TestAll_RowMajor(t *testing.T) {
	tr := mustBuild(t, [][]float64{{1, 2}, {3, 4}}, never)
	var seen []float64
	for i, c := range tr.All() {
		assert.Equal(t, len(seen), i)
		seen = append(seen, c.Height)
	}
	assert.Equal(t, []float64{1, 2, 3, 4}, seen)

	count := 0
	for range tr.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "land", terrain.Land.String())
	assert.Equal(t, "ocean", terrain.Ocean.String())
	assert.Equal(t, "unknown", terrain.Kind(9).String())
}
