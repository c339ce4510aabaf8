package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islandflood/terrain"
)

func TestRun_Mountain(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-size", "8", "-ticks", "2", "-color", "never"}, &out, io.Discard)
	require.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 9)
	assert.Len(t, lines[0], 9, "one glyph per cell")
	assert.Contains(t, out.String(), "water: 2\n")
	assert.Contains(t, out.String(), "islands: 1 (largest")
	assert.Contains(t, out.String(), "centre to peak: 0 steps")
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "island.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: fractal\nsize: 16\nseed: 3\n"), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", path, "-size", "8", "-ticks", "0", "-map=false"}, &out, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "/81\n", "size flag overrides the file: 9×9 cells")
}

func TestRun_Errors(t *testing.T) {
	err := run(context.Background(), []string{"-generator", "mountian"}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "mountain"`)

	err = run(context.Background(), []string{"-color", "sometimes"}, io.Discard, io.Discard)
	require.Error(t, err)

	err = run(context.Background(), []string{"-max-height", "0", "-map=false"}, io.Discard, io.Discard)
	require.ErrorIs(t, err, terrain.ErrInvalidConfig)

	err = run(context.Background(), []string{"-ticks", "-1"}, io.Discard, io.Discard)
	require.Error(t, err)
}

func TestDefaultsFor(t *testing.T) {
	base := defaultsFor(terrain.Mountain, 10, true)
	assert.Equal(t, 10, base.Size)
	assert.Equal(t, 5, base.MaxHeight)
	assert.Equal(t, 5, base.OceanDistance)

	rnd := defaultsFor(terrain.Random, 10, true)
	assert.Equal(t, terrain.DefaultRandomMaxHeight, rnd.MaxHeight)

	assert.Equal(t, terrain.DefaultConfig(), defaultsFor(terrain.Mountain, 3, false))
}

func TestRun_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, []string{"-size", "8", "-ticks", "1", "-map=false"}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
