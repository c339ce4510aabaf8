package shade

import (
	"errors"
	"fmt"
	"math"

	"github.com/gookit/color"

	"github.com/katalvlaran/islandflood/terrain"
)

var (
	// ErrInvalidBlend is returned by Mix for a factor outside [0,1].
	ErrInvalidBlend = errors.New("shade: blend factor must be within [0,1]")
	// ErrBadScale is returned when the height scale is not positive.
	ErrBadScale = errors.New("shade: maxHeight must be > 0")
)

var (
	// Ocean is the colour of open sea.
	Ocean = color.RGB(0, 0, 255)

	maxDry     = color.RGB(255, 255, 255)
	minDry     = color.RGB(0, 128, 0)
	minAtRisk  = color.RGB(64, 128, 0)
	maxAtRisk  = color.RGB(255, 0, 0)
	minFlooded = color.RGB(0, 89, 128)
	maxFlooded = color.RGB(0, 0, 255)
)

// Mix blends a and b channel by channel: f·a + (1−f)·b, rounded.
// f == 1 yields a, f == 0 yields b.
func Mix(a, b color.RGBColor, f float64) (color.RGBColor, error) {
	if !(f >= 0 && f <= 1) {
		return color.RGBColor{}, fmt.Errorf("%w: %v", ErrInvalidBlend, f)
	}
	ch := func(i int) uint8 {
		return uint8(math.Round(float64(a[i])*f + float64(b[i])*(1-f)))
	}

	return color.RGB(ch(0), ch(1), ch(2)), nil
}

// CellColor picks the colour for c with the water at level water on an
// island whose highest land is maxHeight.
func CellColor(c terrain.Cell, water, maxHeight float64) (color.RGBColor, error) {
	if !(maxHeight > 0) {
		return color.RGBColor{}, fmt.Errorf("%w: %v", ErrBadScale, maxHeight)
	}
	switch {
	case c.IsOcean():
		return Ocean, nil
	case c.Flooded:
		return Mix(maxFlooded, minFlooded, depth(water-c.Height, maxHeight))
	case c.Height > water:
		return Mix(maxDry, minDry, clamp01((c.Height-water)/maxHeight))
	default:
		return Mix(maxAtRisk, minAtRisk, depth(water-c.Height, maxHeight))
	}
}

// depth maps how far below the water a cell sits onto [0,1] with a square
// root curve, so shallow differences stay visible.
func depth(below, maxHeight float64) float64 {
	return math.Min(math.Sqrt(clamp01(below/maxHeight)), 1)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
