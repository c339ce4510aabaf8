package shade

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"github.com/katalvlaran/islandflood/terrain"
)

// Mode selects how Render draws cells.
type Mode int

const (
	// Glyphs draws one ASCII character per cell.
	Glyphs Mode = iota
	// Blocks draws two spaces per cell on a true-colour background.
	Blocks
)

// Glyph returns the ASCII character for c:
//
//	~ ocean   - flooded   ! dry but at or below the water
//	. low     + mid       ^ high  (dry, by height above the water)
func Glyph(c terrain.Cell, water, maxHeight float64) byte {
	switch {
	case c.IsOcean():
		return '~'
	case c.Flooded:
		return '-'
	case c.Height <= water:
		return '!'
	}
	if maxHeight <= 0 {
		return '.'
	}
	switch f := (c.Height - water) / maxHeight; {
	case f < 1.0/3:
		return '.'
	case f < 2.0/3:
		return '+'
	default:
		return '^'
	}
}

// Render writes t row by row to w with the water at level water.
// A terrain with no land above zero is scaled as if its peak were 1.
func Render(w io.Writer, t *terrain.Terrain, water float64, mode Mode) error {
	maxHeight := t.MaxHeight()
	if maxHeight <= 0 {
		maxHeight = 1
	}

	bw := bufio.NewWriter(w)
	for i, c := range t.All() {
		switch mode {
		case Blocks:
			rgb, err := CellColor(c, water, maxHeight)
			if err != nil {
				return err
			}
			bg := color.RGB(rgb[0], rgb[1], rgb[2], true)
			if _, err := bw.WriteString(bg.Sprint("  ")); err != nil {
				return err
			}
		default:
			if err := bw.WriteByte(Glyph(c, water, maxHeight)); err != nil {
				return err
			}
		}
		if (i+1)%t.Width() == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
