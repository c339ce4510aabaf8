package terrain

import "log/slog"

// Kind tags a cell as land or pre-existing open water.
type Kind uint8

const (
	// Land cells start dry and may flood.
	Land Kind = iota
	// Ocean cells are flooded from construction and sit at sea level.
	Ocean
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Land:
		return "land"
	case Ocean:
		return "ocean"
	default:
		return "unknown"
	}
}

// Cell is one grid square. Neighbour fields hold flat indices into the
// owning Terrain; border cells reference themselves on their outward side.
type Cell struct {
	Height  float64 // feet; negative is below sea level
	X, Y    int     // origin top-left
	Kind    Kind
	Flooded bool

	Left, Top, Right, Bottom int
}

// IsOcean reports whether c is an ocean cell.
func (c Cell) IsOcean() bool { return c.Kind == Ocean }

// Neighbors returns the four neighbour indices in left, top, right, bottom
// order.
func (c Cell) Neighbors() [4]int { return [4]int{c.Left, c.Top, c.Right, c.Bottom} }

// Terrain is a wired grid of cells. It exclusively owns the cell storage;
// readers receive copies and Flood is the only mutator.
type Terrain struct {
	width, height int
	cells         []Cell
	maxHeight     float64
	log           *slog.Logger
}
