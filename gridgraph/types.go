// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/islandflood.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4,
// the same adjacency the flood itself uses.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is an immutable snapshot of a terrain: per-cell heights and
// flood flags in row-major order. A cell is "dry" while its flood flag is
// false; ocean cells are always wet.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	heights         []float64
	flooded         []bool
	neighborOffsets [][2]int
}
