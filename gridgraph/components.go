package gridgraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/islandflood/bfs"
)

// ConnectedComponents finds all contiguous regions ("islands") of dry cells,
// according to gg.Conn connectivity.
// Components are discovered in row-major order of their first cell; each is a
// slice of cell indices in BFS order from that cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for membership and output.
func (gg *GridGraph) ConnectedComponents() ([][]int, error) {
	return gg.regions(func(id int) bool { return !gg.flooded[id] })
}

// Basins groups the dry cells lying strictly below water into connected
// regions. After a flood at that level these are exactly the enclosed
// hollows the water could not reach.
//
// Time:   O(W·H·d).
func (gg *GridGraph) Basins(water float64) ([][]int, error) {
	return gg.regions(func(id int) bool {
		return !gg.flooded[id] && gg.heights[id] < water
	})
}

// regions partitions every cell satisfying keep into connected groups.
func (gg *GridGraph) regions(keep func(id int) bool) ([][]int, error) {
	assigned := mapset.New[int]()
	markAssigned := bfs.WithOnVisit(func(id, _ int) error {
		assigned.Put(id)
		return nil
	})
	onlyKept := bfs.WithFilterNeighbor(func(_, nbr int) bool { return keep(nbr) })

	var comps [][]int
	for i0 := 0; i0 < gg.Len(); i0++ {
		if !keep(i0) || assigned.Has(i0) {
			continue
		}
		res, err := bfs.BFS(gg, i0, onlyKept, markAssigned)
		if err != nil {
			return nil, err
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
