package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ExpandIsland finds the path that wades through the fewest flooded cells to
// connect any cell in component srcComp to any cell in component dstComp,
// as identified by ConnectedComponents(). Each flooded cell costs 1.
// Returns the sequence of cell-indices (row-major) representing the path
// (including the start and end dry cells) and the total wading cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0–1-BFS from all srcComp cells:
//     • Moving into a dry cell     → cost 0
//     • Moving into a flooded cell → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d).
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps, err := gg.ConnectedComponents()
	if err != nil {
		return nil, 0, err
	}
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: (%d,%d) with %d islands", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	src := comps[srcComp]
	dstSet := mapset.Of(comps[dstComp]...)

	n := gg.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range src {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if dstSet.Has(u) {
			target = u
			break
		}
		for _, v := range gg.NeighborIDs(u) {
			step := 0
			if gg.flooded[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
