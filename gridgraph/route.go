package gridgraph

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/islandflood/bfs"
)

// EscapeRoute is EscapeRouteContext with a background context.
func (gg *GridGraph) EscapeRoute(from, to int) ([]int, error) {
	return gg.EscapeRouteContext(context.Background(), from, to)
}

// EscapeRouteContext returns the shortest walk from cell from to cell to that
// stays on dry cells, both endpoints included. Hop count uses gg.Conn.
//
// Errors: ErrCellIndex for an out-of-range index; ErrNoPath when either end
// is wet or the water cuts them apart; ctx.Err() if ctx ends mid-search.
func (gg *GridGraph) EscapeRouteContext(ctx context.Context, from, to int) ([]int, error) {
	if err := gg.checkCell(from); err != nil {
		return nil, err
	}
	if err := gg.checkCell(to); err != nil {
		return nil, err
	}
	if !gg.Dry(from) || !gg.Dry(to) {
		return nil, fmt.Errorf("%w: %d→%d ends in water", ErrNoPath, from, to)
	}

	res, err := bfs.BFS(gg, from, bfs.WithContext(ctx), gg.dryOnly())
	if err != nil {
		return nil, err
	}
	route, err := res.PathTo(to)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, from, to)
	}

	return route, err
}

// IslandOf returns the dry cells reachable from id without wading, or nil
// if id is wet or out of range.
func (gg *GridGraph) IslandOf(id int) []int {
	cells, err := gg.IslandWithin(id, 0)
	if err != nil {
		return nil
	}
	return cells
}

// IslandWithin returns the dry cells reachable from id in at most steps dry
// moves, nearest first. steps == 0 means no limit. A wet or out-of-range id
// yields nil; a negative steps wraps bfs.ErrOptionViolation.
func (gg *GridGraph) IslandWithin(id, steps int) ([]int, error) {
	if !gg.Dry(id) {
		return nil, nil
	}
	res, err := bfs.BFS(gg, id, bfs.WithMaxDepth(steps), gg.dryOnly())
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}

// dryOnly keeps searches on dry cells.
func (gg *GridGraph) dryOnly() bfs.Option {
	return bfs.WithFilterNeighbor(func(_, nbr int) bool { return gg.Dry(nbr) })
}
