package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrGraphNil is returned for a nil Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")
	// ErrStartOutOfRange is returned when start is not in [0, g.Len()).
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")
	// ErrOptionViolation wraps a rejected Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the adjacency view BFS walks. Vertices are 0..Len()-1.
type Graph interface {
	Len() int
	NeighborIDs(id int) []int
}

// Option tunes a single BFS call. Bad values are remembered and reported
// as ErrOptionViolation once BFS starts.
type Option func(*BFSOptions)

// BFSOptions is the resolved option set.
type BFSOptions struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context
	// OnVisit runs as each vertex is visited; a non-nil error stops the walk.
	OnVisit func(id, depth int) error
	// MaxDepth > 0 bounds the hop count; 0 means unbounded.
	MaxDepth int
	// FilterNeighbor rejects a step curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions: background context, no depth bound, every step allowed,
// no visit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext makes BFS return ctx.Err() once ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook. nil is ignored.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expanding vertices at depth d. Zero removes the bound;
// a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a step filter. nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the search tree: visit Order, hop Depth per reached vertex,
// and Parent for every reached vertex except the start.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether id was discovered by the search.
func (r *BFSResult) Reached(id int) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo walks Parent links back from dest and returns start..dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
