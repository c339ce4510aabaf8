// Package bfs provides breadth-first search over integer-indexed graphs such
// as a grid of terrain cells, returning hop distances, parent links and
// visit order.
//
// What
//
//   - Vertices are the integers [0, g.Len()); adjacency comes from
//     g.NeighborIDs. Self-links and duplicate neighbours are tolerated.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook runs per visited vertex and may abort with an error.
//   - Filters individual steps via WithFilterNeighbor (e.g. "dry cells only").
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E).
//   - Reachable regions and connected components of a grid.
//
// Determinism
//
//	Neighbours are enqueued in the order NeighborIDs returns them, so the
//	visit sequence is reproducible for a fixed graph.
package bfs
