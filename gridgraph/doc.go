// Package gridgraph treats a snapshot of a flooding terrain as a graph,
// answering the questions a player stranded on the island asks.
//
// What:
//
//   - GridGraph copies heights and flood flags out of a terrain.Terrain
//     (FromTerrain) or from plain slices (NewGridGraph).
//   - Identifies connected components ("islands") of dry cells.
//   - Groups dry cells already below the water line into basins.
//   - Computes the fewest flooded cells to wade between two islands (0-1 BFS).
//   - Finds the shortest all-dry escape route between two cells, optionally
//     under a context (EscapeRouteContext).
//   - Lists the dry cells reachable from one cell, optionally within a step
//     radius (IslandWithin).
//
// Complexity:
//
//   - ConnectedComponents, Basins: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - ExpandIsland:                O(W×H×d), Memory: O(W×H).
//   - EscapeRoute, IslandWithin:   O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrCellIndex: requested cell index out of range.
//   - ErrNoPath: no path exists between the specified cells or components.
package gridgraph
