// Package terrain turns a height field into a flood-able island.
//
// What:
//
//   - Cell is one grid square: height, coordinates, Kind (Land or Ocean),
//     flood flag and the arena indices of its four neighbours.
//   - Terrain owns every Cell in one row-major slice. Index (x, y) maps to
//     y*Width + x; for generated islands Width == Height == Size+1.
//   - Generate composes heightfield generation, cell building and neighbour
//     wiring from a Config. Build does the last two steps for any
//     rectangular height grid.
//   - Flood raises the water: cells below the level flood when they connect
//     to already flooded water through other below-level cells.
//
// Neighbour policy:
//
//	Links clamp at the border instead of wrapping, so edge cells point at
//	themselves on their outward side. Links are set once, after every cell
//	exists.
//
// Flood rule:
//
//	Dry → Flooded is one-way. An enclosed basin below the water level stays
//	dry until the rising water breaches a connecting ridge. Calling Flood
//	again with the same or a lower level changes nothing.
//
// Complexity:
//
//   - Generate: O(W·H).
//   - Flood: O(W·H) per call; each cell changes state at most once.
//
// Concurrency:
//
//	A Terrain is not safe for concurrent use. The engine is driven
//	synchronously, one Flood per tick.
package terrain
