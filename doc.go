// Package islandflood is a small engine for islands that drown: generate a
// height field, turn it into a grid of wired cells, then raise the water
// and watch low ground go under.
//
// 🌊 What is in the box?
//
//	heightfield/ - height generators: radial Mountain, Uniform noise,
//	               Fractal midpoint displacement; seeded via WithSeed
//	terrain/     - Cell, Terrain, Build policies, Generate(Config), Flood
//	bfs/         - breadth-first search over integer-indexed graphs
//	gridgraph/   - islands, basins, wading cost and escape routes over a
//	               terrain snapshot
//	shade/       - cell palette and terminal rendering
//	cmd/islandgen - command-line driver with YAML config
//
// Flood rule:
//
//	A dry cell floods when its height is strictly below the water and a
//	chain of such cells connects it, four-way, to a flooded cell. Ocean
//	cells start flooded. Basins walled in by higher ground stay dry even
//	below the water line. Flooding never reverts.
//
// Quick ASCII example (water 2, heights shown, ~ ocean):
//
//	~ 1 9        ~ - 9
//	1 1 6   →    - - 6
//	9 3 2        9 3 2
//
//	go install github.com/katalvlaran/islandflood/cmd/islandgen@latest
package islandflood
