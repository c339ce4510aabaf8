package bfs_test

import (
	"testing"

	"github.com/katalvlaran/islandflood/bfs"
)

// BenchmarkBFS_Grid measures a full traversal of a 65×65 grid, the default
// island size.
func BenchmarkBFS_Grid(b *testing.B) {
	g := grid(65)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
