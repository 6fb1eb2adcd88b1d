package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkBuildNeighbors measures eager neighbor-map construction on a
// 512×512 grid with 25% random walls and diagonal moves.
// Complexity: O(W×H×8)
func BenchmarkBuildNeighbors(b *testing.B) {
	g, err := grid.New(512, 512)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	g.RandomWalls(rand.New(rand.NewSource(42)), 0.25)
	g.SetDiagonal(true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Invalidate()
		_ = g.BuildNeighbors()
	}
}

// BenchmarkResetSearch measures the per-run reset on a 512×512 grid.
func BenchmarkResetSearch(b *testing.B) {
	g, err := grid.New(512, 512)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetSearch()
	}
}
