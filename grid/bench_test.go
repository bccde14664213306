package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkComputeNeighbors measures adjacency rebuild on a 200×200 grid with
// roughly 25% barriers.
// Complexity: O(N²)
func BenchmarkComputeNeighbors(b *testing.B) {
	const n = 200
	rnd := rand.New(rand.NewSource(42))
	g, err := grid.New(n, 1)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	g.Each(func(c *grid.Cell) {
		if rnd.Intn(4) == 0 {
			c.SetRole(grid.Barrier)
		}
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ComputeNeighbors()
	}
}
