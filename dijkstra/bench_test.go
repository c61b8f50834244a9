package dijkstra_test

import (
	"testing"

	"github.com/olekrav/wayfind/dijkstra"
)

// BenchmarkRun measures a full single-source run on a seeded random graph
// with 500 vertices and roughly 2000 edges.
func BenchmarkRun(b *testing.B) {
	g := buildRandomGraph(500, 1500, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Run(g, dijkstra.Source(0))
	}
}
