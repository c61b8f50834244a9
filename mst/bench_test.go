package mst_test

import (
	"testing"

	"github.com/olekrav/wayfind/mst"
)

// BenchmarkKruskal measures a full run on a seeded random graph with
// 500 vertices and roughly 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildRandomConnected(500, 1500, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Kruskal(g)
	}
}

// BenchmarkPrim measures the same workload grown from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := buildRandomConnected(500, 1500, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, 0)
	}
}
