// Package wayfind is an in-memory engine for weighted-graph computations:
// single-source shortest paths, all-pairs shortest paths, and minimum
// spanning trees.
//
// What wayfind provides:
//
//   - Core primitives: a fixed-order graph over dense integer vertices,
//     directed or undirected, with float64 edge weights
//   - Shortest paths: Dijkstra (non-negative weights),
//     Bellman-Ford (arbitrary weights, negative-cycle detection),
//     Floyd-Warshall (all pairs, dense)
//   - Minimum spanning trees: Kruskal (edge sort + union-find) and
//     Prim (vertex growth + min-heap)
//   - Support structures: a disjoint-set forest and a min-oriented
//     priority queue, both exported for direct use
//   - Path reconstruction from predecessor maps with explicit
//     "no path" reporting
//
// Everything is organized under small, focused subpackages:
//
//	core/        — Graph, Edge, Arc types and construction
//	dsu/         — disjoint-set (union-find) forest
//	pqueue/      — min-oriented priority queue
//	dijkstra/    — single-source shortest paths, non-negative weights
//	bellmanford/ — single-source shortest paths, arbitrary weights
//	matrix/      — dense adjacency view + Floyd-Warshall closure
//	mst/         — Kruskal and Prim spanning-tree/forest builders
//	route/       — predecessor-map path reconstruction
//
// Design ground rules shared by all engines:
//
//   - A Graph is read-only for the duration of a run; every engine owns its
//     working state exclusively, so runs are safe to execute concurrently
//     on the same Graph.
//   - math.Inf(1) means "unreachable"; it never appears as an edge weight.
//   - Expected graph properties (negative cycles, disconnection) are
//     reported as result states or sentinel errors, never as panics.
//   - Re-running an engine on the same Graph with the same parameters
//     yields identical results.
//
//	go get github.com/olekrav/wayfind
package wayfind
