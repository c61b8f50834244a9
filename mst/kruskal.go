package mst

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/olekrav/wayfind/core"
	"github.com/olekrav/wayfind/dsu"
)

// Kruskal computes a minimum spanning tree of an undirected weighted graph,
// or a minimum spanning forest when the graph is disconnected.
//
// Steps:
//  1. Validate: g non-nil (ErrNilGraph) and undirected (ErrDirectedGraph).
//  2. Collect the logical edges, skipping self-loops (never tree edges).
//  3. Stable-sort by non-decreasing weight; ties keep insertion order, so
//     the accepted edge set is deterministic and reproducible.
//  4. Walk the sorted edges with a disjoint-set forest: accept an edge iff
//     its endpoints lie in different components, then union them.
//  5. All edges are processed (no early break), so a disconnected input
//     yields the complete forest — one tree per component.
//
// Weights may be negative; cycles are never beneficial regardless of sign.
//
// Complexity: O(E log E) time, O(V + E) space.
func Kruskal(g *core.Graph) (Result, error) {
	// 1. Validate.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.Directed() {
		return Result{}, ErrDirectedGraph
	}
	n := g.Order()

	// 2. Collect candidate edges; self-loops cannot join components.
	edges := make([]core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Stable sort by weight keeps insertion order among equals.
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		default:
			return 0
		}
	})

	// 4. Union-find accept/reject sweep.
	forest, err := dsu.New(n)
	if err != nil {
		return Result{}, fmt.Errorf("mst: building disjoint-set: %w", err)
	}
	var accepted []core.Edge
	var total float64
	for _, e := range edges {
		merged, err := forest.Union(e.From, e.To)
		if err != nil {
			// Unreachable: edges were validated against the vertex range
			// when they entered the Graph.
			return Result{}, fmt.Errorf("mst: union %d,%d: %w", e.From, e.To, err)
		}
		if merged {
			accepted = append(accepted, e)
			total += e.Weight
		}
	}

	// 5. One remaining component means the forest is a spanning tree.
	return Result{
		Edges:          accepted,
		TotalWeight:    total,
		IsSpanningTree: n > 0 && forest.Count() == 1,
	}, nil
}
