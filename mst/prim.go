package mst

import (
	"fmt"

	"github.com/olekrav/wayfind/core"
	"github.com/olekrav/wayfind/pqueue"
)

// Prim computes a minimum spanning tree of the connected component
// containing root, by growing outward from root with a min-queue.
//
// Steps:
//  1. Validate: g non-nil (ErrNilGraph), undirected (ErrDirectedGraph),
//     root in [0, Order) (ErrVertexNotFound), no negative weights
//     (ErrNegativeWeight — Prim shares Dijkstra's greedy precondition).
//  2. Seed the queue with a zero-weight entry for root.
//  3. Repeatedly pop the minimum entry; a popped vertex that is already in
//     the tree is a stale entry and is skipped. Otherwise the connecting
//     edge joins the tree and every arc to a still-unvisited neighbor is
//     enqueued.
//  4. The queue draining ends the growth. Vertices outside root's component
//     are never reached; IsSpanningTree reports whether the whole graph was
//     covered. Use Kruskal for the full forest of a disconnected graph.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Prim(g *core.Graph, root int) (Result, error) {
	// 1. Validate.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.Directed() {
		return Result{}, ErrDirectedGraph
	}
	if !g.HasVertex(root) {
		return Result{}, fmt.Errorf("%w: %d", ErrVertexNotFound, root)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: edge %d—%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 2. Seed with the root at cost zero.
	n := g.Order()
	visited := make([]bool, n)
	pq := pqueue.New(n)
	pq.Push(pqueue.Item{Key: 0, Vertex: root, From: pqueue.NoVertex})

	var accepted []core.Edge
	var total float64
	inTree := 0

	// 3. Grow until no candidate edges remain.
	for {
		it, ok := pq.PopMin()
		if !ok {
			break
		}
		if visited[it.Vertex] {
			// Stale entry: a cheaper connection already claimed the vertex.
			continue
		}
		visited[it.Vertex] = true
		inTree++

		// The seed entry carries no connecting edge; every later one does.
		if it.From != pqueue.NoVertex {
			accepted = append(accepted, core.Edge{From: it.From, To: it.Vertex, Weight: it.Key})
			total += it.Key
		}

		arcs, err := g.Arcs(it.Vertex)
		if err != nil {
			// Unreachable after the root validation; kept as a guard.
			return Result{}, fmt.Errorf("mst: adjacency lookup for %d: %w", it.Vertex, err)
		}
		for _, a := range arcs {
			if !visited[a.To] {
				pq.Push(pqueue.Item{Key: a.Weight, Vertex: a.To, From: it.Vertex})
			}
		}
	}

	// 4. Spanning iff the growth reached every vertex of the graph.
	return Result{
		Edges:          accepted,
		TotalWeight:    total,
		IsSpanningTree: n > 0 && inTree == n,
	}, nil
}
