package core

import (
	"fmt"
	"math"
)

// Order returns the number of vertices. Vertices are the integers [0, Order).
// Complexity: O(1).
func (g *Graph) Order() int { return g.order }

// EdgeCount returns the number of logical edges added so far.
// An undirected edge counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// HasVertex reports whether v lies inside the vertex range [0, Order).
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.order }

// AddEdge adds an edge from→to with the given weight.
//
// Validation (in order):
//  1. from and to must be inside [0, Order)        → ErrInvalidVertex.
//  2. weight must be finite (no NaN, no ±Inf)      → ErrBadWeight.
//  3. from == to requires WithLoops                → ErrLoopNotAllowed.
//  4. a repeated pair requires WithMultiEdges      → ErrMultiEdgeNotAllowed.
//
// For an undirected Graph the edge is recorded once in the logical edge list
// and mirrored into both endpoints' adjacency lists.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: %d (order %d)", ErrInvalidVertex, from, g.order)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: %d (order %d)", ErrInvalidVertex, to, g.order)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v on edge %d→%d", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, from)
	}

	key := g.pairKey(from, to)
	if !g.allowMulti {
		if _, dup := g.seen[key]; dup {
			return fmt.Errorf("%w: edge %d→%d", ErrMultiEdgeNotAllowed, from, to)
		}
	}
	g.seen[key] = struct{}{}

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: weight})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Arc{To: from, Weight: weight})
	}

	return nil
}

// pairKey normalizes an endpoint pair for duplicate detection.
// Directed pairs keep their orientation; undirected pairs are sorted.
func (g *Graph) pairKey(from, to int) [2]int {
	if !g.directed && to < from {
		return [2]int{to, from}
	}

	return [2]int{from, to}
}

// Arcs returns the arcs leaving v, in edge insertion order. For an undirected
// Graph the result includes arcs contributed by edges added in either
// orientation. The returned slice is shared with the Graph; callers must not
// modify it.
// Complexity: O(1).
func (g *Graph) Arcs(v int) ([]Arc, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d (order %d)", ErrInvalidVertex, v, g.order)
	}

	return g.adj[v], nil
}

// Edges returns a copy of the logical edge list in insertion order.
// Each undirected edge appears exactly once.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Clone returns a deep copy of the Graph. The clone shares no storage with
// the original, so each may be mutated independently.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		order:      g.order,
		edges:      make([]Edge, len(g.edges)),
		adj:        make([][]Arc, g.order),
		seen:       make(map[[2]int]struct{}, len(g.seen)),
	}
	copy(clone.edges, g.edges)
	for v, arcs := range g.adj {
		clone.adj[v] = make([]Arc, len(arcs))
		copy(clone.adj[v], arcs)
	}
	for k := range g.seen {
		clone.seen[k] = struct{}{}
	}

	return clone
}
