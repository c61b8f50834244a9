package bellmanford

import (
	"fmt"
	"math"

	"github.com/olekrav/wayfind/core"
	"github.com/olekrav/wayfind/route"
)

// arc is one relaxation direction of a logical edge. Undirected edges
// contribute two arcs so relaxation treats adjacency symmetrically.
type arc struct {
	from, to int
	weight   float64
}

// Run computes shortest distances from the source vertex to all reachable
// vertices of g, tolerating negative edge weights.
//
// Preconditions and validation (in order):
//  1. A Source option must be supplied (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie in [0, Order) (ErrVertexNotFound).
//
// Outcomes:
//   - A Result with final distances and predecessors, or
//   - ErrNegativeCycle when a negative cycle is reachable from the source, or
//   - ErrStopped when the pass hook aborted the run.
//
// Complexity: O(V·E) worst case, O(E) best case via early termination.
func Run(g *core.Graph, opts ...Option) (Result, error) {
	// 1) Assemble options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == NoVertex {
		return Result{}, ErrNoSource
	}

	// 2) Validate graph and source.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return Result{}, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Flatten the edge set into relaxation arcs once. Undirected edges
	//    relax in both directions; self-loops keep a single arc.
	edges := g.Edges()
	arcs := make([]arc, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs, arc{from: e.From, to: e.To, weight: e.Weight})
		if !g.Directed() && e.From != e.To {
			arcs = append(arcs, arc{from: e.To, to: e.From, weight: e.Weight})
		}
	}

	// 4) Initialize working state: dist = +Inf, prev = none, dist[source] = 0.
	n := g.Order()
	dist := make([]float64, n)
	prev := make([]int, n)
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		dist[v] = inf
		prev[v] = route.NoPredecessor
	}
	dist[cfg.Source] = 0

	// 5) Up to V-1 full passes over the arcs. A pass without a single
	//    relaxation proves the table final and ends the loop early.
	passes := 0
	for pass := 1; pass <= n-1; pass++ {
		relaxed := false
		for _, a := range arcs {
			if math.IsInf(dist[a.from], 1) {
				continue
			}
			if candidate := dist[a.from] + a.weight; candidate < dist[a.to] {
				dist[a.to] = candidate
				prev[a.to] = a.from
				relaxed = true
			}
		}
		passes = pass

		if cfg.PassHook != nil && !cfg.PassHook(pass) {
			return Result{}, fmt.Errorf("%w: after pass %d", ErrStopped, pass)
		}
		if !relaxed {
			break
		}
	}

	// 6) Verification pass: any arc that still relaxes closes a negative
	//    cycle reachable from the source.
	for _, a := range arcs {
		if math.IsInf(dist[a.from], 1) {
			continue
		}
		if dist[a.from]+a.weight < dist[a.to] {
			return Result{}, fmt.Errorf("%w: via edge %d→%d weight=%g", ErrNegativeCycle, a.from, a.to, a.weight)
		}
	}

	return Result{Source: cfg.Source, Dist: dist, Prev: prev, Passes: passes}, nil
}
