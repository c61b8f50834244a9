package dijkstra

import (
	"fmt"
	"math"

	"github.com/olekrav/wayfind/core"
	"github.com/olekrav/wayfind/pqueue"
	"github.com/olekrav/wayfind/route"
)

// Run computes shortest distances from the source vertex to all reachable
// vertices of g.
//
// Preconditions and validation (in order):
//  1. A Source option must be supplied (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source (and Target, if set) must lie in [0, Order) (ErrVertexNotFound).
//  4. No edge may carry a negative weight (ErrNegativeWeight).
//
// The returned Result maps every vertex to its distance (math.Inf(1) if
// unreached) and predecessor (route.NoPredecessor if none).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Run(g *core.Graph, opts ...Option) (Result, error) {
	// 1) Assemble options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == NoVertex {
		return Result{}, ErrNoSource
	}

	// 2) Validate graph and vertices.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return Result{}, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != NoVertex && !g.HasVertex(cfg.Target) {
		return Result{}, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}

	// 3) Fail fast on negative weights: one O(E) scan up front.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
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

	pq := pqueue.New(n)
	pq.Push(pqueue.Item{Key: 0, Vertex: cfg.Source, From: pqueue.NoVertex})

	// 5) Main loop: settle vertices in order of increasing distance.
	for {
		it, ok := pq.PopMin()
		if !ok {
			break
		}
		u := it.Vertex

		// Stale-entry skip: a key above the recorded distance belongs to an
		// entry superseded by a later, better push.
		if it.Key > dist[u] {
			continue
		}

		// Early exit: once the target is settled its distance is final.
		if u == cfg.Target {
			break
		}

		// Relax every arc leaving u.
		arcs, err := g.Arcs(u)
		if err != nil {
			// Unreachable after the validation above; kept as a guard.
			return Result{}, fmt.Errorf("dijkstra: adjacency lookup for %d: %w", u, err)
		}
		for _, a := range arcs {
			candidate := dist[u] + a.Weight
			if candidate < dist[a.To] {
				dist[a.To] = candidate
				prev[a.To] = u
				pq.Push(pqueue.Item{Key: candidate, Vertex: a.To, From: u})
			}
		}
	}

	return Result{Source: cfg.Source, Dist: dist, Prev: prev}, nil
}
