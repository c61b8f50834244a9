package dijkstra

import (
	"errors"

	"github.com/olekrav/wayfind/route"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not specified")

	// ErrVertexNotFound indicates that the source or target vertex lies
	// outside the graph's vertex range.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Non-negative weights are a precondition of Dijkstra's greedy invariant.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// NoVertex is the option value meaning "not set" for Source and Target.
const NoVertex = -1

// Options configures a single Run invocation.
//
// Source – starting vertex (required; must lie in [0, Order)).
// Target – optional early-exit vertex: the search stops once its distance
// is final. NoVertex (the default) explores the whole reachable set.
type Options struct {
	Source int
	Target int
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// Source sets the starting vertex. Required.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithTarget stops the search as soon as the given vertex is settled.
// Distances of vertices farther from the source than the target are left
// at +Inf.
func WithTarget(v int) Option {
	return func(o *Options) { o.Target = v }
}

// DefaultOptions returns Options with no source and no target set.
func DefaultOptions() Options {
	return Options{Source: NoVertex, Target: NoVertex}
}

// Result holds the outcome of one Run: per-vertex shortest distances from
// Source and the predecessor of each reached vertex.
//
// Dist[v] is math.Inf(1) for unreached v; Prev[v] is route.NoPredecessor
// for the source and for unreached vertices.
type Result struct {
	Source int
	Dist   []float64
	Prev   []int
}

// PathTo reconstructs the shortest path from the source to target.
// Returns route.ErrNoPath when the target was not reached.
func (r Result) PathTo(target int) ([]int, error) {
	return route.Reconstruct(r.Prev, r.Source, target)
}
