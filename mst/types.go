package mst

import (
	"errors"

	"github.com/olekrav/wayfind/core"
)

// Sentinel errors returned by the MST engines.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDirectedGraph indicates the graph was built with WithDirected(true);
	// spanning trees are defined on undirected graphs.
	ErrDirectedGraph = errors.New("mst: spanning trees require an undirected graph")

	// ErrVertexNotFound indicates that Prim's root vertex lies outside the
	// graph's vertex range.
	ErrVertexNotFound = errors.New("mst: root vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was detected by
	// Prim, whose greedy growth assumes non-negative weights. Kruskal
	// accepts any sign.
	ErrNegativeWeight = errors.New("mst: negative edge weight encountered")

	// ErrUnknownMethod indicates an unrecognized Options.Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodKruskal selects Kruskal's algorithm (edge sort + union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (vertex growth + min-queue).
const MethodPrim = "prim"

// Result is the outcome of an MST computation.
//
// Edges lists the accepted edges in acceptance order; TotalWeight is their
// sum. IsSpanningTree is true iff the edges span every vertex of the graph
// as a single tree (exactly V-1 edges, V ≥ 1). A disconnected input yields
// a forest: fewer edges and IsSpanningTree == false.
type Result struct {
	Edges          []core.Edge
	TotalWeight    float64
	IsSpanningTree bool
}

// Options selects the MST algorithm and, for Prim, the starting vertex.
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim. Ignored by Kruskal.
	Root int
}

// Option configures Options.
type Option func(*Options)

// WithMethod selects the algorithm: MethodKruskal or MethodPrim.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the starting vertex for Prim. Ignored by Kruskal.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Options selecting Kruskal with root 0.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Root: 0}
}

// Compute dispatches to Kruskal or Prim according to opts.
// Both can equally be called directly.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return Result{}, ErrUnknownMethod
	}
}
