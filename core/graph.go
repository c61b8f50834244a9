package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates that NewGraph was asked for a negative vertex count.
	ErrNegativeOrder = errors.New("core: vertex count must be non-negative")

	// ErrInvalidVertex indicates an operation referenced a vertex outside [0, Order).
	ErrInvalidVertex = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight was supplied.
	// math.Inf(1) is reserved for "no edge" and must never be an edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one logical edge of the Graph.
//
// For an undirected Graph an Edge is bidirectional: From/To record the order
// the endpoints were supplied in, and the edge appears in the adjacency of
// both endpoints.
type Edge struct {
	// From is the source vertex.
	From int

	// To is the target vertex.
	To int

	// Weight is the cost of traversing this edge. Always finite.
	Weight float64
}

// Arc is a half-edge as seen from one endpoint: the vertex it leads to and
// the traversal cost. Adjacency lookups return Arcs.
type Arc struct {
	// To is the neighboring vertex this arc leads to.
	To int

	// Weight is the traversal cost, identical to the owning Edge's Weight.
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
// Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same pair of vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory weighted graph consumed by every wayfind engine.
//
// The vertex set [0, Order) is fixed at construction. Edges are held twice:
// once in insertion order (the source of deterministic tie-breaking in
// mst.Kruskal) and once as per-vertex adjacency lists for O(deg(v)) lookup.
type Graph struct {
	// Configuration flags
	directed   bool // one-way edges when true
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	order int     // number of vertices
	edges []Edge  // logical edges in insertion order
	adj   [][]Arc // adj[v] lists arcs leaving v; symmetric when undirected

	// seen tracks occupied endpoint pairs for the multi-edge check.
	// Undirected pairs are normalized to (min, max).
	seen map[[2]int]struct{}
}

// NewGraph creates a Graph over the dense vertex range [0, order).
// Returns ErrNegativeOrder if order < 0. An order of zero is a valid,
// empty graph.
// Complexity: O(order).
func NewGraph(order int, opts ...GraphOption) (*Graph, error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	g := &Graph{
		order: order,
		adj:   make([][]Arc, order),
		seen:  make(map[[2]int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
