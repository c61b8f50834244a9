// Package core defines the Graph container shared by every wayfind engine.
//
// A Graph owns a fixed vertex set and a weighted edge multiset:
//
//   - Vertices are dense integers in [0, Order). The vertex set is fixed at
//     construction time; vertices are never created or destroyed afterwards.
//     Callers with labelled vertices map their labels onto this range before
//     building the Graph.
//   - Edges carry a finite float64 weight. math.Inf(1) is reserved to mean
//     "no edge" in dense-matrix views and is rejected as an input weight,
//     as are math.Inf(-1) and NaN.
//   - A Graph is directed or undirected as a whole (WithDirected). An
//     undirected edge is stored once in the logical edge list and appears
//     in the adjacency list of both endpoints, so every engine observes
//     symmetric adjacency through the same representation.
//   - Self-loops and parallel edges are disabled by default and enabled
//     via WithLoops and WithMultiEdges.
//
// Mutation and concurrency:
//
//	AddEdge is the only mutating operation. The engines in sibling packages
//	treat the Graph as read-only for the duration of a run, so a fully built
//	Graph may serve any number of concurrent computations. Construction
//	itself is not synchronized; build the Graph from one goroutine.
//
// Errors:
//
//	ErrNegativeOrder       - construction with a negative vertex count.
//	ErrInvalidVertex       - a vertex index outside [0, Order).
//	ErrBadWeight           - a NaN or infinite edge weight.
//	ErrLoopNotAllowed      - a self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a parallel edge when multi-edges are disabled.
package core
