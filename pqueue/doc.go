// Package pqueue provides the min-oriented priority queue shared by the
// dijkstra and mst (Prim) engines.
//
// Entries are (key, vertex) pairs, optionally tagged with the vertex that
// generated them (Item.From) so tree-growing algorithms can recover the
// connecting edge. PopMin always returns the entry with the smallest key
// among everything currently enqueued.
//
// The queue deliberately supports the "lazy decrease-key" pattern: when a
// better key is found for a vertex, callers push a fresh entry instead of
// updating the old one. The stale entry stays in the heap and surfaces
// later; it is the caller's job to recognize it (key no longer matches the
// best-known value, or vertex already settled) and skip it. This trades a
// larger heap (up to one entry per relaxation) for O(log n) pushes without
// index bookkeeping.
package pqueue
