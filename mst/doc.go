// Package mst builds minimum spanning trees — and, on disconnected inputs,
// minimum spanning forests — of undirected weighted graphs, via Kruskal's
// and Prim's algorithms.
//
// Both engines return the same Result shape: the accepted edges, their total
// weight, and an IsSpanningTree flag. Disconnection is a result state, not
// an error: Kruskal keeps processing all edges and returns one tree per
// component (fewer than V-1 edges, IsSpanningTree false) rather than a
// silently truncated "tree".
//
// Kruskal
//
//   - Sorts all edges by non-decreasing weight with a stable sort, so equal
//     weights tie-break on original insertion order — deterministic and
//     reproducible run to run.
//   - Accepts an edge iff its endpoints lie in different components of a
//     disjoint-set forest (dsu package); accepted edges are unioned in.
//   - Weights may be any sign: a cycle is never beneficial regardless, so
//     the MST is well-defined for negative weights too.
//   - Complexity: O(E log E) for the sort, effectively O(E) for union-find.
//
// Prim
//
//   - Grows a single tree from a root vertex using the min-queue from
//     pqueue, with lazy decrease-key and a visited check to skip stale
//     entries.
//   - Covers only the connected component containing the root: vertices
//     unreachable from the root are not spanned (IsSpanningTree reports
//     false then). Run Kruskal when a full forest of a disconnected graph
//     is needed.
//   - Shares Dijkstra's fail-fast stance on negative weights
//     (ErrNegativeWeight after an O(E) scan); use Kruskal for graphs with
//     negative edges.
//   - Complexity: O((V + E) log V).
//
// When multiple MSTs of equal weight exist the two engines may pick
// different edge sets, but their total weights always agree.
package mst
