// Package matrix provides the dense all-pairs shortest-path machinery:
// a square row-major float64 matrix, an adjacency view over core.Graph,
// and an in-place Floyd-Warshall closure.
//
// Distance conventions (shared with the rest of wayfind):
//
//   - The diagonal starts at 0: a vertex reaches itself for free.
//   - math.Inf(1) off-diagonal means "no path (yet)".
//   - When parallel edges connect the same ordered pair, the adjacency view
//     keeps the minimum weight — the only one a shortest path could use.
//
// FloydWarshall runs the classic triple loop with the intermediate vertex k
// outermost. The k → i → j order is a correctness requirement, not a style
// choice: all paths through intermediates < k must be final before k is
// considered. The closure is computed in place, O(V³) time and O(1) extra
// space, with no early termination.
//
// Negative cycles surface on the diagonal: after the closure, dist[i][i] < 0
// exactly when some negative-weight cycle passes through i.
// NegativeCycleVertices collects those vertices so callers can distinguish
// "negative cycle" from "unreachable" (+Inf) and from valid negative
// distances.
package matrix
