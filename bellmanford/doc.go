// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm for graphs whose edge weights may be negative.
//
// The algorithm performs up to V-1 full passes over the edge set, relaxing
// every edge whose source end already has a finite distance. A pass in which
// nothing relaxes proves the distances final and terminates the loop early.
// After the relaxation passes one verification pass runs: if any edge still
// relaxes, a negative-weight cycle reachable from the source exists and Run
// returns ErrNegativeCycle instead of a distance table — distances are not
// well-defined in that case and are never handed back as plausible numbers.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; O(E) best case with early termination.
//   - Space: O(V + E) for the distance/predecessor slices and the arc list.
//
// Cancellation:
//
//	The algorithm is synchronous and runs to completion once invoked. For
//	soft cancellation, WithPassHook installs a callback invoked between
//	passes; returning false stops the run with ErrStopped. Pass boundaries
//	are the only safe interruption points — a half-applied pass would leave
//	the table in an undefined intermediate state.
//
// On an undirected graph every edge relaxes in both directions, which means
// any single negative undirected edge already forms a negative cycle
// (u→v→u). Negative weights are therefore only meaningful on directed
// graphs; undirected inputs with negative edges are reported via
// ErrNegativeCycle, which is the mathematically accurate answer.
package bellmanford
