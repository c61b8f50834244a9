// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted graphs with non-negative edge weights.
//
// Dijkstra processes vertices in order of increasing distance from the
// source using a min-oriented priority queue, relaxing outgoing arcs and
// recording predecessors as distances improve. Unreachable vertices keep a
// distance of math.Inf(1) and no predecessor.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary-heap queue from pqueue.
//   - Each vertex is settled at most once: up to V authoritative pops.
//   - Each relaxation may push a fresh entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor slices.
//   - O(E) worst case of stale entries in the queue under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects negative weights (ErrNegativeWeight)
//     before any work happens. Dijkstra's greedy invariant silently breaks
//     under negative weights, so misuse fails fast instead of returning a
//     plausible-looking wrong answer.
//   - Stale queue entries are recognized on extraction: an entry whose key
//     is strictly greater than the vertex's recorded distance is discarded.
//   - WithTarget stops the search once the target's distance is final;
//     distances to vertices farther than the target stay +Inf.
//
// Self-loops and parallel edges are harmless: the relaxation check ignores
// any arc that does not strictly improve a distance.
package dijkstra
