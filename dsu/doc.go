// Package dsu implements a disjoint-set forest (union-find) over the dense
// vertex range [0, n).
//
// The forest tracks a partition of n elements into disjoint sets. Two
// elements belong to the same set iff Find returns the same root for both.
// mst.Kruskal uses it to accept exactly the edges that join two different
// components; it is equally usable on its own for connectivity queries.
//
// Implementation notes:
//
//   - parent and rank live in flat slices, not maps, matching the dense
//     integer vertex model.
//   - Find compresses paths iteratively (pointer halving), so pathological
//     chains cannot overflow the stack.
//   - Union attaches the lower-rank root beneath the higher-rank root and
//     bumps the rank only on ties.
//
// With both optimizations every operation runs in amortized near-O(1)
// (inverse-Ackermann) time.
package dsu
