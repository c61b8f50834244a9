package matrix

import (
	"math"

	"github.com/olekrav/wayfind/core"
)

// FloydWarshall computes the all-pairs shortest-path closure of d in place.
//
// Contract:
//   - d holds direct distances: 0 on the diagonal (unless a negative
//     self-loop lowered it), +Inf where no direct edge exists. NewAdjacency
//     produces exactly this shape.
//   - The loop order is fixed k → i → j: all paths through intermediates
//     below k are final before k is considered. Reordering the loops
//     breaks correctness, not just determinism.
//
// After the call, d[i][j] is the shortest i→j distance (+Inf if j is
// unreachable from i). A negative diagonal entry marks a negative cycle
// through that vertex; use NegativeCycleVertices to collect them.
//
// Returns ErrNilMatrix when d is nil.
// Complexity: O(V³) time, O(1) extra space. No early termination.
func FloydWarshall(d *Dense) error {
	if d == nil {
		return ErrNilMatrix
	}

	n := d.n
	data := d.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				// i cannot reach k: no path via k can improve any i→j.
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// NegativeCycleVertices returns, in ascending order, every vertex whose
// closed diagonal entry is negative — the vertices lying on some
// negative-weight cycle. Call it after FloydWarshall; on a freshly built
// adjacency view only negative self-loops can appear.
// Complexity: O(V).
func NegativeCycleVertices(d *Dense) []int {
	if d == nil {
		return nil
	}
	var out []int
	for i := 0; i < d.n; i++ {
		if d.data[i*d.n+i] < 0 {
			out = append(out, i)
		}
	}

	return out
}

// AllPairs is the one-call convenience: build the adjacency view of g and
// run the Floyd-Warshall closure on it.
// Complexity: O(V³) time, O(V²) space.
func AllPairs(g *core.Graph) (*Dense, error) {
	d, err := NewAdjacency(g)
	if err != nil {
		return nil, err
	}
	if err := FloydWarshall(d); err != nil {
		return nil, err
	}

	return d, nil
}
