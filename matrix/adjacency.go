package matrix

import (
	"errors"
	"math"

	"github.com/olekrav/wayfind/core"
)

// ErrNilGraph indicates a nil *core.Graph was supplied to NewAdjacency.
var ErrNilGraph = errors.New("matrix: graph is nil")

// NewAdjacency builds the dense distance view of g:
//
//   - diagonal 0 (a vertex reaches itself for free),
//   - +Inf off-diagonal where no direct edge exists,
//   - the minimum edge weight where one or more direct edges exist
//     (parallel edges collapse to the cheapest, the only candidate a
//     shortest path could ever take).
//
// Undirected edges populate both orientations. A self-loop only lowers the
// diagonal when its weight is negative — a non-negative self-loop can never
// beat the implicit zero-cost stay.
//
// Returns ErrNilGraph when g is nil.
// Complexity: O(V² + E) time, O(V²) space.
func NewAdjacency(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	// Off-diagonal starts at +Inf; the zero diagonal is already in place.
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				d.data[i*n+j] = inf
			}
		}
	}

	// Overlay direct edges, keeping the minimum per ordered pair.
	for _, e := range g.Edges() {
		if w := e.Weight; w < d.data[e.From*n+e.To] {
			d.data[e.From*n+e.To] = w
		}
		if !g.Directed() {
			if w := e.Weight; w < d.data[e.To*n+e.From] {
				d.data[e.To*n+e.From] = w
			}
		}
	}

	return d, nil
}
