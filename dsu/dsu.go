package dsu

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates that New was asked for a negative element count.
var ErrNegativeSize = errors.New("dsu: size must be non-negative")

// ErrInvalidElement indicates an operation referenced an element outside [0, n).
var ErrInvalidElement = errors.New("dsu: element out of range")

// DisjointSet is a union-find forest over the elements [0, n).
// Each element starts in its own singleton set.
type DisjointSet struct {
	parent []int // parent[i] is i's parent; roots satisfy parent[i] == i
	rank   []int // rank[i] bounds the height of the tree rooted at i
	count  int   // number of disjoint sets remaining
}

// New creates a forest of n singleton sets.
// Returns ErrNegativeSize if n < 0.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &DisjointSet{
		parent: parent,
		rank:   make([]int, n),
		count:  n,
	}, nil
}

// Size returns the total number of elements in the forest.
// Complexity: O(1).
func (d *DisjointSet) Size() int { return len(d.parent) }

// Count returns the number of disjoint sets currently in the forest.
// Complexity: O(1).
func (d *DisjointSet) Count() int { return d.count }

// Find returns the root of the set containing x, flattening the walked path
// by pointer halving as it goes.
// Returns ErrInvalidElement if x is outside [0, n).
// Complexity: amortized near-O(1).
func (d *DisjointSet) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrInvalidElement, x, len(d.parent))
	}
	// Iterative path halving: every node on the walk is re-pointed to its
	// grandparent, halving the path length each pass.
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x, nil
}

// Union merges the sets containing x and y. It reports whether a merge
// happened (false means the elements were already in the same set).
// Returns ErrInvalidElement if either element is outside [0, n).
// Complexity: amortized near-O(1).
func (d *DisjointSet) Union(x, y int) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rootX == rootY {
		return false, nil
	}

	// Union by rank: attach the shallower tree under the deeper root.
	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	d.count--

	return true, nil
}

// SameSet reports whether x and y currently belong to the same set.
// Returns ErrInvalidElement if either element is outside [0, n).
// Complexity: amortized near-O(1).
func (d *DisjointSet) SameSet(x, y int) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rootX == rootY, nil
}
