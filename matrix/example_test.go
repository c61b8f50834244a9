package matrix_test

import (
	"fmt"

	"github.com/olekrav/wayfind/core"
	"github.com/olekrav/wayfind/matrix"
)

// ExampleAllPairs closes a small directed graph and prints the distance
// row of vertex 0.
func ExampleAllPairs() {
	g, err := core.NewGraph(4, core.WithDirected(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, 3)
	g.AddEdge(0, 2, 10)
	g.AddEdge(2, 3, 1)

	d, err := matrix.AllPairs(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	row, _ := d.Row(0)
	fmt.Println("from 0:", row)
	// Output:
	// from 0: [0 5 8 9]
}
