package dijkstra_test

import (
	"fmt"

	"github.com/olekrav/wayfind/core"
	"github.com/olekrav/wayfind/dijkstra"
)

// ExampleRun computes shortest distances over a small directed road network
// and reconstructs the cheapest route to the last city.
func ExampleRun() {
	g, err := core.NewGraph(5, core.WithDirected(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 2, 2)
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 5)
	g.AddEdge(2, 3, 8)
	g.AddEdge(2, 4, 10)
	g.AddEdge(3, 4, 2)

	res, err := dijkstra.Run(g, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dist:", res.Dist)
	path, _ := res.PathTo(4)
	fmt.Println("path to 4:", path)
	// Output:
	// dist: [0 4 2 9 11]
	// path to 4: [0 1 3 4]
}
