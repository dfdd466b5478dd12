package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/bellmanford"
	"github.com/katalvlaran/pathfinder/core"
)

// ExampleBellmanFord shows shortest paths through a negative arc.
func ExampleBellmanFord() {
	g, _ := core.NewIndexGraph(4, core.WithDirected(true))
	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(2, 1, -2)

	res, _ := bellmanford.BellmanFord(g, 0)
	for v := 0; v < 4; v++ {
		fmt.Println(v, res.Distances[v])
	}
	fmt.Println("negative cycle:", res.NegativeCycle)
	// Output:
	// 0 0
	// 1 -1
	// 2 1
	// 3 unreachable
	// negative cycle: false
}

// ExampleResult_Err shows how a detected negative cycle becomes an error.
func ExampleResult_Err() {
	g, _ := core.NewIndexGraph(2, core.WithDirected(true))
	_, _ = g.AddEdge(0, 1, -1)
	_, _ = g.AddEdge(1, 0, -1)

	res, _ := bellmanford.BellmanFord(g, 0)
	fmt.Println(res.NegativeCycle)
	fmt.Println(res.Err())
	// Output:
	// true
	// bellmanford: negative weight cycle reachable from source
}
