package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// ExampleBuildGraph builds a 3×3 grid and measures the corner-to-corner distance.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Grid(3, 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	dist, _ := dijkstra.Dijkstra(g, 0)
	fmt.Println(g.VertexCount(), g.EdgeCount(), dist[8])
	// Output:
	// 9 12 8
}

// ExampleCycle shows a directed cycle where the way back is long.
func ExampleCycle() {
	g, _ := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(4))
	dist, _ := dijkstra.Dijkstra(g, 1)
	fmt.Println(dist[0])
	// Output:
	// 3
}
