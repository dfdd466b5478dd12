package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

func benchGraph(b *testing.B, gopts []core.GraphOption, cons builder.Constructor) *core.Graph[int] {
	b.Helper()
	g, err := builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 5)}, cons)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkDijkstra_Grid100x100(b *testing.B) {
	g := benchGraph(b, nil, builder.Grid(100, 100))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDijkstra_RandomSparse2000(b *testing.B) {
	g := benchGraph(b, []core.GraphOption{core.WithDirected(true)}, builder.RandomSparse(2000, 0.005))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
