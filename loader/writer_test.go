package loader_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/loader"
)

func TestWriteIndexed_RoundTrip(t *testing.T) {
	in, err := loader.LoadIndexed(bytes.NewBufferString(gpsMap))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.WriteIndexed(&buf, in))
	assert.Equal(t, "4 4\n0 1 4\n0 2 1\n2 1 -2\n1 3 3\n0\n", buf.String())

	back, err := loader.LoadIndexed(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Graph.Edges(), back.Graph.Edges())
	assert.Equal(t, in.Source, back.Source)
}

func TestWriteIndexed_UndirectedBecomesTwoArcs(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5), builder.WithUniformWeight(1, 9)},
		builder.Grid(3, 3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.WriteIndexed(&buf, &loader.Input[int]{Graph: g}))

	back, err := loader.LoadIndexed(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2*g.EdgeCount(), back.Graph.EdgeCount())
	assert.False(t, back.HasSource)

	for src := 0; src < g.VertexCount(); src++ {
		want, err := dijkstra.Dijkstra(g, src)
		require.NoError(t, err)
		got, err := dijkstra.Dijkstra(back.Graph, src)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "source %d", src)
	}
}

func TestWriteIndexed_NotIndexed(t *testing.T) {
	g := core.NewGraph[int](nil)
	require.NoError(t, g.AddVertex(3))

	err := loader.WriteIndexed(&bytes.Buffer{}, &loader.Input[int]{Graph: g})
	assert.ErrorIs(t, err, loader.ErrNotIndexed)
}

func TestWriteIndexed_EmptyGraph(t *testing.T) {
	g, err := core.NewIndexGraph(0)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = loader.WriteIndexed(&buf, &loader.Input[int]{Graph: g})
	assert.ErrorIs(t, err, loader.ErrEmptyGraph)
	assert.Zero(t, buf.Len())

	// The form has no way to say "no vertices".
	_, err = loader.LoadIndexed(bytes.NewBufferString("0 0\n"))
	assert.ErrorIs(t, err, loader.ErrSyntax)
}
