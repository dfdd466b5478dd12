package loader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/bellmanford"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/loader"
)

const gpsMap = `# locations and roads
4 4
0 1 4
0 2 1
2 1 -2
1 3 3
0
`

func TestLoadIndexed(t *testing.T) {
	in, err := loader.LoadIndexed(strings.NewReader(gpsMap))
	require.NoError(t, err)

	assert.True(t, in.Graph.Directed())
	assert.Equal(t, 4, in.Graph.VertexCount())
	assert.Equal(t, 4, in.Graph.EdgeCount())
	assert.True(t, in.HasSource)
	assert.Equal(t, 0, in.Source)

	res, err := bellmanford.BellmanFord(in.Graph, in.Source)
	require.NoError(t, err)
	assert.Equal(t, core.Finite(-1), res.Distances[1])
	assert.Equal(t, core.Finite(2), res.Distances[3])
}

func TestLoadIndexed_NoSource(t *testing.T) {
	in, err := loader.LoadIndexed(strings.NewReader("3 1\n0 1 5\n"))
	require.NoError(t, err)
	assert.False(t, in.HasSource)
	assert.Equal(t, 3, in.Graph.VertexCount(), "declared vertices exist without edges")
}

func TestLoadIndexed_Undirected(t *testing.T) {
	in, err := loader.LoadIndexed(strings.NewReader("2 1\n0 1 5\n"), core.WithDirected(false))
	require.NoError(t, err)
	assert.False(t, in.Graph.Directed())
}

func TestLoadIndexed_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
		msg   string
	}{
		{"empty", "", loader.ErrSyntax, "line 0: unexpected end of input"},
		{"zero vertices", "0 0\n", loader.ErrSyntax, "line 1: number of vertices must be positive"},
		{"negative edges", "3 -1\n", loader.ErrSyntax, "line 1: number of edges"},
		{"not a number", "3 x\n", loader.ErrSyntax, `got "x"`},
		{"short input", "3 2\n0 1 5\n", loader.ErrSyntax, "line 2: unexpected end of input, want edge 2 start"},
		{"bad weight", "3 1\n0 1 five\n", loader.ErrSyntax, "line 2: edge 1 weight"},
		{"out of range", "3 2\n0 1 5\n1 9 2\n", core.ErrVertexNotFound, "line 3: vertex indices must be between 0 and 2"},
		{"negative index", "3 1\n-1 0 2\n", core.ErrVertexNotFound, "line 2"},
		{"bad source", "2 1\n0 1 1\nzero\n", loader.ErrSyntax, "line 3: source must be an integer"},
		{"trailing", "2 1\n0 1 1\n0 1\n", loader.ErrSyntax, "line 3: unexpected trailing token"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := loader.LoadIndexed(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Nil(t, in)
			assert.ErrorIs(t, err, tc.is)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

const socialNetwork = `5 4
Alice Bob 1
bob Carol 3
CAROL Eve 2
Alice Eve 7
alice
`

func TestLoadLabeled(t *testing.T) {
	in, err := loader.LoadLabeled(strings.NewReader(socialNetwork))
	require.NoError(t, err)

	assert.False(t, in.Graph.Directed())
	assert.Equal(t, []string{"alice", "bob", "carol", "eve"}, in.Graph.Vertices())
	assert.Equal(t, "alice", in.Source)

	dist, err := dijkstra.Dijkstra(in.Graph, in.Source)
	require.NoError(t, err)
	assert.Equal(t, core.Finite(6), dist["eve"])

	back, err := dijkstra.Dijkstra(in.Graph, "Eve")
	require.NoError(t, err)
	assert.Equal(t, core.Finite(6), back["alice"], "edges run both ways")
}

func TestLoadLabeled_SourceOptional(t *testing.T) {
	in, err := loader.LoadLabeled(strings.NewReader("2 1\nA B 4\n"))
	require.NoError(t, err)
	assert.False(t, in.HasSource)
	assert.Empty(t, in.Source)
}

func TestLoadLabeled_HashInsideLabel(t *testing.T) {
	in, err := loader.LoadLabeled(strings.NewReader("2 1 # header\nnode#1 C# 4 #trailing\nNODE#1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"node#1", "c#"}, in.Graph.Vertices())
	assert.Equal(t, "node#1", in.Source)

	// A comment token drops the rest of its line, including the weight here.
	_, err = loader.LoadLabeled(strings.NewReader("2 1\nA B #4\n"))
	assert.ErrorIs(t, err, loader.ErrSyntax)
}

func TestLoadLabeled_NonNegativeOption(t *testing.T) {
	_, err := loader.LoadLabeled(strings.NewReader("2 2\nA B 4\nB C -1\n"), core.WithNonNegativeWeights())
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadLabeled_Errors(t *testing.T) {
	_, err := loader.LoadLabeled(strings.NewReader("2 2\nA B 4\nB\n"))
	assert.ErrorIs(t, err, loader.ErrSyntax)
	assert.Contains(t, err.Error(), "line 3: unexpected end of input, want edge 2 end")

	_, err = loader.LoadLabeled(strings.NewReader("2 1\nA B 4\nalice bob\n"))
	assert.ErrorIs(t, err, loader.ErrSyntax)
	assert.Contains(t, err.Error(), `unexpected trailing token "bob"`)
}

const cityMap = `4
Dhaka
Khulna
Sylhet
Rajshahi
3
Dhaka Khulna 270
Dhaka Sylhet 240
Khulna Rajshahi 310
dhaka
`

func TestLoadCities(t *testing.T) {
	in, err := loader.LoadCities(strings.NewReader(cityMap))
	require.NoError(t, err)

	assert.True(t, in.Graph.Directed())
	assert.True(t, in.Graph.Strict())
	assert.Equal(t, 4, in.Graph.VertexCount())
	assert.Equal(t, "dhaka", in.Source)

	dist, err := dijkstra.Dijkstra(in.Graph, in.Source)
	require.NoError(t, err)
	assert.Equal(t, core.Finite(580), dist["rajshahi"])
}

func TestLoadCities_Errors(t *testing.T) {
	_, err := loader.LoadCities(strings.NewReader("2\nA\nB\n1\nA C 5\nA\n"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "line 5")

	_, err = loader.LoadCities(strings.NewReader("1\nA\n0\n"))
	assert.ErrorIs(t, err, loader.ErrSyntax)
	assert.Contains(t, err.Error(), "want start city")
}

func TestParseForm(t *testing.T) {
	f, err := loader.ParseForm(" Cities ")
	require.NoError(t, err)
	assert.Equal(t, loader.FormCities, f)

	_, err = loader.ParseForm("csv")
	assert.ErrorIs(t, err, loader.ErrUnknownForm)
}
