package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Errors returned by WriteIndexed.
var (
	// ErrNotIndexed marks graphs whose vertices are not 0..V-1 in order.
	ErrNotIndexed = errors.New("loader: graph vertices are not 0..V-1")

	// ErrEmptyGraph marks graphs without vertices, which the indexed form cannot express.
	ErrEmptyGraph = errors.New("loader: graph has no vertices")
)

// WriteIndexed writes in in the indexed form so LoadIndexed reads it back.
// Undirected edges are written as two arcs, since the form is directed by default.
// The source line is written only when in.HasSource is set. A graph without
// vertices fails with ErrEmptyGraph, since LoadIndexed requires V > 0.
func WriteIndexed(w io.Writer, in *Input[int]) error {
	g := in.Graph
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	for i, v := range g.Vertices() {
		if v != i {
			return errors.Wrapf(ErrNotIndexed, "vertex %d at position %d", v, i)
		}
	}

	edges := g.Edges()
	arcs := 0
	for _, e := range edges {
		arcs++
		if !e.Directed && e.From != e.To {
			arcs++
		}
	}

	// bufio.Writer keeps the first error; Flush reports it.
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), arcs)
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
		if !e.Directed && e.From != e.To {
			fmt.Fprintf(bw, "%d %d %d\n", e.To, e.From, e.Weight)
		}
	}
	if in.HasSource {
		fmt.Fprintf(bw, "%d\n", in.Source)
	}

	return errors.Wrap(bw.Flush(), "loader: write indexed graph")
}
