package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathfinder/core"
)

// ErrSyntax marks malformed input. Messages carry the offending line number.
var ErrSyntax = errors.New("loader: malformed input")

// ErrUnknownForm is returned by ParseForm for an unsupported form name.
var ErrUnknownForm = errors.New("loader: unknown input form")

// maxCount bounds declared vertex and edge counts.
const maxCount = 1 << 20

// Form names one of the supported input layouts.
type Form string

const (
	// FormIndexed is "V E" followed by "u v w" lines over vertices 0..V-1.
	FormIndexed Form = "indexed"
	// FormLabeled is "n m" followed by "a b w" lines over free-form labels.
	FormLabeled Form = "labeled"
	// FormCities declares city names upfront, then roads, then the start city.
	FormCities Form = "cities"
)

// ParseForm resolves a case-insensitive form name.
func ParseForm(s string) (Form, error) {
	switch f := Form(strings.ToLower(strings.TrimSpace(s))); f {
	case FormIndexed, FormLabeled, FormCities:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnknownForm, "%q", s)
	}
}

// Input is a parsed graph plus the source vertex named in the input, if any.
type Input[K comparable] struct {
	Graph     *core.Graph[K]
	Source    K
	HasSource bool
}

// LoadIndexed parses the indexed form into a directed graph with vertices 0..V-1.
// V must be positive. A trailing integer, if present, is taken as the source.
func LoadIndexed(r io.Reader, opts ...core.GraphOption) (*Input[int], error) {
	s := newTokenScanner(r)

	v, line, err := s.count("number of vertices")
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return nil, errors.Wrapf(ErrSyntax, "line %d: number of vertices must be positive", line)
	}
	e, _, err := s.count("number of edges")
	if err != nil {
		return nil, err
	}

	g, err := core.NewIndexGraph(v, append([]core.GraphOption{core.WithDirected(true)}, opts...)...)
	if err != nil {
		return nil, errors.Wrap(err, "loader: build graph")
	}
	for i := 0; i < e; i++ {
		u, line, err := s.integer(fmt.Sprintf("edge %d start", i+1))
		if err != nil {
			return nil, err
		}
		to, _, err := s.integer(fmt.Sprintf("edge %d end", i+1))
		if err != nil {
			return nil, err
		}
		w, _, err := s.integer(fmt.Sprintf("edge %d weight", i+1))
		if err != nil {
			return nil, err
		}
		if !inRange(u, v) || !inRange(to, v) {
			return nil, errors.Wrapf(core.ErrVertexNotFound,
				"line %d: vertex indices must be between 0 and %d, got %d %d", line, v-1, u, to)
		}
		if _, err = g.AddEdge(int(u), int(to), w); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}

	in := &Input[int]{Graph: g}
	tok, line, ok, err := s.optional()
	if err != nil {
		return nil, err
	}
	if ok {
		src, perr := strconv.Atoi(tok)
		if perr != nil {
			return nil, errors.Wrapf(ErrSyntax, "line %d: source must be an integer, got %q", line, tok)
		}
		in.Source, in.HasSource = src, true
	}

	if err = s.end(); err != nil {
		return nil, err
	}

	return in, nil
}

// LoadLabeled parses the labeled form into an undirected label graph.
// The vertex count is a capacity hint; vertices appear as edges name them.
// A trailing label, if present, is taken as the source.
func LoadLabeled(r io.Reader, opts ...core.GraphOption) (*Input[string], error) {
	s := newTokenScanner(r)

	n, _, err := s.count("number of vertices")
	if err != nil {
		return nil, err
	}
	m, _, err := s.count("number of edges")
	if err != nil {
		return nil, err
	}

	g := core.NewLabelGraph(append([]core.GraphOption{core.WithDirected(false), core.WithCapacity(n)}, opts...)...)
	if err = readLabeledEdges(s, g, m, "edge"); err != nil {
		return nil, err
	}

	in := &Input[string]{Graph: g}
	tok, _, ok, err := s.optional()
	if err != nil {
		return nil, err
	}
	if ok {
		in.Source, in.HasSource = core.NormalizeLabel(tok), true
	}

	if err = s.end(); err != nil {
		return nil, err
	}

	return in, nil
}

// LoadCities parses the cities form into a strict directed label graph.
// Roads between undeclared cities are rejected and the start city is required.
func LoadCities(r io.Reader, opts ...core.GraphOption) (*Input[string], error) {
	s := newTokenScanner(r)

	n, _, err := s.count("number of cities")
	if err != nil {
		return nil, err
	}
	g := core.NewLabelGraph(append([]core.GraphOption{
		core.WithDirected(true), core.WithStrictVertices(), core.WithCapacity(n),
	}, opts...)...)
	for i := 0; i < n; i++ {
		name, line, err := s.word(fmt.Sprintf("city %d name", i+1))
		if err != nil {
			return nil, err
		}
		if err = g.AddVertex(name); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}

	m, _, err := s.count("number of roads")
	if err != nil {
		return nil, err
	}
	if err = readLabeledEdges(s, g, m, "road"); err != nil {
		return nil, err
	}

	start, _, err := s.word("start city")
	if err != nil {
		return nil, err
	}

	if err = s.end(); err != nil {
		return nil, err
	}

	return &Input[string]{Graph: g, Source: core.NormalizeLabel(start), HasSource: true}, nil
}

// readLabeledEdges reads m "from to weight" triples into g.
func readLabeledEdges(s *tokenScanner, g *core.Graph[string], m int, what string) error {
	for i := 0; i < m; i++ {
		from, line, err := s.word(fmt.Sprintf("%s %d start", what, i+1))
		if err != nil {
			return err
		}
		to, _, err := s.word(fmt.Sprintf("%s %d end", what, i+1))
		if err != nil {
			return err
		}
		w, _, err := s.integer(fmt.Sprintf("%s %d weight", what, i+1))
		if err != nil {
			return err
		}
		if _, err = g.AddEdge(from, to, w); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}

	return nil
}

func inRange(i int64, n int) bool { return i >= 0 && i < int64(n) }
