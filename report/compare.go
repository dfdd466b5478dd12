package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/core"
)

// Mismatch records a vertex on which two results disagree.
type Mismatch struct {
	Vertex string `json:"vertex" yaml:"vertex"`
	Left   string `json:"left" yaml:"left"`
	Right  string `json:"right" yaml:"right"`
}

// Comparison is the outcome of running two engines from the same source.
type Comparison struct {
	Left, Right  string // algorithm names
	Source       string
	Vertices     int
	LeftElapsed  time.Duration
	RightElapsed time.Duration
	Mismatches   []Mismatch
}

// Agree reports whether both results hold the same distance for every vertex.
func (c *Comparison) Agree() bool { return len(c.Mismatches) == 0 }

// Compare checks two distance mappings vertex by vertex. Mismatches follow
// the order of Sorted(left); vertices missing on one side are reported too.
func Compare[K cmp.Ordered](source K, leftName string, left core.Distances[K], rightName string, right core.Distances[K]) *Comparison {
	c := &Comparison{Left: leftName, Right: rightName, Source: fmt.Sprint(source), Vertices: len(left)}
	for _, e := range Sorted(left) {
		rd, ok := right[e.Vertex]
		switch {
		case !ok:
			c.Mismatches = append(c.Mismatches, Mismatch{fmt.Sprint(e.Vertex), e.Distance.String(), "missing"})
		case rd != e.Distance:
			c.Mismatches = append(c.Mismatches, Mismatch{fmt.Sprint(e.Vertex), e.Distance.String(), rd.String()})
		}
	}
	for _, e := range Sorted(right) {
		if _, ok := left[e.Vertex]; !ok {
			c.Mismatches = append(c.Mismatches, Mismatch{fmt.Sprint(e.Vertex), "missing", e.Distance.String()})
		}
	}

	return c
}

type comparisonDocument struct {
	Left           string     `json:"left" yaml:"left"`
	Right          string     `json:"right" yaml:"right"`
	Source         string     `json:"source" yaml:"source"`
	Vertices       int        `json:"vertices" yaml:"vertices"`
	Agree          bool       `json:"agree" yaml:"agree"`
	LeftElapsedUs  int64      `json:"left_elapsed_us" yaml:"left_elapsed_us"`
	RightElapsedUs int64      `json:"right_elapsed_us" yaml:"right_elapsed_us"`
	Mismatches     []Mismatch `json:"mismatches" yaml:"mismatches"`
}

// RenderComparison writes c to w. FormatTable renders like FormatText.
func RenderComparison(w io.Writer, c *Comparison, f Format) error {
	doc := comparisonDocument{
		Left:           c.Left,
		Right:          c.Right,
		Source:         c.Source,
		Vertices:       c.Vertices,
		Agree:          c.Agree(),
		LeftElapsedUs:  c.LeftElapsed.Microseconds(),
		RightElapsedUs: c.RightElapsed.Microseconds(),
		Mismatches:     c.Mismatches,
	}
	if doc.Mismatches == nil {
		doc.Mismatches = []Mismatch{}
	}

	switch f {
	case FormatText, FormatTable, "":
		var b strings.Builder
		if c.Agree() {
			fmt.Fprintf(&b, "%s and %s agree on all %d vertices from %s\n", c.Left, c.Right, c.Vertices, c.Source)
		} else {
			fmt.Fprintf(&b, "%s and %s disagree on %d of %d vertices from %s\n",
				c.Left, c.Right, len(c.Mismatches), c.Vertices, c.Source)
			for _, m := range c.Mismatches {
				fmt.Fprintf(&b, "  %s: %s=%s %s=%s\n", m.Vertex, c.Left, m.Left, c.Right, m.Right)
			}
		}
		_, err := io.WriteString(w, b.String())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
