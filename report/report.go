// Package report orders engine results and renders them for people and machines.
//
// Ordering contract: entries are sorted by ascending distance, unreachable
// vertices last, ties broken by vertex identifier so output is deterministic.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/pathfinder/core"
)

// Entry pairs a vertex with its distance from the source.
type Entry[K comparable] struct {
	Vertex   K
	Distance core.Distance
}

// Sorted returns the entries of dist ordered by ascending distance, unreachable last.
func Sorted[K cmp.Ordered](dist core.Distances[K]) []Entry[K] {
	out := make([]Entry[K], 0, len(dist))
	for v, d := range dist {
		out = append(out, Entry[K]{Vertex: v, Distance: d})
	}
	slices.SortFunc(out, func(a, b Entry[K]) int {
		if c := a.Distance.Compare(b.Distance); c != 0 {
			return c
		}

		return cmp.Compare(a.Vertex, b.Vertex)
	})

	return out
}

// Reachable filters entries down to finite distances, preserving order.
func Reachable[K comparable](entries []Entry[K]) []Entry[K] {
	out := make([]Entry[K], 0, len(entries))
	for _, e := range entries {
		if e.Distance.Reachable() {
			out = append(out, e)
		}
	}

	return out
}

// Row is one rendered line of a Report.
type Row struct {
	Vertex   string `json:"vertex" yaml:"vertex"`
	Distance *int64 `json:"distance" yaml:"distance"` // nil when unreachable
}

// Reachable reports whether the row holds a finite distance.
func (r Row) Reachable() bool { return r.Distance != nil }

// Report is the rendering-ready outcome of one engine run.
type Report struct {
	Algorithm     string
	Source        string
	Directed      bool
	NegativeCycle bool
	Elapsed       time.Duration
	Rows          []Row
}

// New builds a Report from a distance mapping, ordering rows by Sorted.
// NegativeCycle and Elapsed are left for the caller to fill in.
func New[K cmp.Ordered](algorithm string, source K, directed bool, dist core.Distances[K]) *Report {
	entries := Sorted(dist)
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i].Vertex = fmt.Sprint(e.Vertex)
		if v, ok := e.Distance.Value(); ok {
			rows[i].Distance = &v
		}
	}

	return &Report{
		Algorithm: algorithm,
		Source:    fmt.Sprint(source),
		Directed:  directed,
		Rows:      rows,
	}
}

// Unreachable returns the number of rows without a finite distance.
func (r *Report) Unreachable() int {
	n := 0
	for _, row := range r.Rows {
		if !row.Reachable() {
			n++
		}
	}

	return n
}

// ReachableOnly drops rows without a finite distance.
func (r *Report) ReachableOnly() {
	kept := r.Rows[:0]
	for _, row := range r.Rows {
		if row.Reachable() {
			kept = append(kept, row)
		}
	}
	r.Rows = kept
}
