// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: identifier-mode constructors and read-only getters.
// Policy:
//   - No algorithms here.
//   - Configuration flags are immutable after construction, so getters take no lock.

package core

import "strings"

// NormalizeLabel returns the canonical form of a textual vertex label:
// surrounding whitespace removed, lower-cased.
//
// Notes:
//   - Two labels that differ only in case denote the same vertex.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// NewLabelGraph creates a Graph keyed by case-insensitive string labels.
//
// Implementation:
//   - Stage 1: Delegate to NewGraph with NormalizeLabel as the identifier normalizer.
//
// Behavior highlights:
//   - Vertices are created implicitly by AddEdge unless WithStrictVertices() is given.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func NewLabelGraph(opts ...GraphOption) *Graph[string] {
	return NewGraph(NormalizeLabel, opts...)
}

// NewIndexGraph creates a Graph over the dense integer vertices 0..n-1.
//
// Implementation:
//   - Stage 1: Reject n < 0 with ErrBadVertexCount.
//   - Stage 2: Build a strict Graph (identity normalizer) and declare every vertex.
//
// Behavior highlights:
//   - AddEdge with an index outside [0, n) returns ErrVertexNotFound.
//   - Caller options are applied after strictness, so directedness stays selectable.
//
// Errors:
//   - ErrBadVertexCount when n < 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewIndexGraph(n int, opts ...GraphOption) (*Graph[int], error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	all := make([]GraphOption, 0, len(opts)+2)
	all = append(all, WithStrictVertices(), WithCapacity(n))
	all = append(all, opts...)
	g := NewGraph[int](nil, all...)
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Directed reports whether edges of this Graph are one-way.
func (g *Graph[K]) Directed() bool { return g.directed }

// Strict reports whether AddEdge requires pre-declared endpoints.
func (g *Graph[K]) Strict() bool { return g.strict }

// NonNegative reports whether AddEdge rejects negative weights.
func (g *Graph[K]) NonNegative() bool { return g.nonNegative }

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed       bool
	Strict         bool
	NonNegative    bool
	VertexCount    int
	EdgeCount      int
	ArcCount       int
	NegativeWeight int // number of edges with Weight < 0
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph[K]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Directed:    g.directed,
		Strict:      g.strict,
		NonNegative: g.nonNegative,
		VertexCount: len(g.ids),
		EdgeCount:   len(g.edges),
		ArcCount:    g.arcs,
	}
	for i := range g.edges {
		if g.edges[i].Weight < 0 {
			st.NegativeWeight++
		}
	}

	return st
}
