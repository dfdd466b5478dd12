// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Immutable snapshots consumed by the shortest-path engines.
// Determinism:
//   - Vertex indices, adjacency order and arc order are copied verbatim.
// Concurrency:
//   - Snapshot() holds the read lock only while copying; the result shares no
//     mutable state with the Graph and is safe for concurrent readers.

package core

// Snapshot is a frozen copy of a Graph taken at one point in time.
// Edges added to the Graph afterwards are not visible through it.
type Snapshot[K comparable] struct {
	normalize func(K) K
	directed  bool
	index     map[K]int
	ids       []K
	adj       [][]Arc
	arcs      []Arc // every arc in edge insertion order
}

// Snapshot copies the current vertex set and adjacency of g.
//
// Complexity: O(V + E) time and space.
func (g *Graph[K]) Snapshot() *Snapshot[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot[K]{
		normalize: g.normalize,
		directed:  g.directed,
		index:     make(map[K]int, len(g.index)),
		ids:       make([]K, len(g.ids)),
		adj:       make([][]Arc, len(g.adj)),
		arcs:      make([]Arc, 0, g.arcs),
	}
	for k, i := range g.index {
		s.index[k] = i
	}
	copy(s.ids, g.ids)
	for i, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		s.adj[i] = make([]Arc, len(list))
		copy(s.adj[i], list)
	}
	// Flat arc list follows edge insertion order so relaxation rounds are reproducible.
	for _, e := range g.edges {
		ui, vi := g.index[e.From], g.index[e.To]
		s.arcs = append(s.arcs, Arc{From: ui, To: vi, Weight: e.Weight, Edge: e.ID})
		if !e.Directed && ui != vi {
			s.arcs = append(s.arcs, Arc{From: vi, To: ui, Weight: e.Weight, Edge: e.ID})
		}
	}

	return s
}

// Directed reports whether the snapshotted graph was directed.
func (s *Snapshot[K]) Directed() bool { return s.directed }

// Len returns the number of vertices.
func (s *Snapshot[K]) Len() int { return len(s.ids) }

// Lookup returns the dense index of id after normalization.
func (s *Snapshot[K]) Lookup(id K) (int, bool) {
	i, ok := s.index[s.normalize(id)]

	return i, ok
}

// Vertex returns the identifier stored at dense index i.
// It panics if i is out of range.
func (s *Snapshot[K]) Vertex(i int) K { return s.ids[i] }

// Arcs returns the outgoing arcs of the vertex at dense index i.
// The returned slice must not be modified.
func (s *Snapshot[K]) Arcs(i int) []Arc { return s.adj[i] }

// AllArcs returns every arc in edge insertion order. Undirected edges
// contribute their forward arc followed by the reverse arc.
// The returned slice must not be modified.
func (s *Snapshot[K]) AllArcs() []Arc { return s.arcs }

// Distances assembles the total vertex → Distance mapping from a slice
// indexed by dense vertex index.
func (s *Snapshot[K]) Distances(dist []Distance) Distances[K] {
	out := make(Distances[K], len(s.ids))
	for i, k := range s.ids {
		out[k] = dist[i]
	}

	return out
}
