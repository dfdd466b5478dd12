// Package core provides a thread-safe, generic in-memory Graph and the shared
// Distance type used by the shortest-path engines.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected), selectable per instantiation
//   - Label-keyed vertices with case normalization (NewLabelGraph)
//   - Index-keyed vertices with an upfront count (NewIndexGraph)
//   - Closed vertex sets (WithStrictVertices): AddEdge never invents vertices
//   - Weight policy (WithNonNegativeWeights): AddEdge rejects w < 0
//   - Per-vertex outgoing arc lists plus a flat edge list in insertion order
//   - Immutable snapshots (Snapshot) so an engine run never observes later edges
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs store one arc per edge.
//	    Undirected graphs store the arc and its mirror (loops only once).
//
//	– WithStrictVertices()
//	    AddEdge(u,v) with an undeclared endpoint → ErrVertexNotFound.
//
//	– WithNonNegativeWeights()
//	    AddEdge(u,v,w<0) → ErrInvalidWeight.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id K) error                     // O(1)
//	HasVertex(id K) bool                      // O(1)
//	Lookup(id K) (int, bool)                  // O(1), dense index
//
//	// Edge lifecycle
//	AddEdge(from, to K, weight int64) (int, error) // O(1)†
//
//	// Query
//	Vertices() []K                            // O(V), declaration order
//	Edges() []Edge[K]                         // O(E), insertion order
//	Neighbors(id K) ([]Arc, error)            // O(d)
//	Snapshot() *Snapshot[K]                   // O(V+E)
//
// Distance:
//
//	Finite(n) / Unreachable()  – tagged value, zero value is Unreachable.
//	d.Add(w)                   – never adds to Unreachable, reports int64 overflow.
//	d.Less(o)                  – Unreachable sorts after every finite distance.
//
// † amortized constant time: slice appends and map insertion.
package core
