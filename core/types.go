// Package core defines the central Graph, Edge, Arc and Distance types,
// and provides thread-safe primitives for building graphs and taking
// immutable snapshots for the shortest-path engines.
//
// A Graph is generic over its vertex identifier K. Two identifier modes are
// provided out of the box:
//
//	NewLabelGraph  – K = string, labels are normalized (trimmed, lower-cased),
//	                 so "Alice" and "alice" denote the same vertex.
//	NewIndexGraph  – K = int, vertices 0..n-1 are declared upfront.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex label normalizes to the empty string.
//	ErrVertexNotFound  - referenced vertex is absent from the declared vertex set.
//	ErrInvalidWeight   - negative weight added to a graph that forbids it.
//	ErrBadVertexCount  - negative upfront vertex count.
//	ErrDistanceOverflow - relaxation would overflow int64.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex identifier normalized to the zero value.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidWeight indicates a negative weight where only non-negative weights are allowed.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrBadVertexCount indicates a negative upfront vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrDistanceOverflow indicates that dist[u] + weight does not fit into int64.
	ErrDistanceOverflow = errors.New("core: distance overflows int64")
)

// Edge is one edge as it was added to the Graph.
//
// ID is the zero-based insertion ordinal. For undirected edges a single Edge
// is stored; its two traversal directions are expanded into Arcs.
type Edge[K comparable] struct {
	// ID is the insertion ordinal of this edge.
	ID int

	// From is the (normalized) source vertex.
	From K

	// To is the (normalized) destination vertex.
	To K

	// Weight is the signed cost of traversing the edge.
	Weight int64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// Arc is a single traversable direction of an Edge, expressed in dense
// vertex indices. Undirected edges yield two arcs (loops yield one).
type Arc struct {
	From   int   // index of the tail vertex
	To     int   // index of the head vertex
	Weight int64 // traversal cost
	Edge   int   // Edge.ID this arc was expanded from
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	directed    bool
	strict      bool
	nonNegative bool
	capacity    int
}

// WithDirected sets directedness for all edges of the Graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithStrictVertices makes AddEdge reject endpoints that were not declared
// beforehand with AddVertex (ErrVertexNotFound). Index graphs are always strict.
func WithStrictVertices() GraphOption {
	return func(c *graphConfig) { c.strict = true }
}

// WithNonNegativeWeights makes AddEdge reject negative weights with ErrInvalidWeight.
func WithNonNegativeWeights() GraphOption {
	return func(c *graphConfig) { c.nonNegative = true }
}

// WithCapacity pre-sizes internal vertex storage.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is a weighted graph over vertex identifiers of type K.
//
// Vertices are kept in declaration order and addressed internally by a dense
// index. Outgoing arcs are owned per vertex; edges are also kept as a flat
// list in insertion order. mu guards every field below it.
type Graph[K comparable] struct {
	normalize func(K) K

	// Configuration flags, immutable after construction
	directed    bool
	strict      bool
	nonNegative bool

	mu    sync.RWMutex
	index map[K]int // vertex → dense index
	ids   []K       // dense index → vertex
	adj   [][]Arc   // dense index → outgoing arcs
	edges []Edge[K] // insertion order
	arcs  int       // total number of arcs
}

// NewGraph creates an empty Graph whose identifiers are passed through
// normalize before storage and lookup. A nil normalize means identity.
// By default the Graph is undirected, non-strict and accepts any weight.
// Complexity: O(1)
func NewGraph[K comparable](normalize func(K) K, opts ...GraphOption) *Graph[K] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if normalize == nil {
		normalize = func(k K) K { return k }
	}

	return &Graph[K]{
		normalize:   normalize,
		directed:    cfg.directed,
		strict:      cfg.strict,
		nonNegative: cfg.nonNegative,
		index:       make(map[K]int, cfg.capacity),
		ids:         make([]K, 0, cfg.capacity),
		adj:         make([][]Arc, 0, cfg.capacity),
	}
}

// RelaxFunc observes a successful relaxation of the vertex at the given dense
// index (see Graph.Vertices for the index order): its tentative distance moved
// from prev to next.
type RelaxFunc func(vertex int, prev, next Distance)
