// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount/Arcs.
// Determinism:
//   - Edges() returns edges in insertion order; Edge.ID is the insertion ordinal.
//   - Arcs(u) returns u's outgoing arcs in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge appends an edge from → to with the given weight and returns its ID.
//
// Steps:
//  1. Normalize both endpoints; reject empty labels.
//  2. If the graph forbids negative weights and weight < 0 ⇒ ErrInvalidWeight.
//  3. Under mu: resolve endpoints (strict ⇒ ErrVertexNotFound, otherwise create).
//  4. Store the Edge and append its arc(s): one for directed graphs or loops,
//     two (from→to, to→from) for undirected graphs.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K, weight int64) (int, error) {
	u, v := g.normalize(from), g.normalize(to)
	if isEmptyLabel(u) || isEmptyLabel(v) {
		return 0, ErrEmptyVertexID
	}
	if g.nonNegative && weight < 0 {
		return 0, fmt.Errorf("%w: edge %v→%v weight=%d", ErrInvalidWeight, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ui, vi, err := g.resolveEndpoints(u, v)
	if err != nil {
		return 0, err
	}

	eid := len(g.edges)
	g.edges = append(g.edges, Edge[K]{ID: eid, From: u, To: v, Weight: weight, Directed: g.directed})
	g.adj[ui] = append(g.adj[ui], Arc{From: ui, To: vi, Weight: weight, Edge: eid})
	g.arcs++
	// Mirror undirected (loops skip the mirror)
	if !g.directed && ui != vi {
		g.adj[vi] = append(g.adj[vi], Arc{From: vi, To: ui, Weight: weight, Edge: eid})
		g.arcs++
	}

	return eid, nil
}

// resolveEndpoints must be called with mu held for writing.
func (g *Graph[K]) resolveEndpoints(u, v K) (int, int, error) {
	if g.strict {
		ui, ok := g.index[u]
		if !ok {
			return 0, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
		}
		vi, ok := g.index[v]
		if !ok {
			return 0, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
		}

		return ui, vi, nil
	}

	return g.ensureVertex(u), g.ensureVertex(v), nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge[K], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges added so far.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns a copy of the outgoing arcs of id.
// Returns ErrVertexNotFound if id is not declared.
// Complexity: O(deg(id)).
func (g *Graph[K]) Neighbors(id K) ([]Arc, error) {
	key := g.normalize(id)
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, key)
	}
	out := make([]Arc, len(g.adj[i]))
	copy(out, g.adj[i])

	return out, nil
}
