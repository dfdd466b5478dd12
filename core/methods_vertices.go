// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Lookup/Vertices/VertexAt/VertexCount.
// Determinism:
//   - Vertices() returns vertices in declaration order (dense index order).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddVertex declares the vertex id (after normalization) and returns its dense index.
// If the vertex already exists, this is a no-op returning the existing index.
// Returns ErrEmptyVertexID if id normalizes to the zero value of K for label graphs.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) error {
	_, err := g.addVertex(id)

	return err
}

func (g *Graph[K]) addVertex(id K) (int, error) {
	key := g.normalize(id)
	if isEmptyLabel(key) {
		return 0, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ensureVertex(key), nil
}

// ensureVertex must be called with mu held for writing and a normalized key.
func (g *Graph[K]) ensureVertex(key K) int {
	if i, ok := g.index[key]; ok {
		return i
	}
	i := len(g.ids)
	g.index[key] = i
	g.ids = append(g.ids, key)
	g.adj = append(g.adj, nil)

	return i
}

// HasVertex reports whether id (after normalization) is a declared vertex.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	_, ok := g.Lookup(id)

	return ok
}

// Lookup returns the dense index of id (after normalization).
// Complexity: O(1).
func (g *Graph[K]) Lookup(id K) (int, bool) {
	key := g.normalize(id)
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[key]

	return i, ok
}

// Vertices returns all vertices in declaration order. The slice is a copy.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]K, len(g.ids))
	copy(out, g.ids)

	return out
}

// VertexAt returns the vertex with dense index i.
func (g *Graph[K]) VertexAt(i int) (K, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.ids) {
		var zero K

		return zero, false
	}

	return g.ids[i], true
}

// VertexCount returns the number of declared vertices.
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// isEmptyLabel reports whether key is the empty string. Non-string identifiers
// are never considered empty: 0 is a valid index.
func isEmptyLabel[K comparable](key K) bool {
	s, ok := any(key).(string)

	return ok && s == ""
}
