// Package dijkstra provides a label-setting implementation of Dijkstra's
// shortest-path algorithm on graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex to
//     every vertex in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - A vertex's distance is final once it is extracted; later, larger heap entries
//     for the same vertex are stale and discarded (lazy deletion).
//   - The result is a total mapping: every vertex of the graph appears, unreachable
//     ones with core.Unreachable().
//
// When to use:
//
//   - Whenever every edge weight is ≥ 0. For graphs that may contain negative
//     weights use package bellmanford, which also detects negative cycles.
//
// Key features:
//
//   - Generic over the vertex identifier: label graphs (case-insensitive strings)
//     and index graphs (0..n-1) share one implementation.
//   - Stricter contract than the textbook algorithm: negative weights are rejected
//     with core.ErrInvalidWeight instead of yielding undefined distances, and a source
//     that is not part of the graph fails with core.ErrVertexNotFound.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - WithContext: cancellation is checked at every frontier extraction.
//   - WithOnRelax: observe each relaxation (dist[v] only ever decreases).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:            nil *core.Graph.
//   - ErrOptionViolation:     negative MaxDistance or non-positive InfEdgeThreshold.
//   - core.ErrVertexNotFound: source not present in the graph.
//   - core.ErrInvalidWeight:  a negative edge weight was found by the O(E) pre-scan.
//   - core.ErrDistanceOverflow: a path length does not fit into int64.
//
// API reference:
//
//	func Dijkstra[K comparable](
//	    g *core.Graph[K],
//	    source K,
//	    opts ...Option,
//	) (core.Distances[K], error)
//
// Thread safety:
//
//   - Dijkstra works on g.Snapshot(); edges added to g while it runs are not observed.
//   - Concurrent Dijkstra calls on the same graph are safe.
package dijkstra
