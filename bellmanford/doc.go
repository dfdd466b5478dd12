// Package bellmanford provides a relaxation-based single-source shortest-path
// engine for graphs with arbitrary integer edge weights.
//
// Overview:
//
//   - BellmanFord relaxes every arc of the graph V-1 times and then performs one
//     detection pass; an arc that still relaxes proves a negative cycle reachable
//     from the source.
//   - Arcs are relaxed in edge insertion order. An undirected edge contributes its
//     forward arc first and its reverse arc second.
//   - The result is a total mapping: every vertex of the graph appears, unreachable
//     ones with core.Unreachable().
//
// Negative cycles:
//
//   - A negative cycle is a structured outcome, not an error: Result.NegativeCycle
//     is set and Result.Distances carries the values after V-1 rounds. Those values
//     are not shortest paths for vertices the cycle reaches.
//   - Result.Err converts the flag into ErrNegativeCycle for callers that prefer
//     to treat it as a failure.
//   - An undirected edge with negative weight is a two-arc negative cycle.
//
// Options:
//
//   - WithContext: cancellation is checked at every round boundary.
//   - WithEarlyExit: stop after the first round that changes nothing. Distances and
//     the NegativeCycle flag are the same as with the full V-1 rounds.
//   - WithOnRelax: observe each relaxation (dist[v] only ever decreases).
//
// Errors:
//
//   - ErrNilGraph:              nil *core.Graph.
//   - core.ErrVertexNotFound:   source not present; no partial result.
//   - core.ErrDistanceOverflow: no negative cycle is reachable and a shortest distance
//     does not fit into int64. Transient overflows are resolved by an exact rerun.
//
// Complexity: O(V·E) time, O(V + E) memory.
package bellmanford
