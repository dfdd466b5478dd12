// Package pathfinder computes single-source shortest paths over weighted
// graphs, with two engines sharing one graph model.
//
// What is in the box:
//
//	core/        — Graph[K]: label graphs (case-insensitive strings) and index graphs (0..n-1),
//	               directed or undirected, plus the Distance tagged union
//	dijkstra/    — label-setting engine for non-negative weights
//	bellmanford/ — label-correcting engine for any weights, flags negative cycles
//	report/      — ordering (ascending distance, unreachable last), cross-checks and rendering
//	loader/      — plain-text graph forms (indexed, labeled, cities) in and out
//	builder/     — deterministic graph shapes and seeded random graphs for tests and benchmarks
//	examples/    — end-to-end scenarios
//	cmd/pathfinder — the command-line tool
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──1──D
//
//	From A: A=0, B=1, D=3, C=4 (via B and D).
//
// Engines never mutate the graph: each run works on a Snapshot, so
// concurrent runs on one graph are safe.
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
