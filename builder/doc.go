// Package builder generates deterministic weighted index graphs for tests,
// benchmarks and the pathfinder generate command.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph: creates a *core.Graph[int] and applies constructors in order.
//   - Topology constructors (Constructor implementations):
//     – Path, Cycle, Star, Complete, Grid: fixed shapes.
//     – RandomSparse: Erdős–Rényi G(n, p).
//     – RandomDAG: G(n, p) restricted to arcs i→j with i < j (no cycles, so
//     negative weights never create a negative cycle).
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn: fixed value (default DefaultEdgeWeight).
//     – UniformWeightFn:  uniform over the closed integer range [min, max];
//     negative bounds are allowed.
//
// Vertex numbering:
//
//   - Each constructor appends its vertices after those already in the graph,
//     so composing constructors yields disjoint components numbered
//     consecutively from 0.
//
// Guarantees:
//
//   - Determinism: equal constructors, options and seed ⇒ identical graphs,
//     including edge insertion order.
//   - Option constructors panic on meaningless inputs (nil functions, inverted
//     ranges); constructors never panic and return sentinel errors instead.
package builder
