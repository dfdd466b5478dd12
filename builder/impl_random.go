// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_random.go — stochastic topologies: RandomSparse, RandomDAG.
//
// Pairs are visited in row-major order. Each admitted pair consumes one
// rng.Float64 draw, followed by the weight draw when the edge is kept.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomDAG    = "RandomDAG"

	minRandomNodes = 1
	probMin        = 0.0
	probMax        = 1.0
)

// RandomSparse builds G(n, p) without self-loops. Undirected graphs consider
// each pair i<j once; directed graphs consider every ordered pair.
// Requires an RNG unless p is exactly 0 or 1.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateRandom(methodRandomSparse, n, p, cfg); err != nil {
			return err
		}
		directed := g.Directed()

		return randomPairs(g, cfg, methodRandomSparse, n, p, func(i, j int) bool {
			return i != j && (directed || i < j)
		})
	}
}

// RandomDAG builds a directed acyclic G(n, p): only arcs i→j with i < j.
// The graph must be directed (ErrUnsupportedGraphMode otherwise).
// Complexity: O(n²).
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateRandom(methodRandomDAG, n, p, cfg); err != nil {
			return err
		}
		if !g.Directed() {
			return fmt.Errorf("%s: graph must be directed: %w", methodRandomDAG, ErrUnsupportedGraphMode)
		}

		return randomPairs(g, cfg, methodRandomDAG, n, p, func(i, j int) bool { return i < j })
	}
}

func validateRandom(method string, n int, p float64, cfg builderConfig) error {
	if n < minRandomNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomNodes, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// randomPairs adds n vertices, then an edge for every admitted pair that passes
// the Bernoulli(p) draw.
func randomPairs(g *core.Graph[int], cfg builderConfig, method string, n int, p float64, admit func(i, j int) bool) error {
	base, err := addVertices(g, method, n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !admit(i, j) {
				continue
			}
			if cfg.rng != nil && cfg.rng.Float64() >= p {
				continue
			}
			if cfg.rng == nil && p == probMin {
				continue
			}
			if err = addEdge(g, cfg, method, base+i, base+j); err != nil {
				return err
			}
		}
	}

	return nil
}
