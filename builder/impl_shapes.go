// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_shapes.go — fixed topologies: Path, Cycle, Star, Complete.
//
// Emission order is documented per constructor and stable across runs.
// On directed graphs each edge is a single arc in the documented direction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path builds P_n: edges v0→v1→…→v(n-1) in ascending order (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err = addEdge(g, cfg, methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: the Path edges followed by the closing edge v(n-1)→v0 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a center v0 with edges v0→vi for i = 1..n-1 (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodStar, base, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1). Undirected graphs get one edge per pair i<j;
// directed graphs get both arcs i→j and j→i. Pairs are emitted in row-major order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodComplete, n)
		if err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if err = addEdge(g, cfg, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
