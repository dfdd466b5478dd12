// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_grid.go — R×C 4-neighborhood grid.
//
// Vertex numbering is row-major: cell (r, c) is base + r*cols + c.
// For each cell the right edge is emitted before the down edge. On directed
// graphs every neighbor pair gets both arcs, each with its own weight draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols grid (rows, cols ≥ 1).
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}

		link := func(u, v int) error {
			if err := addEdge(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if g.Directed() {
				return addEdge(g, cfg, methodGrid, v, u)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					if err = link(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
