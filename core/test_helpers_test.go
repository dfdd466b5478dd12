// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""

	VertexAlice = "Alice"
	VertexBob   = "Bob"
	VertexCarol = "Carol"
	VertexDave  = "Dave"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0
	Weight1   = 1
	Weight3   = 3
	Weight5   = 5
	WeightNeg = -2
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustAddEdge adds from→to and fails the test on error.
func mustAddEdge[K comparable](t *testing.T, g *core.Graph[K], from, to K, w int64) int {
	t.Helper()
	id, err := g.AddEdge(from, to, w)
	require.NoError(t, err, "AddEdge(%v,%v,%d)", from, to, w)

	return id
}

// newSocialGraph builds the undirected label graph
//
//	alice —1— bob —3— carol      dave (isolated)
func newSocialGraph(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewLabelGraph()
	mustAddEdge(t, g, VertexAlice, VertexBob, Weight1)
	mustAddEdge(t, g, VertexBob, VertexCarol, Weight3)
	require.NoError(t, g.AddVertex(VertexDave))

	return g
}
