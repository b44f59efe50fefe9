// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for hemicycle/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemicycle/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// newTriangle builds the weighted undirected triangle A–B(1), B–C(2), A–C(3) plus isolated D.
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, VertexA, VertexB, 1)
	mustEdge(t, g, VertexB, VertexC, 2)
	mustEdge(t, g, VertexA, VertexC, 3)
	require.NoError(t, g.AddVertex(VertexD))

	return g
}

func mustEdge(t *testing.T, g *core.Graph, from, to string, w float64) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, w)
	require.NoError(t, err)

	return eid
}
