// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemicycle/core"
)

func TestInducedSubgraph(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.SetVertexAttr(VertexA, core.AttrGroup, "X"))

	sub := core.InducedSubgraph(g, map[string]bool{VertexA: true, VertexB: true, VertexD: true})
	assert.Equal(t, []string{VertexA, VertexB, VertexD}, sub.Vertices())
	assert.Equal(t, 1, sub.EdgeCount())
	assert.True(t, sub.HasEdge(VertexB, VertexA))
	grp, ok := sub.VertexAttr(VertexA, core.AttrGroup)
	assert.True(t, ok)
	assert.Equal(t, "X", grp)

	// source untouched
	assert.Equal(t, 3, g.EdgeCount())

	// new edges never reuse copied IDs
	eid, err := sub.AddEdge(VertexA, VertexD, 1)
	require.NoError(t, err)
	assert.Equal(t, "e4", eid)
}

func TestViewsKeepGraphFlags(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	mustEdge(t, g, VertexA, VertexA, 1)
	mustEdge(t, g, VertexA, VertexB, 2)
	mustEdge(t, g, VertexA, VertexB, 3)

	for name, v := range map[string]*core.Graph{
		"induced": core.InducedSubgraph(g, map[string]bool{VertexA: true, VertexB: true}),
		"weights": core.WeightView(g, func(w float64) float64 { return -w }),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, v.Directed())
			assert.True(t, v.Weighted())
			assert.True(t, v.Looped())
			assert.True(t, v.Multigraph())
			assert.Equal(t, 3, v.EdgeCount())

			// flags carry over to later mutations too
			mustEdge(t, v, VertexB, VertexB, 1)
			mustEdge(t, v, VertexA, VertexB, 4)
			assert.False(t, v.HasEdge(VertexB, VertexA))
		})
	}

	plain := core.InducedSubgraph(core.NewGraph(), nil)
	assert.False(t, plain.Looped())
	assert.False(t, plain.Multigraph())
	_, err := plain.AddEdge(VertexA, VertexA, 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestWeightView(t *testing.T) {
	g := newTriangle(t)
	inv := core.WeightView(g, func(w float64) float64 { return 1 / w })

	e, err := inv.EdgeBetween(VertexA, VertexC)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, e.Weight, 1e-12)

	orig, err := g.EdgeBetween(VertexA, VertexC)
	require.NoError(t, err)
	assert.Equal(t, 3.0, orig.Weight)
	assert.Equal(t, g.Vertices(), inv.Vertices())
}
