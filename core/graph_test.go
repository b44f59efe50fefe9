// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemicycle/core"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA)) // idempotent
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_Errors(t *testing.T) {
	cases := []struct {
		name     string
		g        *core.Graph
		from, to string
		w        float64
		want     error
	}{
		{"empty endpoint", core.NewGraph(core.WithWeighted()), "", VertexB, 1, core.ErrEmptyVertexID},
		{"weight on unweighted", core.NewGraph(), VertexA, VertexB, 1, core.ErrBadWeight},
		{"nan weight", core.NewGraph(core.WithWeighted()), VertexA, VertexB, math.NaN(), core.ErrBadWeight},
		{"loop", core.NewGraph(core.WithWeighted()), VertexA, VertexA, 1, core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.g.AddEdge(tc.from, tc.to, tc.w)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAddEdge_UndirectedMirrorAndMulti(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, VertexA, VertexB, 0.5)
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))

	_, err := g.AddEdge(VertexB, VertexA, 0.7)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())

	e, err := g.EdgeBetween(VertexB, VertexA)
	require.NoError(t, err)
	assert.Equal(t, 0.5, e.Weight)
	assert.Equal(t, VertexA, e.Other(VertexB))

	_, err = g.EdgeBetween(VertexA, VertexC)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestDirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	mustEdge(t, g, VertexA, VertexB, 1)
	out, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB}, out)
	in, err := g.NeighborIDs(VertexB)
	require.NoError(t, err)
	assert.Empty(t, in)
	assert.False(t, g.HasEdge(VertexB, VertexA))
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := newTriangle(t)
	edges, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, 1.0, edges[0].Weight)
	assert.Equal(t, 3.0, edges[1].Weight)

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, ids)

	_, err = g.Neighbors("nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestDegreeAndWeightedDegree(t *testing.T) {
	g := newTriangle(t)
	d, err := g.Degree(VertexB)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	wd, err := g.WeightedDegree(VertexC)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, wd, 1e-12)

	wd, err = g.WeightedDegree(VertexD)
	require.NoError(t, err)
	assert.Zero(t, wd)
}

func TestVertexAttrs(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.SetVertexAttr(VertexA, core.AttrGroup, "RN"), core.ErrVertexNotFound)
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.SetVertexAttr(VertexA, core.AttrGroup, "RN"))

	v, ok := g.VertexAttr(VertexA, core.AttrGroup)
	assert.True(t, ok)
	assert.Equal(t, "RN", v)
	_, ok = g.VertexAttr(VertexB, core.AttrGroup)
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	st := newTriangle(t).Stats()
	assert.Equal(t, 4, st.VertexCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 1, st.IsolatedCount)
	assert.Equal(t, 2, st.MaxDegree)
	assert.Equal(t, VertexA, st.MaxDegreeOwner)
	assert.InDelta(t, 6.0, st.TotalWeight, 1e-12)
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{VertexC, VertexA, VertexB} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices())
}
