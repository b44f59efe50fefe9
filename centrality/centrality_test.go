// SPDX-License-Identifier: MIT

package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemicycle/centrality"
	"github.com/katalvlaran/hemicycle/core"
)

func weighted(t *testing.T, edges ...[3]interface{}) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(float64))
		require.NoError(t, err)
	}

	return g
}

func edge(a, b string, w float64) [3]interface{} { return [3]interface{}{a, b, w} }

func TestBetweenness_Path(t *testing.T) {
	g := weighted(t, edge("A", "B", 1), edge("B", "C", 1))

	bc, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, bc["B"], 1e-12)
	assert.Zero(t, bc["A"])
	assert.Zero(t, bc["C"])

	raw, err := centrality.Betweenness(g, centrality.WithNormalized(false))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, raw["B"], 1e-12, "one pair, counted once")
}

func TestBetweenness_SplitsEqualPaths(t *testing.T) {
	g := weighted(t, edge("A", "B", 1), edge("B", "C", 1), edge("C", "D", 1), edge("D", "A", 1))
	bc, err := centrality.Betweenness(g, centrality.WithNormalized(false))
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C", "D"} {
		assert.InDelta(t, 0.5, bc[id], 1e-12, id)
	}

	norm, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5/3.0, norm["A"], 1e-12)
}

func TestBetweenness_InverseDistance(t *testing.T) {
	g := weighted(t, edge("A", "B", 1), edge("B", "C", 1), edge("A", "C", 3))

	plain, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, plain["B"], 1e-12, "A→B→C costs 2 < 3")

	inv, err := centrality.Betweenness(g, centrality.WithDistance(centrality.InverseDistance(1e-6)))
	require.NoError(t, err)
	assert.Zero(t, inv["B"], "strong A–C tie is the short path")

	// source graph untouched by the distance view
	e, err := g.EdgeBetween("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, e.Weight)
}

func TestBetweenness_BrokerBetweenClusters(t *testing.T) {
	g := weighted(t,
		edge("L1", "L2", 0.9), edge("L2", "L3", 0.9), edge("L1", "L3", 0.9),
		edge("R1", "R2", 0.9), edge("R2", "R3", 0.9), edge("R1", "R3", 0.9),
		edge("L3", "M", 0.4), edge("M", "R1", 0.4),
	)
	bc, err := centrality.Betweenness(g, centrality.WithDistance(centrality.InverseDistance(1e-6)))
	require.NoError(t, err)
	for id, score := range bc {
		if id != "M" {
			assert.LessOrEqual(t, score, bc["M"], id)
		}
	}
	assert.Greater(t, bc["M"], bc["L1"])
}

func TestBetweenness_Errors(t *testing.T) {
	_, err := centrality.Betweenness(nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)

	g := weighted(t, edge("A", "B", 1))
	_, err = centrality.Betweenness(g, centrality.WithDistance(func(w float64) float64 { return -w }))
	require.ErrorIs(t, err, centrality.ErrNegativeDistance)

	assert.Panics(t, func() { centrality.InverseDistance(-1) })
	assert.Panics(t, func() { centrality.InverseDistance(math.NaN()) })
}

func TestBetweenness_SmallAndEmpty(t *testing.T) {
	bc, err := centrality.Betweenness(core.NewGraph(core.WithWeighted()))
	require.NoError(t, err)
	assert.Empty(t, bc)

	bc, err = centrality.Betweenness(weighted(t, edge("A", "B", 1)))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 0}, bc)
}

func TestBetweenness_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		return weighted(t,
			edge("a", "b", 0.3), edge("b", "c", 0.7), edge("c", "d", 0.2),
			edge("a", "d", 0.5), edge("b", "d", 0.9), edge("d", "e", 0.4),
		)
	}
	first, err := centrality.Betweenness(build(), centrality.WithDistance(centrality.InverseDistance(1e-6)))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := centrality.Betweenness(build(), centrality.WithDistance(centrality.InverseDistance(1e-6)))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestWeightedDegree(t *testing.T) {
	g := weighted(t, edge("A", "B", 0.5), edge("B", "C", 0.25))
	require.NoError(t, g.AddVertex("Z"))

	wd, err := centrality.WeightedDegree(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0.5, "B": 0.75, "C": 0.25, "Z": 0}, wd)

	_, err = centrality.WeightedDegree(nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)
}

func TestComponents(t *testing.T) {
	g := weighted(t, edge("d", "e", 1), edge("a", "b", 1), edge("b", "c", 1))
	require.NoError(t, g.AddVertex("z"))

	comps, err := centrality.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e"}, {"z"}}, comps)

	_, err = centrality.Components(nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)
}
