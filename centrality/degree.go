// SPDX-License-Identifier: MIT

package centrality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hemicycle/core"
)

// Sentinel errors returned by the centrality package.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrNegativeDistance indicates an edge whose distance is negative or NaN.
	ErrNegativeDistance = errors.New("centrality: negative edge distance")

	// ErrBadEpsilon indicates a negative or NaN epsilon for InverseDistance.
	ErrBadEpsilon = errors.New("centrality: epsilon must be non-negative")
)

// WeightedDegree returns, for every vertex, the sum of its incident edge weights.
// Isolated vertices map to 0.
func WeightedDegree(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		wd, err := g.WeightedDegree(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: degree of %q: %w", id, err)
		}
		out[id] = wd
	}

	return out, nil
}
