// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hemicycle/bfs"
	"github.com/katalvlaran/hemicycle/core"
)

// Components returns the connected components of g, one bfs.BFS per unvisited vertex.
// Each component is sorted ascending; components are ordered by size
// descending, then by their smallest vertex ID. Edge direction follows the
// Neighbors policy, so call it on undirected graphs.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	visited := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}
		res, err := bfs.BFS(g, start)
		if err != nil {
			return nil, fmt.Errorf("centrality: component of %q: %w", start, err)
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			visited[id] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })

	return out, nil
}
