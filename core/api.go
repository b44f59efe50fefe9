// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and snapshot statistics.

package core

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports whether new edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// GraphStats is a point-in-time snapshot of graph size and weight mass.
type GraphStats struct {
	VertexCount    int
	EdgeCount      int
	TotalWeight    float64
	IsolatedCount  int // vertices with no incident edge
	MaxDegree      int
	MaxDegreeOwner string // smallest ID among vertices reaching MaxDegree
}

// Stats returns a snapshot of graph statistics.
// Complexity: O(V log V + E log E).
func (g *Graph) Stats() *GraphStats {
	st := &GraphStats{}
	for _, e := range g.Edges() {
		st.EdgeCount++
		st.TotalWeight += e.Weight
	}
	for _, id := range g.Vertices() {
		st.VertexCount++
		d, err := g.Degree(id)
		if err != nil {
			continue
		}
		if d == 0 {
			st.IsolatedCount++
		}
		if d > st.MaxDegree {
			st.MaxDegree, st.MaxDegreeOwner = d, id
		}
	}

	return st
}
