// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (fresh graphs derived from a source graph).
// Determinism:
//   - Edges are copied in insertion order; IDs and sequence numbers are preserved.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph containing only vertices v with keep[v]
// true, and every edge whose endpoints are both kept. Vertex attributes are
// copied. The input graph is not mutated.
//
// Complexity: O(V + E log E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return derive(g, keep, nil)
}

// WeightView returns a new Graph with identical topology where every edge
// weight w is replaced by fn(w). The result is always weighted.
// Typical use is the similarity→distance transform before shortest paths.
//
// Complexity: O(V + E log E).
func WeightView(g *Graph, fn func(w float64) float64) *Graph {
	return derive(g, nil, fn)
}

// derive copies g, filtering vertices by keep (nil = all) and mapping weights by fn (nil = identity).
func derive(g *Graph, keep map[string]bool, fn func(float64) float64) *Graph {
	opts := g.options()
	if fn != nil {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep != nil && !keep[id] {
			continue
		}
		attrs := make(map[string]string, len(v.Attrs))
		for k, val := range v.Attrs {
			attrs[k] = val
		}
		out.vertices[id] = &Vertex{ID: id, Attrs: attrs}
		ensureAdjacencyRoot(out, id)
	}
	g.muVert.RUnlock()

	kept := func(id string) bool { return keep == nil || keep[id] }
	for _, e := range g.Edges() {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		w := e.Weight
		if fn != nil {
			w = fn(w)
		}
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: w, Directed: e.Directed, seq: e.seq}
		out.edges[ne.ID] = ne
		linkEdge(out, ne)
	}

	g.muEdgeAdj.RLock()
	out.nextEdgeID = g.nextEdgeID // future AddEdge calls cannot collide with copied IDs
	g.muEdgeAdj.RUnlock()

	return out
}
