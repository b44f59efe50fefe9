// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
// Determinism:
//   - Edges() sorted by insertion order.
// Concurrency:
//   - Edge catalog and adjacency protected by muEdgeAdj.

package core

import (
	"fmt"
	"math"
	"sort"
)

const edgeIDPrefix = "e"

// AddEdge creates a new edge from→to with the given weight and returns its Edge.ID.
// Missing endpoints are created. For undirected graphs the adjacency is mirrored.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrBadWeight: NaN weight, or non-zero weight on an unweighted graph.
//   - ErrLoopNotAllowed: from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: an edge from→to already exists without WithMultiEdges.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || (!g.weighted && weight != 0) {
		return "", fmt.Errorf("AddEdge(%q,%q,%v): %w", from, to, weight, ErrBadWeight)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3) Multi-edge existence check
	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Generate a new Edge.ID and store
	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed, seq: g.nextEdgeID}
	g.edges[eid] = e
	linkEdge(g, e)

	return eid, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// For undirected graphs HasEdge(a,b) == HasEdge(b,a).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// EdgeBetween returns the earliest inserted edge from 'from' to 'to'.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var best *Edge
	for eid := range g.adjacencyList[from][to] {
		e := g.edges[eid]
		if best == nil || e.seq < best.seq {
			best = e
		}
	}
	if best == nil {
		return nil, fmt.Errorf("EdgeBetween(%q,%q): %w", from, to, ErrEdgeNotFound)
	}

	return best, nil
}

// Edges returns all edges sorted by insertion order.
// Returned pointers reference the live catalog; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sortBySeq(out)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// linkEdge registers e in the adjacency maps. Caller holds muEdgeAdj.
func linkEdge(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
