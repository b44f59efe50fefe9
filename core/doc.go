// SPDX-License-Identifier: MIT

// Package core provides the in-memory weighted Graph used by every stage that
// works on legislator neighborhoods: the k-NN builder writes it, the centrality
// and leadership packages only read it.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Per-vertex string attributes (SetVertexAttr / VertexAttr), used to carry
//     the political group of a legislator
//   - Constant-time edge lookups via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() is sorted lexicographically. Edges() and Neighbors() are sorted
//	by insertion order, so two graphs built by the same sequence of AddEdge
//	calls enumerate identically.
//
// Views:
//
//	InducedSubgraph(g, keep) and WeightView(g, fn) return fresh graphs and never
//	mutate their input.
//
// Quick example:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge("alice", "bob", 0.8)
//	_ = g.SetVertexAttr("alice", core.AttrGroup, "ECOLO")
package core
