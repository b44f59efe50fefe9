// SPDX-License-Identifier: MIT

// Package centrality implements weighted-graph centrality measures over
// core.Graph, independent of what the vertices represent.
//
//   - WeightedDegree: sum of incident edge weights.
//   - Betweenness: Brandes' algorithm with Dijkstra shortest paths on edge
//     distances. The distance of an edge is Options.Distance(weight), the
//     identity by default; InverseDistance(eps) turns strong ties into short hops.
//   - Components: connected components by breadth-first search.
//
// Determinism: sources are processed in Vertices() order, neighbors in
// insertion order and heap ties broken by push order, so repeated runs
// produce identical floating-point results.
//
// Complexity:
//
//	WeightedDegree  O(V + E)
//	Betweenness     O(V·E + V²·log V)
//	Components      O(V + E)
package centrality
