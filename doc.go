// SPDX-License-Identifier: MIT

// Package hemicycle analyzes roll-call votes as a legislator network.
//
// A corpus of (legislator, group, position, ballot) records flows through
// independent stages, each in its own subpackage:
//
//	votes/      — position encoding, min-voters filter, vote matrix with a presence mask
//	similarity/ — pairwise legislator similarity: cosine, correlation, jaccard, agreement_weighted
//	knn/        — per-legislator top-k neighbor graph built on core.Graph
//	core/       — thread-safe weighted graph, induced subgraphs and weight views
//	bfs/        — breadth-first traversal over core.Graph
//	centrality/ — weighted degree, Brandes betweenness, connected components
//	leadership/ — pivots, piliers, global and intra-group leaders
//	stats/      — participation, attendance and similarity distributions
//	pipeline/   — configuration and the end-to-end run
//
// The hemicycle command (cmd/hemicycle) reads a CSV corpus and prints the
// report as text, JSON or YAML.
//
// Quick start:
//
//	records, _ := dataset.ReadFile("votes.csv")
//	res, err := pipeline.Run(records, pipeline.DefaultConfig())
//	if err != nil { /* handle */ }
//	for _, e := range res.Report.Pivots { fmt.Println(e.ID, e.Score) }
package hemicycle
