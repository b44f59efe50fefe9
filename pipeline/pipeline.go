// SPDX-License-Identifier: MIT

// Package pipeline threads a roll-call corpus through every analysis stage:
//
//	records → votes.Build → similarity.Compute → knn.Build → leadership.Analyze
//
// plus corpus statistics and graph components. Each stage receives its input
// explicitly and returns a new value; nothing is shared between runs, so two
// runs over the same records and Config produce identical Results.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hemicycle/centrality"
	"github.com/katalvlaran/hemicycle/core"
	"github.com/katalvlaran/hemicycle/knn"
	"github.com/katalvlaran/hemicycle/leadership"
	"github.com/katalvlaran/hemicycle/similarity"
	"github.com/katalvlaran/hemicycle/stats"
	"github.com/katalvlaran/hemicycle/votes"
)

// CorpusStats groups the descriptive statistics of a run.
type CorpusStats struct {
	Participation stats.Distribution     `json:"participation" yaml:"participation"`
	Attendance    stats.AttendanceReport `json:"attendance" yaml:"attendance"`
	GroupSizes    []stats.GroupSize      `json:"group_sizes" yaml:"group_sizes"`
	Similarity    stats.Distribution     `json:"similarity" yaml:"similarity"`
}

// Result carries every artifact of a run.
type Result struct {
	Config     Config
	Summary    votes.Summary
	Votes      *votes.Matrix
	Similarity *similarity.Matrix
	Graph      *core.Graph
	Components [][]string
	Report     *leadership.Report
	Stats      CorpusStats
}

// RunOption configures Run.
type RunOption func(*runner)

// WithLogger routes progress logs to l.
func WithLogger(l *log.Logger) RunOption {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

type runner struct {
	log *log.Logger
}

// Run validates cfg and executes every stage over records.
// An empty corpus, or a filter that keeps nothing, yields an empty Result
// (empty matrix, empty graph, empty report) and no error.
//
// Errors:
//   - ErrInvalidConfig, and wrapped stage errors (e.g. votes.ErrDuplicateVote).
func Run(records []votes.Record, cfg Config, opts ...RunOption) (*Result, error) {
	r := &runner{log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(r)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, _ := similarity.ParseMethod(cfg.Method)
	transform, _ := knn.ParseTransform(cfg.WeightTransform)

	res := &Result{Config: cfg}

	// 1) Vote matrix
	start := time.Now()
	vopts := []votes.Option{votes.WithMinVoters(cfg.MinVoters)}
	if cfg.Ballots != nil {
		vopts = append(vopts, votes.WithBallots(cfg.Ballots...))
	}
	vm, sum, err := votes.Build(records, vopts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: vote matrix: %w", err)
	}
	res.Votes, res.Summary = vm, sum
	r.log.Info("ballots filtered",
		"retained", sum.RetainedBallots, "total", sum.TotalBallots,
		"min_voters", cfg.MinVoters, "legislators", sum.Legislators)
	if vm.Empty() {
		r.log.Warn("vote matrix is empty", "records", sum.TotalRecords)
	}
	r.log.Debug("stage done", "stage", "votes", "took", time.Since(start))

	// 2) Similarity
	start = time.Now()
	sopts := []similarity.Option{similarity.WithMinCommonVotes(cfg.MinCommonVotes)}
	if cfg.Workers > 0 {
		sopts = append(sopts, similarity.WithWorkers(cfg.Workers))
	}
	sim, err := similarity.Compute(vm, method, sopts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: similarity: %w", err)
	}
	res.Similarity = sim
	r.log.Debug("stage done", "stage", "similarity", "method", method, "size", sim.Len(), "took", time.Since(start))

	// 3) k-NN graph
	start = time.Now()
	groups := vm.Groups()
	g, err := knn.Build(sim, groups, knn.WithK(cfg.KNeighbors), knn.WithTransform(transform))
	if err != nil {
		return nil, fmt.Errorf("pipeline: graph: %w", err)
	}
	res.Graph = g
	if res.Components, err = centrality.Components(g); err != nil {
		return nil, fmt.Errorf("pipeline: components: %w", err)
	}
	gs := g.Stats()
	r.log.Info("graph built",
		"k", cfg.KNeighbors, "vertices", gs.VertexCount, "edges", gs.EdgeCount,
		"isolated", gs.IsolatedCount, "components", len(res.Components))
	r.log.Debug("stage done", "stage", "graph", "took", time.Since(start))

	// 4) Leadership
	start = time.Now()
	rep, err := leadership.Analyze(g, groups,
		leadership.WithTopN(cfg.TopN),
		leadership.WithEpsilon(cfg.BetweennessEpsilon),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: leadership: %w", err)
	}
	res.Report = rep
	r.log.Debug("stage done", "stage", "leadership", "groups", len(rep.GlobalLeaders), "took", time.Since(start))

	scoped := scopeRecords(records, cfg.Ballots)
	res.Stats = CorpusStats{
		Participation: stats.Participation(scoped),
		Attendance:    stats.Attendance(scoped, cfg.TopN),
		GroupSizes:    stats.GroupSizes(groups),
		Similarity:    stats.Similarity(sim),
	}

	return res, nil
}

// scopeRecords keeps the records of the configured ballot subset (nil = all).
func scopeRecords(records []votes.Record, ballots []int) []votes.Record {
	if ballots == nil {
		return records
	}
	keep := make(map[int]bool, len(ballots))
	for _, b := range ballots {
		keep[b] = true
	}
	out := make([]votes.Record, 0, len(records))
	for _, r := range records {
		if keep[r.Ballot] {
			out = append(out, r)
		}
	}

	return out
}
