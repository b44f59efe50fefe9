// SPDX-License-Identifier: MIT

// Package leadership extracts influence metrics from a legislator k-NN graph.
//
// Whole-graph metrics:
//
//	Piliers  weighted degree: how broadly a legislator is agreed with.
//	Pivots   betweenness on distance = 1/(weight + Epsilon): legislators who
//	         broker agreement between otherwise distant clusters.
//
// Per group (every distinct group among graph vertices):
//
//	GlobalLeaders  member with the highest whole-graph weighted degree.
//	IntraLeaders   member with the highest weighted degree inside the subgraph
//	               induced by the group; groups of one member are omitted.
//
// Ranking is by score descending, then legislator id ascending; the same rule
// picks leaders among equal scores.
package leadership

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hemicycle/centrality"
	"github.com/katalvlaran/hemicycle/core"
	"github.com/katalvlaran/hemicycle/votes"
)

// Sentinel errors returned by Analyze.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("leadership: graph is nil")

	// ErrBadTopN indicates a negative top-N.
	ErrBadTopN = errors.New("leadership: top-n must be non-negative")

	// ErrBadEpsilon indicates a negative or NaN epsilon.
	ErrBadEpsilon = errors.New("leadership: epsilon must be non-negative")
)

// Defaults.
const (
	DefaultTopN    = 10
	DefaultEpsilon = 1e-6
)

// Entry is one ranked legislator.
type Entry struct {
	ID    string  `json:"id" yaml:"id"`
	Group string  `json:"group" yaml:"group"`
	Score float64 `json:"score" yaml:"score"`
}

// Report is the leadership summary handed to callers.
type Report struct {
	Pivots        []Entry          `json:"pivots" yaml:"pivots"`
	Piliers       []Entry          `json:"piliers" yaml:"piliers"`
	IntraLeaders  map[string]Entry `json:"intra_leaders" yaml:"intra_leaders"`
	GlobalLeaders map[string]Entry `json:"global_leaders" yaml:"global_leaders"`
}

// Groups returns the groups of GlobalLeaders sorted ascending.
func (r *Report) Groups() []string {
	out := make([]string, 0, len(r.GlobalLeaders))
	for g := range r.GlobalLeaders {
		out = append(out, g)
	}
	sort.Strings(out)

	return out
}

// Options configures Analyze.
type Options struct {
	TopN       int
	Epsilon    float64
	Normalized bool // normalized betweenness
}

// Option represents a functional option for configuring Analyze.
type Option func(*Options)

// WithTopN sets the length of the Pivots and Piliers lists. Panics if n < 0.
func WithTopN(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadTopN.Error())
		}
		o.TopN = n
	}
}

// WithEpsilon sets the distance offset in 1/(weight + eps). Panics if eps < 0 or NaN.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithNormalizedBetweenness toggles betweenness normalization (default on).
func WithNormalizedBetweenness(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// DefaultOptions returns TopN = DefaultTopN, Epsilon = DefaultEpsilon, normalized betweenness.
func DefaultOptions() Options {
	return Options{TopN: DefaultTopN, Epsilon: DefaultEpsilon, Normalized: true}
}

// Analyze computes the leadership report of g. A legislator's group comes from
// groups, then from the vertex attribute core.AttrGroup, then defaults to
// votes.UnaffiliatedGroup. An empty graph yields an empty report.
//
// Errors:
//   - ErrNilGraph, and wrapped centrality errors.
func Analyze(g *core.Graph, groups map[string]string, opts ...Option) (*Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	degree, err := centrality.WeightedDegree(g)
	if err != nil {
		return nil, fmt.Errorf("leadership: %w", err)
	}
	between, err := centrality.Betweenness(g,
		centrality.WithDistance(centrality.InverseDistance(cfg.Epsilon)),
		centrality.WithNormalized(cfg.Normalized),
	)
	if err != nil {
		return nil, fmt.Errorf("leadership: %w", err)
	}

	groupOf := make(map[string]string, len(degree))
	members := make(map[string][]string)
	for _, id := range g.Vertices() { // sorted, so members are sorted too
		grp := resolveGroup(g, groups, id)
		groupOf[id] = grp
		members[grp] = append(members[grp], id)
	}

	rep := &Report{
		Pivots:        Rank(between, groupOf, cfg.TopN),
		Piliers:       Rank(degree, groupOf, cfg.TopN),
		IntraLeaders:  make(map[string]Entry),
		GlobalLeaders: make(map[string]Entry, len(members)),
	}
	for grp, ids := range members {
		id, score := argmax(ids, degree)
		rep.GlobalLeaders[grp] = Entry{ID: id, Group: grp, Score: score}

		if len(ids) < 2 {
			continue
		}
		keep := make(map[string]bool, len(ids))
		for _, m := range ids {
			keep[m] = true
		}
		intra, err := centrality.WeightedDegree(core.InducedSubgraph(g, keep))
		if err != nil {
			return nil, fmt.Errorf("leadership: group %q: %w", grp, err)
		}
		id, score = argmax(ids, intra)
		rep.IntraLeaders[grp] = Entry{ID: id, Group: grp, Score: score}
	}

	return rep, nil
}

// Rank orders scores descending (ties by id ascending) and keeps the first n.
func Rank(scores map[string]float64, groupOf map[string]string, n int) []Entry {
	out := make([]Entry, 0, len(scores))
	for id, s := range scores {
		out = append(out, Entry{ID: id, Group: groupOf[id], Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].ID < out[j].ID
	})
	if len(out) > n {
		out = out[:n]
	}

	return out
}

// argmax returns the first id (in the given sorted order) with the highest score.
func argmax(ids []string, scores map[string]float64) (string, float64) {
	best, bestScore := ids[0], scores[ids[0]]
	for _, id := range ids[1:] {
		if scores[id] > bestScore {
			best, bestScore = id, scores[id]
		}
	}

	return best, bestScore
}

func resolveGroup(g *core.Graph, groups map[string]string, id string) string {
	if grp := groups[id]; grp != "" {
		return grp
	}
	if grp, ok := g.VertexAttr(id, core.AttrGroup); ok && grp != "" {
		return grp
	}

	return votes.UnaffiliatedGroup
}
