// SPDX-License-Identifier: MIT

// Package stats summarizes a roll-call corpus and its similarity matrix:
// participation per ballot, attendance per legislator and group, group
// headcounts and the off-diagonal similarity distribution.
//
// Descriptive statistics use gonum/stat: sample standard deviation and
// quantiles with stat.LinInterp.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hemicycle/similarity"
	"github.com/katalvlaran/hemicycle/votes"
)

// Distribution is a describe()-style summary of a sample.
type Distribution struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Median float64 `json:"median" yaml:"median"`
	Q3     float64 `json:"q3" yaml:"q3"`
	Max    float64 `json:"max" yaml:"max"`
}

// Describe summarizes xs. An empty sample gives the zero Distribution;
// a single value has Std 0.
func Describe(xs []float64) Distribution {
	if len(xs) == 0 {
		return Distribution{}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	d := Distribution{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.LinInterp, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}

	return d
}

// Participation describes the number of distinct legislators recorded per ballot.
func Participation(records []votes.Record) Distribution {
	perBallot := make(map[int]map[string]struct{})
	for _, r := range records {
		if perBallot[r.Ballot] == nil {
			perBallot[r.Ballot] = make(map[string]struct{})
		}
		perBallot[r.Ballot][r.Legislator] = struct{}{}
	}
	counts := make([]float64, 0, len(perBallot))
	for _, legs := range perBallot {
		counts = append(counts, float64(len(legs)))
	}

	return Describe(counts)
}

// Similarity describes the upper off-diagonal scores of sim.
func Similarity(sim *similarity.Matrix) Distribution {
	if sim == nil {
		return Distribution{}
	}
	n := sim.Len()
	xs := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			xs = append(xs, sim.At(i, j))
		}
	}

	return Describe(xs)
}

// GroupSize is a group headcount.
type GroupSize struct {
	Group string `json:"group" yaml:"group"`
	Count int    `json:"count" yaml:"count"`
}

// GroupSizes counts legislators per group (legislator → group lookup),
// ordered by count descending then group ascending.
func GroupSizes(groups map[string]string) []GroupSize {
	counts := make(map[string]int)
	for _, g := range groups {
		counts[g]++
	}
	out := make([]GroupSize, 0, len(counts))
	for g, c := range counts {
		out = append(out, GroupSize{Group: g, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Group < out[j].Group
	})

	return out
}
