// SPDX-License-Identifier: MIT

package votes

import (
	"fmt"
	"sort"
)

// Options configures Build.
type Options struct {
	MinVoters int          // ballots need at least this many non-absent votes
	Ballots   map[int]bool // optional subset of ballots to consider; nil = all
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithMinVoters sets the participation threshold. Panics on a negative value.
func WithMinVoters(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMinVoters.Error())
		}
		o.MinVoters = n
	}
}

// WithBallots restricts Build to the given ballot ids (applied before the
// participation filter). Calling it with no ids keeps nothing.
func WithBallots(ids ...int) Option {
	return func(o *Options) {
		o.Ballots = make(map[int]bool, len(ids))
		for _, id := range ids {
			o.Ballots[id] = true
		}
	}
}

// DefaultOptions returns Options with MinVoters = 0 and no ballot subset.
func DefaultOptions() Options {
	return Options{}
}

// Summary reports what the participation filter kept.
type Summary struct {
	TotalBallots    int `json:"total_ballots" yaml:"total_ballots"`       // distinct ballots after the optional subset
	RetainedBallots int `json:"retained_ballots" yaml:"retained_ballots"` // ballots reaching MinVoters
	TotalRecords    int `json:"total_records" yaml:"total_records"`
	RetainedRecords int `json:"retained_records" yaml:"retained_records"`
	Legislators     int `json:"legislators" yaml:"legislators"` // rows of the resulting matrix
}

// Build validates records, filters ballots by participation and pivots the
// remainder into a Matrix.
//
// Errors:
//   - ErrEmptyLegislator: a record without legislator.
//   - ErrUnknownPosition: a record whose Position is not valid.
//   - ErrDuplicateVote: two records with the same (legislator, ballot).
//
// Complexity: O(R + L·B) time, O(L·B) memory.
func Build(records []Record, opts ...Option) (*Matrix, Summary, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinVoters < 0 {
		return nil, Summary{}, ErrBadMinVoters
	}

	// 1) Validate and restrict to the ballot subset.
	scoped := make([]Record, 0, len(records))
	seen := make(map[voteKey]struct{}, len(records))
	for idx, r := range records {
		if r.Legislator == "" {
			return nil, Summary{}, fmt.Errorf("record %d: %w", idx, ErrEmptyLegislator)
		}
		if !r.Position.Valid() {
			return nil, Summary{}, fmt.Errorf("record %d (%s, ballot %d): %w", idx, r.Legislator, r.Ballot, ErrUnknownPosition)
		}
		k := voteKey{legislator: r.Legislator, ballot: r.Ballot}
		if _, dup := seen[k]; dup {
			return nil, Summary{}, fmt.Errorf("record %d (%s, ballot %d): %w", idx, r.Legislator, r.Ballot, ErrDuplicateVote)
		}
		seen[k] = struct{}{}
		if cfg.Ballots != nil && !cfg.Ballots[r.Ballot] {
			continue
		}
		scoped = append(scoped, r)
	}

	// 2) Participation filter, before pivoting.
	voters := make(map[int]int)
	for _, r := range scoped {
		if _, ok := r.Position.Value(); ok {
			voters[r.Ballot]++
		} else if _, known := voters[r.Ballot]; !known {
			voters[r.Ballot] = 0
		}
	}
	retained := make([]Record, 0, len(scoped))
	for _, r := range scoped {
		if voters[r.Ballot] >= cfg.MinVoters {
			retained = append(retained, r)
		}
	}

	// 3) Pivot.
	m := pivot(retained)
	sum := Summary{
		TotalBallots:    len(voters),
		RetainedBallots: m.Cols(),
		TotalRecords:    len(scoped),
		RetainedRecords: len(retained),
		Legislators:     m.Rows(),
	}

	return m, sum, nil
}

// pivot lays retained records out as a matrix with sorted rows and columns.
func pivot(records []Record) *Matrix {
	rowSet := make(map[string]struct{})
	colSet := make(map[int]struct{})
	for _, r := range records {
		rowSet[r.Legislator] = struct{}{}
		colSet[r.Ballot] = struct{}{}
	}

	m := &Matrix{
		legislators: make([]string, 0, len(rowSet)),
		ballots:     make([]int, 0, len(colSet)),
		rowIndex:    make(map[string]int, len(rowSet)),
		colIndex:    make(map[int]int, len(colSet)),
		groups:      LastGroups(records),
	}
	for id := range rowSet {
		m.legislators = append(m.legislators, id)
	}
	for id := range colSet {
		m.ballots = append(m.ballots, id)
	}
	sort.Strings(m.legislators)
	sort.Ints(m.ballots)
	for i, id := range m.legislators {
		m.rowIndex[id] = i
	}
	for j, id := range m.ballots {
		m.colIndex[id] = j
	}

	c := len(m.ballots)
	m.values = make([]float64, len(m.legislators)*c)
	m.present = make([]bool, len(m.legislators)*c)
	for _, r := range records {
		v, ok := r.Position.Value()
		if !ok {
			continue // absent stays missing
		}
		k := m.rowIndex[r.Legislator]*c + m.colIndex[r.Ballot]
		m.values[k] = v
		m.present[k] = true
	}

	return m
}
