// SPDX-License-Identifier: MIT

package similarity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemicycle/votes"
)

// workedExample: A=[+1,−1,+1,+1,·,·], B=[+1,−1,−1,·,+1,·] over ballots 1..6.
func workedExample(t *testing.T) *votes.Matrix {
	t.Helper()
	A := []votes.Position{votes.PositionFor, votes.PositionAgainst, votes.PositionFor, votes.PositionFor, votes.PositionAbsent, votes.PositionAbsent}
	B := []votes.Position{votes.PositionFor, votes.PositionAgainst, votes.PositionAgainst, votes.PositionAbsent, votes.PositionFor, votes.PositionAbsent}
	var recs []votes.Record
	for s := 0; s < 6; s++ {
		recs = append(recs,
			votes.Record{Legislator: "A", Group: "G", Position: A[s], Ballot: s + 1},
			votes.Record{Legislator: "B", Group: "G", Position: B[s], Ballot: s + 1},
		)
	}
	m, _, err := votes.Build(recs)
	require.NoError(t, err)

	return m
}

// randomMatrix builds a seeded sparse vote matrix with n legislators and b ballots.
func randomMatrix(t *testing.T, seed int64, n, b int) *votes.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	positions := []votes.Position{votes.PositionFor, votes.PositionAgainst, votes.PositionAbstain, votes.PositionAbsent}
	var recs []votes.Record
	for i := 0; i < n; i++ {
		for s := 0; s < b; s++ {
			if rng.Float64() < 0.15 {
				continue // no record at all
			}
			recs = append(recs, votes.Record{
				Legislator: string(rune('a'+i%26)) + string(rune('a'+i/26)),
				Group:      "G",
				Position:   positions[rng.Intn(len(positions))],
				Ballot:     s,
			})
		}
	}
	m, _, err := votes.Build(recs)
	require.NoError(t, err)

	return m
}

// lineUp builds a matrix from explicit rows; nil entries are absent.
func lineUp(t *testing.T, rows map[string][]*votes.Position) *votes.Matrix {
	t.Helper()
	var recs []votes.Record
	for leg, row := range rows {
		for s, p := range row {
			pos := votes.PositionAbsent
			if p != nil {
				pos = *p
			}
			recs = append(recs, votes.Record{Legislator: leg, Group: "G", Position: pos, Ballot: s})
		}
	}
	m, _, err := votes.Build(recs)
	require.NoError(t, err)

	return m
}

func pos(p votes.Position) *votes.Position { return &p }
