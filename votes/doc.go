// SPDX-License-Identifier: MIT

// Package votes turns flat roll-call records into a legislator × ballot matrix.
//
// Each Record is one (legislator, ballot) pair. Positions map to numeric
// values: for → +1, against → −1, abstain → 0. An absent legislator produces a
// missing cell, which is tracked by an explicit presence mask and is never the
// same thing as an abstention.
//
// Build runs three steps in this order:
//
//  1. Optional restriction to a ballot subset (WithBallots).
//  2. Participation filter: ballots with fewer than min-voters non-absent
//     votes are dropped (WithMinVoters).
//  3. Pivot of the surviving records into a Matrix.
//
// Rows are legislators sorted ascending, columns are ballot ids sorted
// ascending. A filter that keeps nothing yields an empty Matrix, not an error.
//
// Example:
//
//	m, sum, err := votes.Build(records, votes.WithMinVoters(10))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d/%d ballots kept, %d legislators\n", sum.RetainedBallots, sum.TotalBallots, m.Rows())
package votes
