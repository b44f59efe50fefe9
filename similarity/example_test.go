// SPDX-License-Identifier: MIT

package similarity_test

import (
	"fmt"

	"github.com/katalvlaran/hemicycle/similarity"
	"github.com/katalvlaran/hemicycle/votes"
)

// ExampleCompute scores two legislators on six ballots under every method.
// With the default co-presence floor of 5, Jaccard and agreement give 0.
func ExampleCompute() {
	a := []votes.Position{votes.PositionFor, votes.PositionAgainst, votes.PositionFor, votes.PositionFor, votes.PositionAbsent, votes.PositionAbsent}
	b := []votes.Position{votes.PositionFor, votes.PositionAgainst, votes.PositionAgainst, votes.PositionAbsent, votes.PositionFor, votes.PositionAbsent}
	var recs []votes.Record
	for s := range a {
		recs = append(recs,
			votes.Record{Legislator: "A", Group: "G", Position: a[s], Ballot: s + 1},
			votes.Record{Legislator: "B", Group: "G", Position: b[s], Ballot: s + 1},
		)
	}
	vm, _, err := votes.Build(recs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, m := range similarity.Methods() {
		sim, err := similarity.Compute(vm, m)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		score, _ := sim.Score("A", "B")
		fmt.Printf("%s: %.2f\n", m, score)
	}
	// Output:
	// cosine: 0.25
	// correlation: 0.50
	// jaccard: 0.00
	// agreement_weighted: 0.00
}
