// SPDX-License-Identifier: MIT

package votes_test

import "github.com/katalvlaran/hemicycle/votes"

func rec(leg, group string, p votes.Position, ballot int) votes.Record {
	return votes.Record{Legislator: leg, Group: group, Position: p, Ballot: ballot}
}

// sampleRecords: ballot 1 has 3 voters, ballot 2 has 2 voters + 1 absent, ballot 3 has 1 voter.
func sampleRecords() []votes.Record {
	return []votes.Record{
		rec("alice", "ECOLO", votes.PositionFor, 1),
		rec("bob", "RN", votes.PositionAgainst, 1),
		rec("carol", "LR", votes.PositionAbstain, 1),
		rec("alice", "ECOLO", votes.PositionFor, 2),
		rec("bob", "RN", votes.PositionAbsent, 2),
		rec("carol", "HOR", votes.PositionAgainst, 2),
		rec("dave", "LFI", votes.PositionFor, 3),
	}
}
