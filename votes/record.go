// SPDX-License-Identifier: MIT

package votes

// UnaffiliatedGroup is assigned to legislators whose records carry no group.
const UnaffiliatedGroup = "NI"

// Record is one legislator's position on one ballot.
// (Legislator, Ballot) is a natural key.
type Record struct {
	Legislator string
	Group      string
	Position   Position
	Ballot     int
}

type voteKey struct {
	legislator string
	ballot     int
}

// LastGroups returns, for every legislator in records, the group carried by
// the record with the highest ballot id. Empty groups become UnaffiliatedGroup.
func LastGroups(records []Record) map[string]string {
	latest := make(map[string]int, len(records))
	out := make(map[string]string, len(records))
	for _, r := range records {
		if b, seen := latest[r.Legislator]; seen && b > r.Ballot {
			continue
		}
		latest[r.Legislator] = r.Ballot
		out[r.Legislator] = normalizeGroup(r.Group)
	}

	return out
}

func normalizeGroup(g string) string {
	if g == "" {
		return UnaffiliatedGroup
	}

	return g
}
