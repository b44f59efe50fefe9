// SPDX-License-Identifier: MIT

package votes

import "errors"

// Sentinel errors returned by Build and ParsePosition.
var (
	// ErrUnknownPosition indicates a position token (or value) that maps to no vote.
	ErrUnknownPosition = errors.New("votes: unknown position")

	// ErrDuplicateVote indicates two records share the same (legislator, ballot) key.
	ErrDuplicateVote = errors.New("votes: duplicate vote for legislator and ballot")

	// ErrEmptyLegislator indicates a record without legislator id.
	ErrEmptyLegislator = errors.New("votes: legislator id is empty")

	// ErrBadMinVoters indicates a negative minimum-voters threshold.
	ErrBadMinVoters = errors.New("votes: min voters must be non-negative")
)
