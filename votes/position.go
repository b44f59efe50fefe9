// SPDX-License-Identifier: MIT

package votes

import (
	"fmt"
	"strings"
)

// Position is the stance a legislator took on one ballot.
// The zero value is invalid.
type Position uint8

// Known positions.
const (
	PositionFor Position = iota + 1
	PositionAgainst
	PositionAbstain
	PositionAbsent
)

// Source tokens as emitted by the roll-call dataset.
const (
	TokenFor     = "pour"
	TokenAgainst = "contre"
	TokenAbstain = "abstention"
	TokenAbsent  = "nonVotant"
)

var positionTokens = map[string]Position{
	TokenFor:     PositionFor,
	TokenAgainst: PositionAgainst,
	TokenAbstain: PositionAbstain,
	TokenAbsent:  PositionAbsent,
}

var positionAliases = map[string]Position{
	"for":     PositionFor,
	"against": PositionAgainst,
	"abstain": PositionAbstain,
	"absent":  PositionAbsent,
}

// ParsePosition maps a free-text token to a Position.
// Dataset tokens (pour, contre, abstention, nonVotant) match exactly after
// trimming; English aliases (for, against, abstain, absent) match case-insensitively.
// Anything else fails with ErrUnknownPosition.
func ParsePosition(token string) (Position, error) {
	tok := strings.TrimSpace(token)
	if p, ok := positionTokens[tok]; ok {
		return p, nil
	}
	if p, ok := positionAliases[strings.ToLower(tok)]; ok {
		return p, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, token)
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	return p >= PositionFor && p <= PositionAbsent
}

// Value returns the numeric vote value and whether the cell is present.
// Absent (and invalid) positions report ok == false.
func (p Position) Value() (v float64, ok bool) {
	switch p {
	case PositionFor:
		return 1, true
	case PositionAgainst:
		return -1, true
	case PositionAbstain:
		return 0, true
	default:
		return 0, false
	}
}

// String returns the English alias of p.
func (p Position) String() string {
	switch p {
	case PositionFor:
		return "for"
	case PositionAgainst:
		return "against"
	case PositionAbstain:
		return "abstain"
	case PositionAbsent:
		return "absent"
	default:
		return fmt.Sprintf("Position(%d)", uint8(p))
	}
}
