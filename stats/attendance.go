// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hemicycle/votes"
)

// LegislatorAttendance counts the ballots a legislator is recorded on.
// Every record counts as a presence, including an absent position: the
// dataset lists a legislator on a ballot only when the chamber roll had them.
type LegislatorAttendance struct {
	Legislator string  `json:"legislator" yaml:"legislator"`
	Group      string  `json:"group" yaml:"group"`
	Presences  int     `json:"presences" yaml:"presences"`
	Absences   int     `json:"absences" yaml:"absences"`
	Rate       float64 `json:"rate" yaml:"rate"` // presences / total ballots, in [0,1]
}

// GroupAttendance averages attendance over a group's members.
type GroupAttendance struct {
	Group         string  `json:"group" yaml:"group"`
	Members       int     `json:"members" yaml:"members"`
	MeanPresences float64 `json:"mean_presences" yaml:"mean_presences"`
	MeanRate      float64 `json:"mean_rate" yaml:"mean_rate"`
}

// AttendanceReport is the attendance summary of a corpus.
type AttendanceReport struct {
	TotalBallots int                    `json:"total_ballots" yaml:"total_ballots"`
	Legislators  []LegislatorAttendance `json:"legislators" yaml:"legislators"`
	MostPresent  []LegislatorAttendance `json:"most_present" yaml:"most_present"`
	MostAbsent   []LegislatorAttendance `json:"most_absent" yaml:"most_absent"`
	Groups       []GroupAttendance      `json:"groups" yaml:"groups"`
}

// Attendance measures presences against the number of distinct ballots in
// records. Legislators are listed by id; MostPresent / MostAbsent keep topN
// entries (ties by id); groups use each legislator's last-observed group.
func Attendance(records []votes.Record, topN int) AttendanceReport {
	ballots := make(map[int]struct{})
	presences := make(map[string]int)
	for _, r := range records {
		ballots[r.Ballot] = struct{}{}
		presences[r.Legislator]++
	}
	groups := votes.LastGroups(records)
	total := len(ballots)

	rep := AttendanceReport{TotalBallots: total}
	for leg, p := range presences {
		la := LegislatorAttendance{Legislator: leg, Group: groups[leg], Presences: p, Absences: total - p}
		if total > 0 {
			la.Rate = float64(p) / float64(total)
		}
		rep.Legislators = append(rep.Legislators, la)
	}
	sort.Slice(rep.Legislators, func(i, j int) bool { return rep.Legislators[i].Legislator < rep.Legislators[j].Legislator })

	rep.MostPresent = topBy(rep.Legislators, topN, func(a LegislatorAttendance) int { return a.Presences })
	rep.MostAbsent = topBy(rep.Legislators, topN, func(a LegislatorAttendance) int { return a.Absences })
	rep.Groups = groupAttendance(rep.Legislators)

	return rep
}

// topBy returns the first n entries by key descending; the input is sorted by id
// so a stable sort leaves ties in id order.
func topBy(in []LegislatorAttendance, n int, key func(LegislatorAttendance) int) []LegislatorAttendance {
	out := append([]LegislatorAttendance(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}

	return out
}

func groupAttendance(legs []LegislatorAttendance) []GroupAttendance {
	presences := make(map[string][]float64)
	rates := make(map[string][]float64)
	for _, la := range legs {
		presences[la.Group] = append(presences[la.Group], float64(la.Presences))
		rates[la.Group] = append(rates[la.Group], la.Rate)
	}
	out := make([]GroupAttendance, 0, len(presences))
	for g, ps := range presences {
		out = append(out, GroupAttendance{
			Group:         g,
			Members:       len(ps),
			MeanPresences: stat.Mean(ps, nil),
			MeanRate:      stat.Mean(rates[g], nil),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })

	return out
}
