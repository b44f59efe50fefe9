// SPDX-License-Identifier: MIT

package votes

import "gonum.org/v1/gonum/mat"

// Matrix is an immutable legislator × ballot vote matrix.
//
// values is row-major with missing cells stored as 0; present is the parallel
// mask telling a real abstention (present, 0) from an absence (missing).
type Matrix struct {
	legislators []string
	ballots     []int
	rowIndex    map[string]int
	colIndex    map[int]int
	values      []float64
	present     []bool
	groups      map[string]string
}

// Rows returns the number of legislators.
func (m *Matrix) Rows() int { return len(m.legislators) }

// Cols returns the number of ballots.
func (m *Matrix) Cols() int { return len(m.ballots) }

// Empty reports whether the matrix has no rows or no columns.
func (m *Matrix) Empty() bool { return m.Rows() == 0 || m.Cols() == 0 }

// Legislators returns the row ids in row order (a copy).
func (m *Matrix) Legislators() []string {
	return append([]string(nil), m.legislators...)
}

// Ballots returns the column ids in column order (a copy).
func (m *Matrix) Ballots() []int {
	return append([]int(nil), m.ballots...)
}

// RowOf returns the row index of a legislator.
func (m *Matrix) RowOf(legislator string) (int, bool) {
	i, ok := m.rowIndex[legislator]
	return i, ok
}

// ColOf returns the column index of a ballot.
func (m *Matrix) ColOf(ballot int) (int, bool) {
	j, ok := m.colIndex[ballot]
	return j, ok
}

// At returns the cell (i, j). ok is false for a missing vote.
// Panics if i or j is out of range.
func (m *Matrix) At(i, j int) (v float64, ok bool) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		panic("votes: index out of range")
	}
	k := i*len(m.ballots) + j

	return m.values[k], m.present[k]
}

// RowView exposes row i: zero-filled values and the presence mask.
// The slices alias internal storage and must not be modified.
func (m *Matrix) RowView(i int) (values []float64, present []bool) {
	c := len(m.ballots)
	return m.values[i*c : (i+1)*c : (i+1)*c], m.present[i*c : (i+1)*c : (i+1)*c]
}

// PresentCount returns the number of non-missing cells in row i.
func (m *Matrix) PresentCount(i int) int {
	_, present := m.RowView(i)
	n := 0
	for _, p := range present {
		if p {
			n++
		}
	}

	return n
}

// Group returns the last-observed group of a legislator.
func (m *Matrix) Group(legislator string) (string, bool) {
	g, ok := m.groups[legislator]
	return g, ok
}

// Groups returns a copy of the legislator → group lookup.
func (m *Matrix) Groups() map[string]string {
	out := make(map[string]string, len(m.groups))
	for k, v := range m.groups {
		out[k] = v
	}

	return out
}

// Dense returns the zero-filled values as a gonum matrix, or nil when Empty.
func (m *Matrix) Dense() *mat.Dense {
	if m.Empty() {
		return nil
	}

	return mat.NewDense(m.Rows(), m.Cols(), append([]float64(nil), m.values...))
}
