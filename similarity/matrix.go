// SPDX-License-Identifier: MIT

package similarity

import "gonum.org/v1/gonum/mat"

// Matrix is a square symmetric similarity matrix indexed like the vote matrix rows.
type Matrix struct {
	method Method
	ids    []string
	index  map[string]int
	data   []float64 // row-major n×n
}

func newMatrix(method Method, ids []string) *Matrix {
	m := &Matrix{
		method: method,
		ids:    ids,
		index:  make(map[string]int, len(ids)),
		data:   make([]float64, len(ids)*len(ids)),
	}
	for i, id := range ids {
		m.index[id] = i
	}

	return m
}

// Method returns the metric that produced m.
func (m *Matrix) Method() Method { return m.method }

// Len returns the number of legislators.
func (m *Matrix) Len() int { return len(m.ids) }

// IDs returns legislator ids in row order (a copy).
func (m *Matrix) IDs() []string { return append([]string(nil), m.ids...) }

// Index returns the row of a legislator.
func (m *Matrix) Index(id string) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// At returns sim[i][j]. Panics if out of range.
func (m *Matrix) At(i, j int) float64 {
	n := len(m.ids)
	if i < 0 || i >= n || j < 0 || j >= n {
		panic("similarity: index out of range")
	}

	return m.data[i*n+j]
}

// Score returns the similarity between two legislators by id.
func (m *Matrix) Score(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}

	return m.At(i, j), true
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	n := len(m.ids)
	return append([]float64(nil), m.data[i*n:(i+1)*n]...)
}

// Map returns the keyed form legislator → legislator → score.
func (m *Matrix) Map() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(m.ids))
	for i, a := range m.ids {
		row := make(map[string]float64, len(m.ids))
		for j, b := range m.ids {
			row[b] = m.At(i, j)
		}
		out[a] = row
	}

	return out
}

// Dense returns a gonum copy of the matrix, or nil when Len() == 0.
func (m *Matrix) Dense() *mat.SymDense {
	n := len(m.ids)
	if n == 0 {
		return nil
	}

	return mat.NewSymDense(n, append([]float64(nil), m.data...))
}

// set writes a symmetric pair.
func (m *Matrix) set(i, j int, v float64) {
	n := len(m.ids)
	m.data[i*n+j] = v
	m.data[j*n+i] = v
}
