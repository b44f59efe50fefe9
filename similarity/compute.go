// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hemicycle/votes"
)

// Compute builds the similarity matrix of vm under method.
//
// Returns:
//   - *Matrix indexed like vm's rows; empty (Len()==0) when vm has no rows.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownMethod.
//
// Complexity: O(L²·B) time, O(L² + W·B) memory for W workers.
func Compute(vm *votes.Matrix, method Method, opts ...Option) (*Matrix, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if vm == nil {
		return nil, ErrNilMatrix
	}
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}

	out := newMatrix(method, vm.Legislators())
	n := out.Len()
	if n == 0 {
		return out, nil
	}

	k := newKernel(vm, method, cfg.MinCommonVotes)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			s := k.scratch()
			out.set(i, i, k.self(i))
			for j := i + 1; j < n; j++ {
				out.set(i, j, k.pair(i, j, s))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("similarity: %s: %w", method, err)
	}

	return out, nil
}

// kernel evaluates one method over a vote matrix.
type kernel struct {
	vm        *votes.Matrix
	method    Method
	minCommon int
	norms     []float64 // cosine only
}

// pairBuf holds per-goroutine gather buffers for correlation.
type pairBuf struct {
	x, y []float64
}

func newKernel(vm *votes.Matrix, method Method, minCommon int) *kernel {
	k := &kernel{vm: vm, method: method, minCommon: minCommon}
	if method == Cosine {
		k.norms = make([]float64, vm.Rows())
		for i := range k.norms {
			vals, _ := vm.RowView(i)
			k.norms[i] = floats.Norm(vals, 2)
		}
	}

	return k
}

func (k *kernel) scratch() *pairBuf {
	if k.method != Correlation {
		return nil
	}

	return &pairBuf{x: make([]float64, 0, k.vm.Cols()), y: make([]float64, 0, k.vm.Cols())}
}

// self returns the diagonal value of row i.
func (k *kernel) self(i int) float64 {
	if k.method == Cosine {
		return k.cosine(i, i)
	}

	return 1
}

func (k *kernel) pair(i, j int, s *pairBuf) float64 {
	switch k.method {
	case Cosine:
		return k.cosine(i, j)
	case Correlation:
		return k.correlation(i, j, s)
	case Jaccard:
		return k.jaccard(i, j)
	default:
		return k.agreement(i, j)
	}
}

func (k *kernel) cosine(i, j int) float64 {
	if k.norms[i] == 0 || k.norms[j] == 0 {
		return 0
	}
	a, _ := k.vm.RowView(i)
	b, _ := k.vm.RowView(j)

	return clamp(floats.Dot(a, b)/(k.norms[i]*k.norms[j]), -1, 1)
}

func (k *kernel) correlation(i, j int, s *pairBuf) float64 {
	a, pa := k.vm.RowView(i)
	b, pb := k.vm.RowView(j)
	s.x, s.y = s.x[:0], s.y[:0]
	for c := range a {
		if pa[c] && pb[c] {
			s.x = append(s.x, a[c])
			s.y = append(s.y, b[c])
		}
	}
	if len(s.x) < 2 {
		return 0
	}

	return clamp(stat.Correlation(s.x, s.y, nil), -1, 1)
}

func (k *kernel) jaccard(i, j int) float64 {
	a, pa := k.vm.RowView(i)
	b, pb := k.vm.RowView(j)
	matches, union, common := 0, 0, 0
	for c := range a {
		if pa[c] || pb[c] {
			union++
		}
		if pa[c] && pb[c] {
			common++
			if a[c] == b[c] {
				matches++
			}
		}
	}
	if common < k.minCommon || union == 0 {
		return 0
	}

	return float64(matches) / float64(union)
}

func (k *kernel) agreement(i, j int) float64 {
	a, pa := k.vm.RowView(i)
	b, pb := k.vm.RowView(j)
	equal, common := 0, 0
	for c := range a {
		if !pa[c] || !pb[c] {
			continue
		}
		common++
		if a[c] == b[c] {
			equal++
		}
	}
	if common < k.minCommon || common == 0 {
		return 0
	}

	return float64(equal) / float64(common)
}

// clamp maps NaN to 0 and bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
