// SPDX-License-Identifier: MIT

// Package knn derives a sparse weighted undirected graph from a similarity matrix.
//
// Every legislator independently picks its k most similar peers (itself
// excluded). Each pick becomes an undirected edge weighted by Transform(sim);
// picks with a non-positive weight are skipped. When A picks B and B later
// picks A the edge already exists and is left untouched, so the first
// direction's weight wins and no pair is doubled.
//
// Selection is per node, so degrees are not k-regular: a popular legislator
// can collect many more than k edges while an outlier nobody picks keeps at
// most its own k.
//
// Determinism: nodes are visited in similarity-matrix row order; equal
// similarities are ranked by row order too.
//
// Complexity: O(L² log L) time, O(L·k) edges.
package knn

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hemicycle/core"
	"github.com/katalvlaran/hemicycle/similarity"
	"github.com/katalvlaran/hemicycle/votes"
)

// Sentinel errors returned by Build.
var (
	// ErrNilMatrix indicates a nil similarity matrix.
	ErrNilMatrix = errors.New("knn: similarity matrix is nil")

	// ErrBadK indicates a non-positive neighbor count.
	ErrBadK = errors.New("knn: k must be positive")

	// ErrUnknownTransform indicates an unsupported transform name.
	ErrUnknownTransform = errors.New("knn: unknown weight transform")
)

// DefaultK is the neighbor count used when WithK is not given.
const DefaultK = 10

// Transform maps a similarity to an edge weight. It must be monotonic
// non-decreasing so that ranking is unaffected.
type Transform func(sim float64) float64

// Identity keeps the similarity as the weight.
func Identity(sim float64) float64 { return sim }

// Cube sharpens the contrast between strong and weak ties.
func Cube(sim float64) float64 { return sim * sim * sim }

// ParseTransform resolves "identity" or "cube".
func ParseTransform(name string) (Transform, error) {
	switch name {
	case "", "identity":
		return Identity, nil
	case "cube":
		return Cube, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
}

// Options configures Build.
type Options struct {
	K         int
	Transform Transform
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithK sets the number of neighbors each node picks. Panics if k <= 0.
func WithK(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			panic(ErrBadK.Error())
		}
		o.K = k
	}
}

// WithTransform sets the similarity → weight transform (nil resets to Identity).
func WithTransform(fn Transform) Option {
	return func(o *Options) {
		if fn == nil {
			fn = Identity
		}
		o.Transform = fn
	}
}

// DefaultOptions returns K = DefaultK and the Identity transform.
func DefaultOptions() Options {
	return Options{K: DefaultK, Transform: Identity}
}

// Build constructs the k-NN graph of sim. Every legislator of sim becomes a
// vertex, isolated or not, carrying core.AttrGroup from groups (missing or
// empty entries get votes.UnaffiliatedGroup).
//
// Errors:
//   - ErrNilMatrix: sim is nil.
//   - wrapped core errors (not expected for valid input).
func Build(sim *similarity.Matrix, groups map[string]string, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if sim == nil {
		return nil, ErrNilMatrix
	}
	if cfg.K <= 0 {
		return nil, ErrBadK
	}

	g := core.NewGraph(core.WithWeighted())
	ids := sim.IDs()
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("knn: vertex %q: %w", id, err)
		}
		grp := groups[id]
		if grp == "" {
			grp = votes.UnaffiliatedGroup
		}
		if err := g.SetVertexAttr(id, core.AttrGroup, grp); err != nil {
			return nil, fmt.Errorf("knn: vertex %q: %w", id, err)
		}
	}

	for i, id := range ids {
		for _, j := range TopK(sim, i, cfg.K) {
			w := cfg.Transform(sim.At(i, j))
			if !(w > 0) || math.IsInf(w, 0) {
				continue
			}
			if g.HasEdge(id, ids[j]) {
				continue // first direction wins
			}
			if _, err := g.AddEdge(id, ids[j], w); err != nil {
				return nil, fmt.Errorf("knn: edge %q–%q: %w", id, ids[j], err)
			}
		}
	}

	return g, nil
}

// TopK returns the row indices of the k highest similarities in row i,
// excluding i, ordered by similarity descending then by index ascending.
func TopK(sim *similarity.Matrix, i, k int) []int {
	n := sim.Len()
	cand := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if j != i {
			cand = append(cand, j)
		}
	}
	sort.SliceStable(cand, func(a, b int) bool {
		return sim.At(i, cand[a]) > sim.At(i, cand[b])
	})
	if len(cand) > k {
		cand = cand[:k]
	}

	return cand
}
