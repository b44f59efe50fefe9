// SPDX-License-Identifier: MIT

package centrality

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hemicycle/core"
)

// Options configures Betweenness.
type Options struct {
	Distance   func(weight float64) float64 // edge weight → path length
	Normalized bool                         // divide by (n-1)(n-2) for n > 2
}

// Option represents a functional option for configuring Betweenness.
type Option func(*Options)

// WithDistance sets the weight → distance transform (nil resets to identity).
func WithDistance(fn func(weight float64) float64) Option {
	return func(o *Options) {
		if fn == nil {
			fn = identity
		}
		o.Distance = fn
	}
}

// WithNormalized toggles normalization.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// DefaultOptions returns identity distances and normalized scores.
func DefaultOptions() Options {
	return Options{Distance: identity, Normalized: true}
}

func identity(w float64) float64 { return w }

// InverseDistance returns the transform 1/(w + eps): high-weight edges become short.
// Panics if eps is negative or NaN.
func InverseDistance(eps float64) func(float64) float64 {
	if eps < 0 || math.IsNaN(eps) {
		panic(ErrBadEpsilon.Error())
	}

	return func(w float64) float64 { return 1 / (w + eps) }
}

// Betweenness computes shortest-path betweenness centrality for every vertex.
//
// Scaling follows the usual convention: for undirected graphs the raw score is
// halved (each pair is discovered from both ends) unless Normalized, in which
// case it is divided by (n-1)(n-2) when n > 2, i.e. the fraction of vertex
// pairs whose shortest paths cross the vertex.
//
// Errors:
//   - ErrNilGraph.
//   - ErrNegativeDistance if a transformed edge length is negative or NaN.
func Betweenness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	dg := core.WeightView(g, cfg.Distance)
	for _, e := range dg.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %s–%s distance=%v", ErrNegativeDistance, e.From, e.To, e.Weight)
		}
	}

	ids := dg.Vertices()
	bc := make(map[string]float64, len(ids))
	for _, id := range ids {
		bc[id] = 0
	}

	for _, s := range ids {
		sp, err := shortestPaths(dg, s, len(ids))
		if err != nil {
			return nil, err
		}
		sp.accumulate(bc)
	}

	rescale(bc, len(ids), cfg.Normalized, g.Directed())

	return bc, nil
}

// spResult is one source's contribution: visit order, predecessors and path counts.
type spResult struct {
	source string
	order  []string // vertices in non-decreasing distance
	preds  map[string][]string
	sigma  map[string]float64
}

// shortestPaths runs Dijkstra from s counting shortest paths (Brandes stage 1).
func shortestPaths(g *core.Graph, s string, n int) (*spResult, error) {
	r := &spResult{
		source: s,
		order:  make([]string, 0, n),
		preds:  make(map[string][]string, n),
		sigma:  map[string]float64{s: 1},
	}
	dist := map[string]float64{s: 0}
	done := make(map[string]bool, n)

	pq := &distPQ{}
	var seq uint64
	heap.Push(pq, &distItem{id: s, dist: 0, seq: seq})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*distItem)
		v := item.id
		if done[v] {
			continue // stale entry
		}
		done[v] = true
		r.order = append(r.order, v)

		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("centrality: neighbors of %q: %w", v, err)
		}
		for _, e := range edges {
			w := e.Other(v)
			if w == v || done[w] || math.IsInf(e.Weight, 1) {
				continue
			}
			alt := dist[v] + e.Weight
			cur, seen := dist[w]
			switch {
			case !seen || alt < cur:
				dist[w] = alt
				r.sigma[w] = r.sigma[v]
				r.preds[w] = []string{v}
				seq++
				heap.Push(pq, &distItem{id: w, dist: alt, seq: seq})
			case alt == cur:
				r.sigma[w] += r.sigma[v]
				r.preds[w] = append(r.preds[w], v)
			}
		}
	}

	return r, nil
}

// accumulate back-propagates dependencies into bc (Brandes stage 2).
func (r *spResult) accumulate(bc map[string]float64) {
	delta := make(map[string]float64, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		w := r.order[i]
		coeff := (1 + delta[w]) / r.sigma[w]
		for _, v := range r.preds[w] {
			delta[v] += r.sigma[v] * coeff
		}
		if w != r.source {
			bc[w] += delta[w]
		}
	}
}

func rescale(bc map[string]float64, n int, normalized, directed bool) {
	var scale float64
	switch {
	case normalized && n > 2:
		scale = 1 / float64((n-1)*(n-2))
	case normalized:
		return
	case !directed:
		scale = 0.5
	default:
		return
	}
	for id := range bc {
		bc[id] *= scale
	}
}

// distItem is a heap entry; seq breaks distance ties by push order.
type distItem struct {
	id   string
	dist float64
	seq  uint64
}

type distPQ []*distItem

func (pq distPQ) Len() int { return len(pq) }
func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
