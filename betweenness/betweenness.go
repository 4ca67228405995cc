// Package betweenness computes betweenness centrality: the fraction of
// all-pairs shortest paths that pass through a given vertex or edge.
//
// The implementation is Brandes' accumulation: one shortest-path run per
// source s (delegated to the paths engine, so weighted and unweighted
// graphs both work), followed by a single backward pass over the visit
// order that folds pair dependencies
//
//	delta(v) = Σ_{w: v ∈ Pred(w)} Count(v)/Count(w) · (1 + delta(w))
//
// from the farthest vertex toward s. This avoids enumerating individual
// paths entirely. On undirected graphs every shortest path is discovered
// once from each endpoint, so accumulated scores are halved.
//
// Complexity: O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted; O(V+E)
// transient space per source.
package betweenness

import (
	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/paths"
)

// Centrality computes the betweenness score of every vertex of g.
//
// With normalization on (the default) scores are divided by
// (n-1)(n-2) on directed graphs and (n-1)(n-2)/2 on undirected ones;
// graphs with fewer than three vertices have no intermediary positions
// and return all-zero scores.
//
// Errors:
//   - ErrNilGraph               if g is nil.
//   - ErrOptionViolation        for invalid options.
//   - paths.ErrNegativeWeight   if any edge weight is negative.
//   - ctx.Err()                 if the context is cancelled mid-run.
func Centrality(g *core.Graph, opts ...Option) (map[string]float64, error) {
	acc, err := accumulate(g, false, opts)
	if err != nil {
		return nil, err
	}

	return acc.nodes, nil
}

// EdgeCentrality computes the betweenness score of every edge of g:
// the same Brandes accumulation, with dependency mass recorded on the
// traversed edge rather than on the intermediate vertex. Normalization
// divides by the n(n-1) ordered pairs (n(n-1)/2 unordered when the
// graph is undirected).
//
// Errors: as for Centrality.
func EdgeCentrality(g *core.Graph, opts ...Option) (map[EdgeKey]float64, error) {
	acc, err := accumulate(g, true, opts)
	if err != nil {
		return nil, err
	}

	return acc.edges, nil
}

// accumulator carries the running node and edge scores across sources.
type accumulator struct {
	nodes map[string]float64
	edges map[EdgeKey]float64
}

// accumulate drives the per-source Brandes passes and applies the final
// halving and normalization.
func accumulate(g *core.Graph, wantEdges bool, opts []Option) (*accumulator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ids := g.Vertices()
	n := len(ids)
	directed := g.Directed()

	acc := &accumulator{nodes: make(map[string]float64, n)}
	for _, id := range ids {
		acc.nodes[id] = 0
	}
	if wantEdges {
		acc.edges = make(map[EdgeKey]float64, g.EdgeCount())
		for _, e := range g.Edges() {
			acc.edges[edgeKey(e.From, e.To, directed)] = 0
		}
	}

	for _, s := range ids {
		// cancellation check once per source
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		res, err := paths.FromSource(g, s, paths.WithEpsilon(o.Eps))
		if err != nil {
			return nil, err
		}
		acc.backProp(s, res, directed, wantEdges)
	}

	acc.finalize(n, directed, o.Normalized, wantEdges)

	return acc, nil
}

// backProp walks one source's visit order backwards, folding pair
// dependencies onto predecessors (and, in edge mode, onto the edges
// carrying them).
func (a *accumulator) backProp(s string, res *paths.Result, directed, wantEdges bool) {
	delta := make(map[string]float64, len(res.Order))
	for i := len(res.Order) - 1; i >= 0; i-- {
		w := res.Order[i]
		coeff := (1 + delta[w]) / res.Count[w]
		for _, v := range res.Pred[w] {
			c := res.Count[v] * coeff
			delta[v] += c
			if wantEdges {
				a.edges[edgeKey(v, w, directed)] += c
			}
		}
		if w != s {
			a.nodes[w] += delta[w]
		}
	}
}

// finalize halves undirected scores (each path was counted from both
// endpoints) and applies pair-count normalization.
func (a *accumulator) finalize(n int, directed, normalized, wantEdges bool) {
	half := !directed

	var nodeDenom float64
	switch {
	case !normalized || n < 3:
		nodeDenom = 1
	case directed:
		nodeDenom = float64((n - 1) * (n - 2))
	default:
		nodeDenom = float64((n-1)*(n-2)) / 2
	}
	for id := range a.nodes {
		if half {
			a.nodes[id] /= 2
		}
		a.nodes[id] /= nodeDenom
	}

	if !wantEdges {
		return
	}
	var edgeDenom float64
	switch {
	case !normalized || n < 2:
		edgeDenom = 1
	case directed:
		edgeDenom = float64(n * (n - 1))
	default:
		edgeDenom = float64(n*(n-1)) / 2
	}
	for k := range a.edges {
		if half {
			a.edges[k] /= 2
		}
		a.edges[k] /= edgeDenom
	}
}
