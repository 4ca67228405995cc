// Package eigen computes the power-iteration centrality family:
// eigenvector centrality, PageRank, and Katz centrality. All three share
// one solver (power.go) and differ only in the per-iteration update rule
// and the renormalization they apply.
package eigen

import "github.com/katalvlaran/centrality/core"

// Centrality computes eigenvector centrality: the dominant eigenvector
// of the (weighted) adjacency matrix, found by repeated multiplication
// and L2 renormalization. A vertex scores highly when its in-neighbors
// score highly, recursively.
//
//	x'[v] = Σ_{u→v} w(u,v) · x[u]
//
// On undirected graphs the sum runs over all incident edges. The graph
// must contain at least one edge; a graph whose iteration collapses to
// the zero vector (for example, a directed graph where every edge points
// out of a source layer no edge returns to) is rejected rather than
// scored arbitrarily.
//
// Errors:
//   - ErrNilGraph          if g is nil.
//   - ErrOptionViolation   for invalid options.
//   - ErrDegenerateGraph   if g has no edges or iteration hits zero.
//   - ErrNoConvergence     if MaxIter passes without settling.
func Centrality(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g.EdgeCount() == 0 {
		return nil, ErrDegenerateGraph
	}

	in, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	return iterate(in, adjacencyStep, l2norm, o.MaxIter, o.Tol)
}

// adjacencyStep is one multiplication by I+A rather than the bare
// adjacency matrix A: keeping each vertex's previous value shifts the
// spectrum so bipartite graphs (stars, even cycles) do not oscillate
// forever, while leaving the eigenvectors — and therefore the returned
// scores — unchanged.
func adjacencyStep(in *inbound, prev, next map[string]float64) {
	for _, v := range in.ids {
		sum := prev[v]
		for _, e := range in.edges[v] {
			sum += e.Weight * prev[e.From]
		}
		next[v] = sum
	}
}
