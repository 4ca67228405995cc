// File: katz.go
// Role: Katz centrality on top of the shared power-iteration core:
//       attenuated adjacency update plus a uniform baseline term.

package eigen

import "github.com/katalvlaran/centrality/core"

// Katz computes Katz centrality: every vertex receives a baseline score
// beta, plus an alpha-attenuated share of its in-neighbors' scores, so
// long indirect connections still contribute, just exponentially less:
//
//	x'[v] = alpha · Σ_{u→v} w(u,v) · x[u] + beta
//
// with L2 renormalization each iteration. Convergence requires
// alpha < 1/λ₁ where λ₁ is the spectral radius of the adjacency matrix;
// the implementation does not verify this — choosing alpha is the
// caller's responsibility, and a too-aggressive value surfaces as
// ErrNoConvergence. Defaults: alpha DefaultAlpha, beta DefaultBeta.
//
// Unlike eigenvector centrality, the beta term keeps isolated and
// edge-free vertices at a non-zero score, so Katz is well defined on any
// non-empty graph.
//
// Errors:
//   - ErrNilGraph          if g is nil.
//   - ErrOptionViolation   for invalid options (negative alpha).
//   - ErrDegenerateGraph   if renormalization hits a zero vector
//     (possible only with beta == 0).
//   - ErrNoConvergence     if MaxIter passes without settling.
func Katz(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g.VertexCount() == 0 {
		return map[string]float64{}, nil
	}

	in, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	step := func(in *inbound, prev, next map[string]float64) {
		for _, v := range in.ids {
			var sum float64
			for _, e := range in.edges[v] {
				sum += e.Weight * prev[e.From]
			}
			next[v] = o.Alpha*sum + o.Beta
		}
	}

	return iterate(in, step, l2norm, o.MaxIter, o.Tol)
}
