// File: pagerank.go
// Role: PageRank on top of the shared power-iteration core: damped
//       random-walk update with uniform dangling-mass redistribution.

package eigen

import "github.com/katalvlaran/centrality/core"

// PageRank computes the stationary distribution of a damped random walk
// over g:
//
//	x'[v] = (1-d)/n + d · ( Σ_{u→v} x[u]·w(u,v)/W(u)  +  D/n )
//
// where d is the damping factor (WithDamping, default DefaultDamping),
// W(u) is the total outgoing weight of u (its out-degree when the graph
// is unweighted), and D is the combined mass sitting on dangling
// vertices — vertices with no outgoing edges — which is redistributed
// uniformly before each step so no probability leaks. Scores always sum
// to 1 within floating tolerance.
//
// Errors:
//   - ErrNilGraph          if g is nil.
//   - ErrOptionViolation   for invalid options (damping outside (0,1)).
//   - ErrNoConvergence     if MaxIter passes without settling.
func PageRank(g *core.Graph, opts ...Option) (map[string]float64, error) {
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

	// Total outgoing weight per vertex; dangling vertices stay at 0.
	outWeight := make(map[string]float64, len(in.ids))
	for _, u := range in.ids {
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		var w float64
		for _, e := range edges {
			w += e.Weight
		}
		outWeight[u] = w
	}

	step := func(in *inbound, prev, next map[string]float64) {
		n := float64(len(in.ids))

		// Mass parked on dangling vertices is spread uniformly.
		var dangling float64
		for _, u := range in.ids {
			if outWeight[u] == 0 {
				dangling += prev[u]
			}
		}

		base := (1-o.Damping)/n + o.Damping*dangling/n
		for _, v := range in.ids {
			var sum float64
			for _, e := range in.edges[v] {
				// A vertex whose outgoing weight sums to zero is treated
				// as dangling; its zero-weight edges carry no walk mass.
				if outWeight[e.From] == 0 {
					continue
				}
				sum += prev[e.From] * e.Weight / outWeight[e.From]
			}
			next[v] = base + o.Damping*sum
		}
	}

	return iterate(in, step, l1norm, o.MaxIter, o.Tol)
}
