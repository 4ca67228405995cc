// Package closeness computes closeness centrality: how near a vertex is,
// on average, to everything it can reach.
//
// For a vertex s with reachable set R(s) (including s), the raw score is
//
//	(|R(s)| - 1) / Σ_{t ∈ R(s)\{s}} dist(s, t)
//
// An isolated vertex, or one whose reachable set is just itself, scores
// exactly 0. With normalization on (the default) the raw score is scaled
// by (|R(s)|-1)/(n-1), the Wasserman–Faust correction for disconnected
// graphs; with it off the raw score is returned as-is, which implicitly
// normalizes by n-1 only when the graph is a single component. The two
// modes must not be conflated: they produce different numbers on any
// disconnected graph.
//
// Directed graphs measure outward distance: how quickly s reaches the
// rest of the graph, not how quickly the graph reaches s.
//
// Complexity: one shortest-path run per vertex, so O(V·(V+E)) unweighted
// and O(V·(V+E) log V) weighted.
package closeness

import (
	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/paths"
)

// Centrality computes the closeness score of every vertex of g.
//
// Errors:
//   - ErrNilGraph               if g is nil.
//   - ErrOptionViolation        for invalid options.
//   - paths.ErrNegativeWeight   if any edge weight is negative.
//   - ctx.Err()                 if the context is cancelled mid-run.
func Centrality(g *core.Graph, opts ...Option) (map[string]float64, error) {
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
	scores := make(map[string]float64, n)

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

		reached := res.Reached()
		if reached <= 1 {
			scores[s] = 0
			continue
		}

		var total float64
		for t, d := range res.Dist {
			if t != s {
				total += d
			}
		}

		score := float64(reached-1) / total
		if o.Normalized {
			score *= float64(reached-1) / float64(n-1)
		}
		scores[s] = score
	}

	return scores, nil
}
