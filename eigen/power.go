// File: power.go
// Role: The power-iteration core shared by eigenvector, PageRank, and
//       Katz, plus the incoming-adjacency snapshot they all iterate over.

package eigen

import (
	"math"

	"github.com/katalvlaran/centrality/core"
)

// inbound is a frozen incoming-adjacency snapshot: for every vertex v,
// the (u, weight) pairs of edges u→v. Taking the snapshot once keeps the
// per-iteration cost at O(V+E) map arithmetic with no graph locking.
type inbound struct {
	ids   []string
	edges map[string][]core.Edge
}

// snapshot freezes g's incoming adjacency. On undirected graphs core
// mirrors every edge, so the snapshot is automatically symmetric.
func snapshot(g *core.Graph) (*inbound, error) {
	ids := g.Vertices()
	in := &inbound{
		ids:   ids,
		edges: make(map[string][]core.Edge, len(ids)),
	}
	for _, v := range ids {
		edges, err := g.InNeighbors(v)
		if err != nil {
			return nil, err
		}
		in.edges[v] = edges
	}

	return in, nil
}

// update computes one raw iterate into next from prev. Implementations
// write every vertex of the snapshot; renormalization happens outside.
type update func(in *inbound, prev, next map[string]float64)

// norm rescales a raw iterate in place and reports the scale factor it
// divided by (0 means the vector collapsed and iteration cannot proceed).
type norm func(vec map[string]float64) float64

// l1norm divides by Σ|x| so the vector sums to 1 for non-negative scores.
func l1norm(vec map[string]float64) float64 {
	var sum float64
	for _, x := range vec {
		sum += math.Abs(x)
	}
	if sum == 0 {
		return 0
	}
	for id := range vec {
		vec[id] /= sum
	}

	return sum
}

// l2norm divides by √Σx² — the customary eigenvector scaling.
func l2norm(vec map[string]float64) float64 {
	var sq float64
	for _, x := range vec {
		sq += x * x
	}
	if sq == 0 {
		return 0
	}
	s := math.Sqrt(sq)
	for id := range vec {
		vec[id] /= s
	}

	return s
}

// iterate runs the power method: apply step, renormalize, and stop when
// the L1 change between consecutive normalized iterates drops below tol.
//
// The initial vector is uniform 1/n, so the result is independent of any
// scaling the caller might have had in mind: positive multiples of the
// start vector converge to the same normalized fixed point.
//
// Errors:
//   - ErrDegenerateGraph if renormalization hits a zero vector.
//   - ErrNoConvergence   if maxIter iterations pass without settling.
func iterate(in *inbound, step update, renorm norm, maxIter int, tol float64) (map[string]float64, error) {
	n := len(in.ids)
	prev := make(map[string]float64, n)
	next := make(map[string]float64, n)
	for _, id := range in.ids {
		prev[id] = 1 / float64(n)
	}

	for iter := 0; iter < maxIter; iter++ {
		step(in, prev, next)
		if renorm(next) == 0 {
			return nil, ErrDegenerateGraph
		}

		var change float64
		for _, id := range in.ids {
			change += math.Abs(next[id] - prev[id])
		}
		prev, next = next, prev
		if change < tol {
			return prev, nil
		}
	}

	return nil, ErrNoConvergence
}
