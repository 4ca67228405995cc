// Package degree computes degree centrality: the fraction of other
// vertices each vertex is directly connected to.
//
// For a graph with n vertices, the score of s is degree(s) / (n-1); the
// directed variants InCentrality and OutCentrality apply the same
// normalization to in-degree and out-degree. A graph with a single
// vertex has no "other vertices", so every score is 0 rather than a
// division by zero.
//
// Self-loops contribute to the numerator exactly as core counts them
// (twice on undirected graphs, once per orientation on directed ones)
// but never to the (n-1) denominator.
//
// Complexity: O(V) time, O(V) space.
package degree

import (
	"errors"

	"github.com/katalvlaran/centrality/core"
)

// ErrNilGraph is returned if a nil graph pointer is passed.
var ErrNilGraph = errors.New("degree: graph is nil")

// degreeFn abstracts which of the three degree notions a pass normalizes.
type degreeFn func(g *core.Graph, id string) (int, error)

// Centrality returns degree(s) / (n-1) for every vertex s.
// On directed graphs degree is in-degree plus out-degree.
func Centrality(g *core.Graph) (map[string]float64, error) {
	return normalize(g, (*core.Graph).Degree)
}

// InCentrality returns in-degree(s) / (n-1) for every vertex s.
// On undirected graphs it coincides with Centrality up to self-loop
// counting.
func InCentrality(g *core.Graph) (map[string]float64, error) {
	return normalize(g, (*core.Graph).InDegree)
}

// OutCentrality returns out-degree(s) / (n-1) for every vertex s.
func OutCentrality(g *core.Graph) (map[string]float64, error) {
	return normalize(g, (*core.Graph).OutDegree)
}

// normalize runs one degree notion over all vertices and divides by (n-1).
func normalize(g *core.Graph, deg degreeFn) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.Vertices()
	n := len(ids)
	scores := make(map[string]float64, n)
	if n <= 1 {
		// No other vertices to be connected to; centrality is 0 by contract.
		for _, id := range ids {
			scores[id] = 0
		}

		return scores, nil
	}

	denom := float64(n - 1)
	for _, id := range ids {
		d, err := deg(g, id)
		if err != nil {
			return nil, err
		}
		scores[id] = float64(d) / denom
	}

	return scores, nil
}
