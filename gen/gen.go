// Package gen builds small deterministic fixture graphs for tests,
// benchmarks, and examples: paths, cycles, stars, wheels, and complete
// graphs.
//
// Vertices are named "v0", "v1", ..., "v{n-1}" and every edge carries
// core.DefaultWeight, so the same constructor call always produces an
// identical graph. Graph options (directedness, weights, loops) pass
// straight through to core.NewGraph; directed topologies orient edges
// from the lower index to the higher one (and close cycles back to v0).
package gen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/centrality/core"
)

// ErrTooFewVertices is returned when n is below the topology's minimum.
var ErrTooFewVertices = errors.New("gen: too few vertices for topology")

// V returns the canonical fixture vertex ID for index i.
func V(i int) string { return fmt.Sprintf("v%d", i) }

// Path builds the path graph v0—v1—...—v{n-1}. Requires n ≥ 1.
func Path(n int, gopts ...core.GraphOption) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: path needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}

	g := core.NewGraph(gopts...)
	if err := g.AddVertex(V(0)); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(V(i-1), V(i), core.DefaultWeight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the cycle graph v0—v1—...—v{n-1}—v0. Requires n ≥ 3.
func Cycle(n int, gopts ...core.GraphOption) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs n ≥ 3, got %d", ErrTooFewVertices, n)
	}

	g, err := Path(n, gopts...)
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(V(n-1), V(0), core.DefaultWeight); err != nil {
		return nil, err
	}

	return g, nil
}

// Star builds the star graph: hub v0 connected to leaves v1..v{n-1}.
// Requires n ≥ 2.
func Star(n int, gopts ...core.GraphOption) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: star needs n ≥ 2, got %d", ErrTooFewVertices, n)
	}

	g := core.NewGraph(gopts...)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(V(0), V(i), core.DefaultWeight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Wheel builds the wheel graph: the cycle v1..v{n-1} plus hub v0
// connected to every rim vertex. Requires n ≥ 4.
func Wheel(n int, gopts ...core.GraphOption) (*core.Graph, error) {
	if n < 4 {
		return nil, fmt.Errorf("%w: wheel needs n ≥ 4, got %d", ErrTooFewVertices, n)
	}

	g := core.NewGraph(gopts...)
	for i := 1; i < n; i++ {
		next := i + 1
		if next == n {
			next = 1
		}
		if err := g.AddEdge(V(i), V(next), core.DefaultWeight); err != nil {
			return nil, err
		}
		if err := g.AddEdge(V(0), V(i), core.DefaultWeight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds the complete graph on n vertices: every unordered pair
// joined by one edge (every ordered pair on directed graphs).
// Requires n ≥ 1.
func Complete(n int, gopts ...core.GraphOption) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: complete needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}

	g := core.NewGraph(gopts...)
	if err := g.AddVertex(V(0)); err != nil {
		return nil, err
	}
	directed := g.Directed()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!directed && j < i) {
				continue
			}
			if err := g.AddEdge(V(i), V(j), core.DefaultWeight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
