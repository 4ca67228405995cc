// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge, HasEdge, EdgeWeight,
//       RemoveEdge, Edges, EdgeCount.
// Determinism: Edges() returns edges sorted by (From, To) ascending;
//              undirected edges are reported once with From ≤ To.

package core

import "sort"

// AddEdge inserts an edge from→to with the given weight, auto-creating
// missing endpoints. Re-adding an existing edge updates its weight in
// place; parallel edges are never created.
//
// Policy:
//   - Unweighted graphs accept only weight == DefaultWeight (ErrBadWeight).
//   - Self-loops require WithLoops() (ErrLoopNotAllowed).
//   - Negative weights are stored as-is on weighted graphs; packages that
//     cannot handle them (paths, and everything built on paths) reject
//     them at computation time.
//
// Complexity: O(1) average.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.weighted && weight != DefaultWeight {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// Auto-create endpoints.
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	if _, exists := g.out[from][to]; !exists {
		g.edgeCount++
	}

	g.link(from, to, weight)
	if !g.directed && from != to {
		g.link(to, from, weight)
	}

	return nil
}

// link writes one orientation of an edge into both adjacency maps.
// Must be called under the write lock.
func (g *Graph) link(from, to string, weight float64) {
	if g.out[from] == nil {
		g.out[from] = make(map[string]float64)
	}
	g.out[from][to] = weight
	if g.in[to] == nil {
		g.in[to] = make(map[string]float64)
	}
	g.in[to][from] = weight
}

// unlink removes one orientation of an edge from both adjacency maps,
// pruning empty buckets. Must be called under the write lock.
func (g *Graph) unlink(from, to string) {
	delete(g.out[from], to)
	if len(g.out[from]) == 0 {
		delete(g.out, from)
	}
	delete(g.in[to], from)
	if len(g.in[to]) == 0 {
		delete(g.in, to)
	}
}

// HasEdge reports whether an edge from→to exists. On undirected graphs
// the query succeeds in either orientation.
// Complexity: O(1) average.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.out[from][to]

	return ok
}

// EdgeWeight returns the weight of the edge from→to and whether it exists.
// Complexity: O(1) average.
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.out[from][to]

	return w, ok
}

// RemoveEdge deletes the edge from→to (and its mirror on undirected
// graphs).
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(1) average.
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.out[from][to]; !ok {
		return ErrEdgeNotFound
	}

	g.unlink(from, to)
	if !g.directed && from != to {
		g.unlink(to, from)
	}
	g.edgeCount--

	return nil
}

// Edges returns a snapshot of all edges sorted by (From, To) ascending.
// Undirected edges appear once, oriented From ≤ To; self-loops once.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.out {
		for to, w := range bucket {
			// Skip the mirrored orientation of undirected edges.
			if !g.directed && from > to {
				continue
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of logical edges (each undirected edge
// counted once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
