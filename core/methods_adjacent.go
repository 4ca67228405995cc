// File: methods_adjacent.go
// Role: Neighborhood and degree queries: Neighbors, InNeighbors,
//       NeighborIDs, Degree, InDegree, OutDegree.
// Determinism: neighbor slices are sorted by the far endpoint ascending.

package core

import "sort"

// Neighbors returns the outgoing edges of id, sorted by Edge.To ascending.
// On undirected graphs every incident edge is outgoing by construction,
// so Neighbors covers the full neighborhood.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, 0, len(g.out[id]))
	for to, w := range g.out[id] {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// InNeighbors returns the incoming edges of id, sorted by Edge.From
// ascending. On undirected graphs this mirrors Neighbors.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) for in-degree d.
func (g *Graph) InNeighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, 0, len(g.in[id]))
	for from, w := range g.in[id] {
		out = append(out, Edge{From: from, To: id, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id along a single
// outgoing edge, sorted lexicographically ascending.
//
// Errors: propagated from Neighbors.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.To)
	}

	return ids, nil
}

// OutDegree returns the number of outgoing edges of id. A self-loop
// counts once.
//
// Errors:
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(1) average.
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.out[id]), nil
}

// InDegree returns the number of incoming edges of id. A self-loop
// counts once.
//
// Errors:
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(1) average.
func (g *Graph) InDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.in[id]), nil
}

// Degree returns the total number of edge endpoints touching id:
// in-degree plus out-degree on directed graphs, which on undirected
// graphs makes a self-loop count twice and every other edge once.
//
// Errors:
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(1) average.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	if g.directed {
		return len(g.in[id]) + len(g.out[id]), nil
	}

	d := len(g.out[id])
	if _, loop := g.out[id][id]; loop {
		d++ // a self-loop contributes both endpoints
	}

	return d, nil
}
