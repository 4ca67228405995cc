// File: methods_vertices.go
// Role: Vertex lifecycle and queries: AddVertex, HasVertex, RemoveVertex,
//       Vertices, VertexCount.
// Determinism: Vertices() returns IDs sorted lexicographically ascending.

package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing vertex
// is a no-op, never an error.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1) average.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex id exists.
// Complexity: O(1) average.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it,
// in either orientation.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(deg(id)) average.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// Unlink outgoing edges: remove the mirror entry at each successor.
	for to := range g.out[id] {
		delete(g.in[to], id)
		if !g.directed && to != id {
			delete(g.out[to], id)
			delete(g.in[id], to)
		}
		g.edgeCount--
	}
	// Unlink remaining incoming edges (directed graphs only at this point).
	for from := range g.in[id] {
		delete(g.out[from], id)
		g.edgeCount--
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The slice is freshly allocated and safe to retain.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
