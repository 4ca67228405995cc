// File: methods_clone.go
// Role: Deep copy of a Graph. Centrality computations never need one, but
//       callers comparing "before vs after mutation" scores do.

package core

// Clone returns a deep copy of the graph: same flags, same vertices and
// edges, fully independent storage. Mutating the clone never affects the
// original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		out:        make(map[string]map[string]float64, len(g.out)),
		in:         make(map[string]map[string]float64, len(g.in)),
		edgeCount:  g.edgeCount,
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for from, bucket := range g.out {
		dst := make(map[string]float64, len(bucket))
		for to, w := range bucket {
			dst[to] = w
		}
		c.out[from] = dst
	}
	for to, bucket := range g.in {
		dst := make(map[string]float64, len(bucket))
		for from, w := range bucket {
			dst[from] = w
		}
		c.in[to] = dst
	}

	return c
}
