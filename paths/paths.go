// File: paths.go
// Role: FromSource entry point plus the unweighted (BFS) and weighted
//       (Dijkstra, lazy decrease-key) walkers with path counting.

package paths

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/centrality/core"
)

// FromSource computes shortest distances, shortest-path counts, and
// predecessor lists from src to every reachable vertex of g.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. src must be non-empty (ErrEmptySource).
//  3. Options must be valid (ErrOptionViolation).
//  4. g must contain src (ErrSourceNotFound).
//  5. No edge may carry a negative weight (ErrNegativeWeight);
//     checked only on weighted graphs, via an upfront O(E) scan.
//
// Self-loops never lie on a shortest path and are ignored during
// traversal.
//
// Complexity: O(V+E) unweighted, O((V+E) log V) weighted.
func FromSource(g *core.Graph, src string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if src == "" {
		return nil, ErrEmptySource
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(src) {
		return nil, ErrSourceNotFound
	}

	if g.Weighted() {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	n := g.VertexCount()
	res := &Result{
		Source: src,
		Dist:   make(map[string]float64, n),
		Count:  make(map[string]float64, n),
		Pred:   make(map[string][]string, n),
		Order:  make([]string, 0, n),
	}
	res.Dist[src] = 0
	res.Count[src] = 1

	var err error
	if g.Weighted() {
		err = dijkstraWalk(g, res, o.Eps)
	} else {
		err = bfsWalk(g, res)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// bfsWalk explores g layer by layer from res.Source, summing predecessor
// path counts whenever a vertex is reached at its minimal layer through
// several predecessors.
func bfsWalk(g *core.Graph, res *Result) error {
	queue := []string{res.Source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, u)

		neighbors, err := g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("paths: failed to get neighbors of %q: %w", u, err)
		}
		du := res.Dist[u]
		for _, v := range neighbors {
			if v == u {
				continue // self-loop
			}
			dv, seen := res.Dist[v]
			if !seen {
				res.Dist[v] = du + 1
				queue = append(queue, v)
				dv = du + 1
			}
			// v sits exactly one layer below u: u is a shortest-path
			// predecessor and forwards all of its path count.
			if dv == du+1 {
				res.Count[v] += res.Count[u]
				res.Pred[v] = append(res.Pred[v], u)
			}
		}
	}

	return nil
}

// dijkstraWalk runs Dijkstra from res.Source with lazy decrease-key,
// counting shortest paths as it relaxes. A candidate distance within eps
// of the best known distance counts as a tie and contributes paths; a
// candidate more than eps better resets the predecessor set.
func dijkstraWalk(g *core.Graph, res *Result, eps float64) error {
	pq := make(nodePQ, 0, g.VertexCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: res.Source, dist: 0})

	finalized := make(map[string]bool, g.VertexCount())
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if finalized[u] {
			continue // stale lazy-decrease-key entry
		}
		finalized[u] = true
		res.Order = append(res.Order, u)

		edges, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("paths: failed to get neighbors of %q: %w", u, err)
		}
		du := res.Dist[u]
		for _, e := range edges {
			v := e.To
			if v == u || finalized[v] {
				continue
			}
			cand := du + e.Weight
			best, seen := res.Dist[v]
			switch {
			case !seen || cand < best-eps:
				// strictly better path: restart v's bookkeeping
				res.Dist[v] = cand
				res.Count[v] = res.Count[u]
				res.Pred[v] = []string{u}
				heap.Push(&pq, &nodeItem{id: v, dist: cand})
			case cand <= best+eps:
				// tie within tolerance: one more family of shortest paths
				res.Count[v] += res.Count[u]
				res.Pred[v] = append(res.Pred[v], u)
			}
		}
	}

	return nil
}

// nodeItem pairs a vertex with its tentative distance for heap ordering.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with ID as
// tiebreaker so heap behavior is deterministic across runs.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
