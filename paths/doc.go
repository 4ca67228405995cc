// Package paths is the single-source shortest-path engine shared by the
// closeness and betweenness packages.
//
// What
//
//   - FromSource(g, src) computes, for every vertex reachable from src:
//   - Dist:  the shortest distance (edge count when unweighted, summed
//     weight when weighted)
//   - Count: the number of distinct shortest paths from src (sigma)
//   - Pred:  the shortest-path predecessor lists
//   - Order: vertices in non-decreasing distance, src first
//   - Unreachable vertices are simply absent from the maps; no infinity
//     sentinel is ever stored.
//   - Result.PathTo reconstructs one concrete shortest path.
//
// How
//
//	Unweighted graphs use layer-by-layer breadth-first traversal: a vertex
//	reached at its minimal layer through several predecessors sums their
//	path counts. Weighted graphs (non-negative weights only) use Dijkstra
//	with a container/heap min-heap and the lazy decrease-key strategy:
//	stale heap entries are skipped when popped. Distance ties are compared
//	with an epsilon tolerance (WithEpsilon, default Epsilon) because summed
//	float64 weights rarely compare exactly equal.
//
// Errors
//
//   - ErrNilGraph          if g is nil.
//   - ErrEmptySource       if src is empty.
//   - ErrSourceNotFound    if src is not a vertex of g.
//   - ErrNegativeWeight    if any edge has negative weight (detected by an
//     upfront O(E) scan; this engine does not support
//     negative weights).
//   - ErrOptionViolation   if an invalid option was supplied.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Unweighted: O(V + E) time, O(V + E) space.
//   - Weighted:   O((V + E) log V) time, O(V + E) space.
package paths
