// Package core defines the central Graph type used by every centrality
// package in this module, together with its construction options and
// sentinel errors.
//
// What
//
//   - Graph: an adjacency-map store over string vertex IDs, supporting
//     directed or undirected edges and optional float64 weights.
//   - Incremental construction: AddVertex / AddEdge, with AddEdge
//     auto-creating missing endpoints (common graph-library convention).
//   - No parallel edges: re-adding an existing edge updates its weight
//     in place rather than creating a duplicate.
//   - Self-loops permitted only when WithLoops() is set.
//   - Neighbor queries in both orientations: Neighbors (outgoing) and
//     InNeighbors (incoming), plus Degree / InDegree / OutDegree.
//
// Determinism
//
//	Vertices(), Edges(), Neighbors() and InNeighbors() return results in
//	sorted order, so algorithm packages built on top of core produce
//	reproducible output without extra bookkeeping.
//
// Concurrency
//
//	Every individual query or mutation holds the graph's RWMutex, so
//	single calls are safe across goroutines. A centrality computation is
//	a *sequence* of such calls: mutating the graph while a computation is
//	in flight yields undefined results. Build the graph first, then treat
//	it as read-only input — results returned by the centrality packages
//	are snapshots, never views.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddVertex / AddEdge / HasVertex / HasEdge / EdgeWeight: O(1) average
//   - Neighbors / InNeighbors: O(d log d) for degree d (sorting)
//   - Vertices: O(V log V); Edges: O(E log E)
package core
