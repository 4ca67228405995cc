// Package centrality is an in-memory toolkit for answering one question
// about a graph: which vertices (and edges) matter most?
//
// 🚀 What is centrality?
//
//	A focused, from-scratch implementation of the classic centrality
//	measures over weighted/unweighted, directed/undirected graphs:
//		• Degree family: degree, in-degree, out-degree
//		• Closeness: average nearness to everything reachable
//		• Betweenness: Brandes' accumulation, vertex and edge variants
//		• Eigenvector family: eigenvector, PageRank, Katz via one
//		  shared power-iteration solver
//
// ✨ Why choose centrality?
//
//   - Minimal API – build a core.Graph, call one function, get a
//     map from ID to score
//   - Deterministic – sorted iteration everywhere; identical inputs
//     produce identical outputs
//   - Honest failures – typed sentinel errors (negative weights,
//     non-convergence, degenerate spectra), never a silently wrong score
//   - Pure Go library core – no cgo, no services, no hidden state
//
// Everything is organized under small subpackages:
//
//	core/        — the Graph store: vertices, edges, weights, queries
//	paths/       — single-source shortest paths with path counting
//	degree/      — degree centrality and its directed variants
//	closeness/   — closeness centrality with dual normalization modes
//	betweenness/ — Brandes vertex and edge betweenness
//	eigen/       — eigenvector, PageRank, Katz (power iteration)
//	gen/         — deterministic fixture graphs (path, cycle, star, ...)
//	cmd/         — the `centrality` CLI over edge-list files
//
// This root package ties the measures into a single closed set of Kind
// values dispatched through Compute, for callers (such as the CLI) that
// select a measure at runtime rather than at compile time.
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 1)
//	res, err := centrality.Compute(g, centrality.Betweenness)
//	// res.Nodes["B"] == 1.0 — B sits on every A↔C shortest path
package centrality
