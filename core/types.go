// File: types.go
// Role: Graph, Edge, GraphOption declarations, sentinel errors, NewGraph.
// Concurrency: a single sync.RWMutex guards all catalogs; see doc.go.

package core

import (
	"errors"
	"sync"
)

// DefaultWeight is the weight assigned to edges of unweighted graphs.
// Unweighted AddEdge calls must pass exactly this value.
const DefaultWeight = 1.0

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-default weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a value snapshot of a single stored edge.
//
// For undirected graphs each stored edge is reported once by Edges()
// (From ≤ To lexicographically) but appears in the adjacency of both
// endpoints. Weight is DefaultWeight on unweighted graphs.
type Edge struct {
	// From is the source vertex ID (or the lesser endpoint when undirected).
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph at construction time.
// Flags are immutable after NewGraph returns.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected; undirected is the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows arbitrary edge weights. Without it every edge must
// carry DefaultWeight and algorithms treat the graph as unweighted.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph store consumed by the centrality packages.
//
// Storage is a pair of nested adjacency maps: out[from][to] = weight and
// in[to][from] = weight. Undirected edges are mirrored into both
// orientations of both maps, so neighbor queries never special-case
// directedness. edgeCount tracks logical edges (each undirected edge once).
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after construction)
	directed   bool
	weighted   bool
	allowLoops bool

	// Storage
	vertices  map[string]struct{}
	out       map[string]map[string]float64
	in        map[string]map[string]float64
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected, unweighted, and rejects self-loops.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]float64),
		in:       make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are interpreted as one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether the graph carries meaningful edge weights.
// If false, AddEdge rejects any weight other than DefaultWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
