// Package betweenness defines options, errors, and the EdgeKey type for
// betweenness centrality.
package betweenness

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/centrality/paths"
)

// Sentinel errors for betweenness execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("betweenness: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("betweenness: invalid option supplied")
)

// EdgeKey identifies an edge in an EdgeCentrality result. On undirected
// graphs keys are canonicalized with From ≤ To, so each edge has exactly
// one entry regardless of traversal direction.
type EdgeKey struct {
	From string
	To   string
}

// edgeKey canonicalizes an edge traversed v→w into a result key.
func edgeKey(v, w string, directed bool) EdgeKey {
	if !directed && w < v {
		return EdgeKey{From: w, To: v}
	}

	return EdgeKey{From: v, To: w}
}

// Option configures betweenness computation via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a Centrality / EdgeCentrality call.
type Options struct {
	// Ctx allows cancellation between per-source accumulations.
	Ctx context.Context

	// Normalized divides final scores by the number of ordered (or
	// unordered, when the graph is undirected) vertex pairs the vertex
	// could possibly mediate: (n-1)(n-2) directed, (n-1)(n-2)/2
	// undirected. Edge scores use n(n-1) and n(n-1)/2 respectively.
	Normalized bool

	// Eps is the weighted distance-tie tolerance forwarded to paths.
	Eps float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults:
// background context, normalization on, Eps = paths.Epsilon.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Normalized: true,
		Eps:        paths.Epsilon,
	}
}

// WithContext sets a custom context for cancellation between sources.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNormalized toggles pair-count normalization of the final scores.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithEpsilon overrides the distance-tie tolerance used by the
// shortest-path engine.
//
//	eps ≥ 0: use as tolerance
//	eps < 0: invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: epsilon cannot be negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Eps = eps
	}
}
