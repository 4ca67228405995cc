// Package closeness defines options and errors for closeness centrality.
package closeness

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/centrality/paths"
)

// Sentinel errors for closeness execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("closeness: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closeness: invalid option supplied")
)

// Option configures closeness computation via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a Centrality call.
type Options struct {
	// Ctx allows cancellation between per-source traversals.
	Ctx context.Context

	// Normalized selects the disconnected-graph correction: when true
	// (the default) each raw score is scaled by (|R(s)|-1)/(n-1), so
	// vertices in small components cannot outrank vertices in large
	// ones merely by having short in-component distances. When false
	// the raw per-component score is returned unscaled. The two modes
	// differ numerically on any disconnected graph.
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

// WithNormalized toggles the (|R(s)|-1)/(n-1) reachability correction.
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
