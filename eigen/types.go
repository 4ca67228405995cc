// Package eigen defines options and errors for the power-iteration
// centrality family (eigenvector, PageRank, Katz).
package eigen

import (
	"errors"
	"fmt"
)

// Defaults for the power-iteration solver. MaxIter bounds work on graphs
// whose spectrum makes convergence slow; Tol is the L1 change between
// consecutive normalized iterates below which the solver stops.
const (
	DefaultMaxIter = 1000
	DefaultTol     = 1e-6
	DefaultDamping = 0.85
	DefaultAlpha   = 0.1
	DefaultBeta    = 1.0
)

// Sentinel errors for the eigenvector family.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("eigen: graph is nil")

	// ErrNoConvergence is returned when power iteration exhausts MaxIter
	// without the L1 change dropping below Tol. A silently wrong vector is
	// never returned; retry with a looser tolerance or a higher cap.
	ErrNoConvergence = errors.New("eigen: power iteration did not converge")

	// ErrDegenerateGraph is returned when eigenvector centrality is asked
	// of a graph that cannot produce a non-zero dominant vector (no edges,
	// or iteration collapses to zero).
	ErrDegenerateGraph = errors.New("eigen: graph has no usable spectrum")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("eigen: invalid option supplied")
)

// Option configures the solver via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// the computation is invoked.
type Option func(*Options)

// Options holds the tunable parameters shared across the family.
// Damping applies only to PageRank; Alpha and Beta only to Katz.
type Options struct {
	// MaxIter caps the number of power iterations.
	MaxIter int

	// Tol is the L1 convergence threshold between iterations.
	Tol float64

	// Damping is the PageRank damping factor, strictly inside (0,1).
	Damping float64

	// Alpha is the Katz attenuation factor. Convergence requires
	// alpha < 1/λ₁ (reciprocal of the adjacency spectral radius); this is
	// the caller's responsibility and is NOT verified automatically —
	// a too-large alpha surfaces as ErrNoConvergence.
	Alpha float64

	// Beta is the Katz baseline importance added to every vertex.
	Beta float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults.
func DefaultOptions() Options {
	return Options{
		MaxIter: DefaultMaxIter,
		Tol:     DefaultTol,
		Damping: DefaultDamping,
		Alpha:   DefaultAlpha,
		Beta:    DefaultBeta,
	}
}

// WithMaxIter caps the number of iterations; must be positive.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIter must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithTolerance sets the L1 convergence threshold; must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tol = tol
	}
}

// WithDamping sets the PageRank damping factor; must lie strictly
// inside (0,1).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping must be in (0,1) (%g)", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithAlpha sets the Katz attenuation factor; must be non-negative.
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if alpha < 0 {
			o.err = fmt.Errorf("%w: alpha cannot be negative (%g)", ErrOptionViolation, alpha)
			return
		}
		o.Alpha = alpha
	}
}

// WithBeta sets the Katz baseline term.
func WithBeta(beta float64) Option {
	return func(o *Options) { o.Beta = beta }
}

// resolve folds opts over the defaults and reports any recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
