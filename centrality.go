// File: centrality.go
// Role: The closed Kind enumeration and the Compute dispatch entry point
//       shared by the CLI and by callers selecting measures at runtime.

package centrality

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/centrality/betweenness"
	"github.com/katalvlaran/centrality/closeness"
	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/degree"
	"github.com/katalvlaran/centrality/eigen"
	"github.com/katalvlaran/centrality/paths"
)

// ErrUnknownKind is returned when a Kind value (or its textual name) does
// not belong to the closed set below.
var ErrUnknownKind = errors.New("centrality: unknown centrality kind")

// Kind enumerates the supported centrality measures. The set is closed:
// dispatch is a switch, not an extension point.
type Kind int

const (
	// Degree is degree centrality (in+out on directed graphs).
	Degree Kind = iota
	// InDegree is in-degree centrality.
	InDegree
	// OutDegree is out-degree centrality.
	OutDegree
	// Closeness is closeness centrality.
	Closeness
	// Betweenness is vertex betweenness centrality.
	Betweenness
	// EdgeBetweenness is edge betweenness centrality.
	EdgeBetweenness
	// Eigenvector is eigenvector centrality.
	Eigenvector
	// PageRank is PageRank.
	PageRank
	// Katz is Katz centrality.
	Katz
)

// kindNames is the canonical textual form of each Kind, in declaration
// order. These names are the CLI vocabulary.
var kindNames = [...]string{
	Degree:          "degree",
	InDegree:        "in-degree",
	OutDegree:       "out-degree",
	Closeness:       "closeness",
	Betweenness:     "betweenness",
	EdgeBetweenness: "edge-betweenness",
	Eigenvector:     "eigenvector",
	PageRank:        "pagerank",
	Katz:            "katz",
}

// String returns the canonical name of k, or "unknown" outside the set.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Kinds returns all supported kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind resolves a textual kind name to its Kind value.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Option configures Compute via functional arguments. Each knob applies
// only to the kinds that understand it; the rest ignore it silently.
type Option func(*Options)

// Options aggregates every tunable across the measure set.
type Options struct {
	// Ctx allows cancellation of the per-source measures
	// (closeness, betweenness).
	Ctx context.Context

	// Normalized toggles normalization for the closeness and
	// betweenness measures (the degree family is always normalized
	// by n-1, per its definition).
	Normalized bool

	// Eps is the weighted distance-tie tolerance (closeness, betweenness).
	Eps float64

	// MaxIter, Tol, Damping, Alpha, Beta parameterize the eigen family.
	MaxIter int
	Tol     float64
	Damping float64
	Alpha   float64
	Beta    float64
}

// DefaultOptions returns Options mirroring each subpackage's defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Normalized: true,
		Eps:        paths.Epsilon,
		MaxIter:    eigen.DefaultMaxIter,
		Tol:        eigen.DefaultTol,
		Damping:    eigen.DefaultDamping,
		Alpha:      eigen.DefaultAlpha,
		Beta:       eigen.DefaultBeta,
	}
}

// WithContext sets a custom context for cancellable measures.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNormalized toggles score normalization where the measure defines it.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithEpsilon overrides the weighted distance-tie tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Eps = eps }
}

// WithMaxIter caps power iterations for the eigen family.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithTolerance sets the eigen-family convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tol = tol }
}

// WithDamping sets the PageRank damping factor.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithAlpha sets the Katz attenuation factor.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the Katz baseline term.
func WithBeta(beta float64) Option {
	return func(o *Options) { o.Beta = beta }
}

// Result is the outcome of one Compute call. Nodes is populated for
// every kind except EdgeBetweenness, which populates Edges instead.
// Results are snapshots: mutating the graph afterwards does not (and
// cannot) update them.
type Result struct {
	Kind  Kind
	Nodes map[string]float64
	Edges map[betweenness.EdgeKey]float64
}

// Compute runs the selected measure over g. Parameter validation is
// delegated to the measure's own package, so invalid values surface as
// that package's ErrOptionViolation (or equivalent) sentinel.
func Compute(g *core.Graph, kind Kind, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{Kind: kind}
	var err error
	switch kind {
	case Degree:
		res.Nodes, err = degree.Centrality(g)
	case InDegree:
		res.Nodes, err = degree.InCentrality(g)
	case OutDegree:
		res.Nodes, err = degree.OutCentrality(g)
	case Closeness:
		res.Nodes, err = closeness.Centrality(g,
			closeness.WithContext(o.Ctx),
			closeness.WithNormalized(o.Normalized),
			closeness.WithEpsilon(o.Eps),
		)
	case Betweenness:
		res.Nodes, err = betweenness.Centrality(g,
			betweenness.WithContext(o.Ctx),
			betweenness.WithNormalized(o.Normalized),
			betweenness.WithEpsilon(o.Eps),
		)
	case EdgeBetweenness:
		res.Edges, err = betweenness.EdgeCentrality(g,
			betweenness.WithContext(o.Ctx),
			betweenness.WithNormalized(o.Normalized),
			betweenness.WithEpsilon(o.Eps),
		)
	case Eigenvector:
		res.Nodes, err = eigen.Centrality(g,
			eigen.WithMaxIter(o.MaxIter),
			eigen.WithTolerance(o.Tol),
		)
	case PageRank:
		res.Nodes, err = eigen.PageRank(g,
			eigen.WithMaxIter(o.MaxIter),
			eigen.WithTolerance(o.Tol),
			eigen.WithDamping(o.Damping),
		)
	case Katz:
		res.Nodes, err = eigen.Katz(g,
			eigen.WithMaxIter(o.MaxIter),
			eigen.WithTolerance(o.Tol),
			eigen.WithAlpha(o.Alpha),
			eigen.WithBeta(o.Beta),
		)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}
