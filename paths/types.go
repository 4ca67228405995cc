// Package paths defines options, errors, and the Result type for the
// single-source shortest-path engine.
package paths

import (
	"errors"
	"fmt"
)

// Epsilon is the default tolerance used to decide whether two weighted
// distances are equal when counting shortest paths. There is no canonical
// value; override per call with WithEpsilon.
const Epsilon = 1e-9

// Sentinel errors for shortest-path execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrEmptySource is returned when the source vertex ID is empty.
	ErrEmptySource = errors.New("paths: source vertex ID is empty")

	// ErrSourceNotFound is returned when the source ID is absent from the graph.
	ErrSourceNotFound = errors.New("paths: source vertex not found")

	// ErrNegativeWeight is returned when any edge carries a negative weight.
	ErrNegativeWeight = errors.New("paths: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// Option configures the engine via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// FromSource is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a single FromSource run.
type Options struct {
	// Eps is the tolerance for weighted distance-tie detection.
	// Two candidate distances within Eps of each other count as equal,
	// so both contribute shortest paths.
	Eps float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults: Eps = Epsilon.
func DefaultOptions() Options {
	return Options{Eps: Epsilon}
}

// WithEpsilon overrides the distance-tie tolerance.
//
//	eps ≥ 0: use as tolerance (0 means exact comparison)
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

// Result holds the outcome of one single-source run.
//
// Only reachable vertices appear as keys; the source itself is always
// present with Dist 0 and Count 1.
type Result struct {
	// Source is the vertex the run started from.
	Source string

	// Dist maps vertex ID → shortest distance from Source.
	Dist map[string]float64

	// Count maps vertex ID → number of distinct shortest paths from Source.
	Count map[string]float64

	// Pred maps vertex ID → its predecessors on shortest paths.
	Pred map[string][]string

	// Order lists reached vertices in non-decreasing distance, Source first.
	Order []string
}

// Reached returns the number of vertices reachable from Source,
// including Source itself.
func (r *Result) Reached() int { return len(r.Dist) }

// PathTo reconstructs one shortest path from Source to dest by walking
// the first recorded predecessor at each step. Returns an error if dest
// was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("paths: no path from %q to %q", r.Source, dest)
	}

	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		preds := r.Pred[cur]
		if len(preds) == 0 {
			break
		}
		cur = preds[0]
	}
	// reverse to get Source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
