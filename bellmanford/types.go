package bellmanford

import (
	"errors"

	"github.com/olekrav/wayfind/route"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("bellmanford: source vertex not specified")

	// ErrVertexNotFound indicates that the source vertex lies outside the
	// graph's vertex range.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle reachable from
	// the source exists; shortest distances are not well-defined.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrStopped indicates that the pass hook requested a stop before the
	// distance table was final.
	ErrStopped = errors.New("bellmanford: stopped by pass hook")
)

// NoVertex is the option value meaning "not set" for Source.
const NoVertex = -1

// Options configures a single Run invocation.
//
// Source   – starting vertex (required; must lie in [0, Order)).
// PassHook – optional callback invoked after each completed relaxation pass
// with the 1-based pass number; returning false aborts the run
// with ErrStopped.
type Options struct {
	Source   int
	PassHook func(pass int) bool
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// Source sets the starting vertex. Required.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithPassHook installs a cooperative-cancellation callback invoked between
// relaxation passes. Returning false stops the run with ErrStopped.
func WithPassHook(fn func(pass int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.PassHook = fn
		}
	}
}

// DefaultOptions returns Options with no source set and no pass hook.
func DefaultOptions() Options {
	return Options{Source: NoVertex}
}

// Result holds the outcome of one Run: per-vertex shortest distances from
// Source, the predecessor of each reached vertex, and the number of full
// relaxation passes that actually executed (1 ≤ Passes ≤ V-1 on non-trivial
// graphs; early termination keeps it small on graphs that converge fast).
type Result struct {
	Source int
	Dist   []float64
	Prev   []int
	Passes int
}

// PathTo reconstructs the shortest path from the source to target.
// Returns route.ErrNoPath when the target was not reached.
func (r Result) PathTo(target int) ([]int, error) {
	return route.Reconstruct(r.Prev, r.Source, target)
}
