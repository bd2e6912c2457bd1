// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that the requested target is unreachable from the
	// source of a Result.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrBadK indicates a negative k in a k-farthest query.
	ErrBadK = errors.New("dijkstra: k must be non-negative")

	// ErrOptionViolation indicates that an invalid Option value was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – vertices whose distance would exceed this value are not
// settled and stay at +Inf. Must be ≥ 0. Default +Inf (no cap).
//
// MaxLeg – edges heavier than this are skipped entirely. Must be > 0.
// Default +Inf (every edge usable).
type Options struct {
	MaxDistance float64
	MaxLeg      float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
//
//	d >= 0: explore only vertices with distance ≤ d
//	d < 0 or NaN: invalid option → ErrOptionViolation
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDistance must be non-negative (%v)", d)
			return
		}
		o.MaxDistance = d
	}
}

// WithMaxLeg defines the heaviest edge that may be traversed.
//
//	w > 0: skip edges with weight > w
//	w <= 0 or NaN: invalid option → ErrOptionViolation
func WithMaxLeg(w float64) Option {
	return func(o *Options) {
		if !(w > 0) {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxLeg must be positive (%v)", w)
			return
		}
		o.MaxLeg = w
	}
}

// DefaultOptions returns an Options struct with no distance cap and every
// edge traversable.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		MaxLeg:      math.Inf(1),
	}
}

// Result is the outcome of a single-source run.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source string

	// Dist maps every vertex of the graph to its shortest distance from
	// Source, or math.Inf(1) when unreachable.
	Dist map[string]float64

	// Prev maps every reached vertex except Source to its predecessor on
	// one shortest path.
	Prev map[string]string
}

// Reach pairs a vertex with its shortest distance from a source.
type Reach struct {
	ID       string
	Distance float64
}

// Path is a concrete route and its total weight.
type Path struct {
	Vertices []string
	Distance float64
}
