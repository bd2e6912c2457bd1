package bfs

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the target was not reached.
	ErrNoPath = errors.New("bfs: no path")

	// ErrNeighbors is returned when the adjacency of a reached vertex
	// cannot be read.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Options limits a search. Invalid values passed through an Option are
// recorded and reported as ErrOptionViolation by BFS.
type Options struct {
	// Ctx cancels the search. Never nil.
	Ctx context.Context

	// MaxHops caps the number of legs from the start; 0 means no cap.
	MaxHops int

	// MaxLeg is the longest leg, in edge-weight units, that may be taken.
	MaxLeg float64

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns an uncapped search with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		MaxLeg: math.Inf(1),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops stops the search n legs away from the start.
//
//	n > 0: at most n legs
//	n == 0: no cap
//	n < 0: ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxHops cannot be negative (%d)", n)
			return
		}
		o.MaxHops = n
	}
}

// WithMaxLeg skips every edge heavier than w, e.g. routes beyond an
// aircraft's range. w must be positive.
func WithMaxLeg(w float64) Option {
	return func(o *Options) {
		if !(w > 0) {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxLeg must be positive (%v)", w)
			return
		}
		o.MaxLeg = w
	}
}

// Result is the outcome of a single-start search.
type Result struct {
	// Start is the airport the search began at.
	Start string

	// Order lists reached vertices in visit sequence, Start first.
	Order []string

	// Hops maps every reached vertex to its leg count from Start.
	Hops map[string]int

	// Parent maps every reached vertex except Start to its predecessor.
	Parent map[string]string
}

// Reached reports whether id was reached from Start.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]

	return ok
}

// PathTo returns the fewest-leg route from Start to dest inclusive.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, errors.Wrapf(ErrNoPath, "%s to %s", r.Start, dest)
	}
	path := make([]string, r.Hops[dest]+1)
	cur := dest
	for i := len(path) - 1; i > 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	path[0] = cur

	return path, nil
}
