// Package mst defines configuration options, result types and sentinel
// errors for minimum spanning forest computation.
package mst

import (
	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/flightnet/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrUnknownMethod indicates that MSTOptions.Method is neither
// MethodKruskal nor MethodPrim.
var ErrUnknownMethod = errors.New("mst: unknown method")

// ErrDisconnected indicates that a vertex set handed in as a component does
// not induce a connected subgraph, so no spanning tree of it exists.
var ErrDisconnected = errors.New("mst: component is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Methods lists the supported method names.
var Methods = []string{MethodKruskal, MethodPrim}

// MSTOptions configures which MST algorithm runs per component and,
// optionally, a precomputed partition into components.
//
// Fields:
//
//	Method     string               - MethodKruskal (default) or MethodPrim.
//	Components []mapset.Set[string] - reuse connectivity.Components output;
//	                                  nil means compute on demand.
type MSTOptions struct {
	Method     string
	Components []mapset.Set[string]
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithComponents shares a partition computed earlier (for example by
// connectivity.Components) instead of recomputing it.
func WithComponents(comps []mapset.Set[string]) Option {
	return func(opts *MSTOptions) {
		opts.Components = comps
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with components
// computed on demand.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

// Tree is the minimum spanning tree of one component.
type Tree struct {
	// Vertices of the component, sorted ascending.
	Vertices []string

	// Edges accepted into the tree, canonical (From < To), ordered by
	// (Weight, From, To). len(Edges) == len(Vertices)-1.
	Edges []core.Edge

	// Weight is the sum of Edges weights.
	Weight float64
}

// Forest is the collection of per-component trees.
type Forest struct {
	// Trees ordered by their smallest vertex ID.
	Trees []Tree

	// TotalWeight is the sum of all tree weights.
	TotalWeight float64
}

// EdgeCount returns the number of edges across all trees.
func (f *Forest) EdgeCount() int {
	n := 0
	for _, t := range f.Trees {
		n += len(t.Edges)
	}

	return n
}

// lessEdge is the total order used for tie-breaking: weight ascending, then
// From, then To. Edges must be canonical.
func lessEdge(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}
