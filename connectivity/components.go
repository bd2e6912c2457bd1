// Package connectivity partitions a core.Graph into connected components.
//
// Components are discovered by one breadth-first sweep (bfs.Sweep): starting
// from the smallest unvisited vertex ID, every vertex reachable from it
// forms one component; the walk restarts until every vertex is visited.
//
// The partition is deterministic as a set of sets. Component order follows
// the smallest vertex ID of each component, but callers comparing results
// should rely on set equality only.
//
// Complexity: O(V + E·log d) time, O(V) memory.
package connectivity

import (
	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/core"
)

// Components returns the connected components of g as vertex-ID sets.
// Every vertex of g belongs to exactly one returned set. An empty or nil
// graph yields no components.
func Components(g *core.Graph) []mapset.Set[string] {
	sweep := bfs.Sweep(g)
	if sweep == nil {
		return nil
	}
	comps := make([]mapset.Set[string], len(sweep))
	for i, ids := range sweep {
		comps[i] = mapset.NewSet(ids...)
	}

	return comps
}

// IsConnected reports whether g consists of exactly one component.
// An empty graph is considered connected: there is no pair of vertices
// without a path between them.
func IsConnected(g *core.Graph) bool {
	return len(Components(g)) <= 1
}

// ComponentOf returns the component that contains id.
func ComponentOf(g *core.Graph, id string) (mapset.Set[string], error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	if !g.HasVertex(id) {
		return nil, errors.Wrapf(core.ErrVertexNotFound, "vertex %q", id)
	}
	res, err := bfs.BFS(g, id)
	if err != nil {
		return nil, err
	}

	return mapset.NewSet(res.Order...), nil
}

// Sizes returns the cardinality of each component, in the given order.
func Sizes(comps []mapset.Set[string]) []int {
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = c.Cardinality()
	}

	return sizes
}

// Largest returns the component with the most vertices; ties go to the
// earlier component. It returns nil for an empty slice.
func Largest(comps []mapset.Set[string]) mapset.Set[string] {
	var best mapset.Set[string]
	for _, c := range comps {
		if best == nil || c.Cardinality() > best.Cardinality() {
			best = c
		}
	}

	return best
}
