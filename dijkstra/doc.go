// Package dijkstra computes single-source shortest paths over the
// non-negative weighted, undirected flight graph held by core.Graph.
//
// Overview:
//
//   - ShortestPaths computes the minimum-distance route from one source
//     airport to every other airport in O((V + E) log V) time.
//   - A min-heap keyed by (distance, vertex ID) always expands the
//     next-closest vertex; ties between equal distances pop in ID order so
//     the predecessor map is identical from run to run.
//   - Lazy decrease-key: an improved distance pushes a new heap entry and
//     stale entries are skipped when popped.
//
// Result:
//
//   - Dist holds every vertex of the graph. Unreachable vertices are
//     math.Inf(1); that is data, never an error.
//   - Prev holds the predecessor of every reached vertex except the source.
//   - PathTo rebuilds a route; ShortestPath is the one-shot convenience.
//   - Farthest and KFarthest rank reached vertices by distance descending,
//     ties by ID ascending. The source itself (distance 0) is a candidate.
//
// Options:
//
//   - WithMaxDistance(d): do not settle vertices farther than d.
//   - WithMaxLeg(w): treat edges heavier than w as impassable, e.g. legs
//     beyond an aircraft's range.
//
// Invalid option values are recorded and surfaced as ErrOptionViolation
// when ShortestPaths runs.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - core.ErrVertexNotFound for an unknown source or target.
//   - ErrNoPath          when PathTo's target was not reached.
//   - ErrBadK            for a negative k in KFarthest.
//   - ErrOptionViolation for invalid option values.
//
// Example:
//
//	res, err := dijkstra.ShortestPaths(g, "LIM")
//	if err != nil {
//	    return err
//	}
//	route, err := res.PathTo("CDG")
package dijkstra
