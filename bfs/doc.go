// Package bfs counts legs: it explores the route graph in breadth-first
// order and answers "fewest connections" questions that distance-weighted
// search (package dijkstra) does not.
//
// Two entry points share one walker:
//
//   - BFS(g, start, opts...) searches from one airport and returns a Result
//     with hop counts, parent links and visit order. Result.PathTo rebuilds
//     the route with the fewest legs.
//   - Sweep(g) walks every airport once, restarting from the smallest
//     unvisited ID, and returns the visit order of each connected
//     component. The visited set is shared across restarts.
//
// Options:
//
//   - WithContext(ctx): abort when ctx is done.
//   - WithMaxLeg(km): legs longer than km are not flown.
//   - WithMaxHops(n): do not search beyond n legs.
//
// Neighbors are expanded in ID order, so Order and Parent are
// reproducible.
//
// Errors:
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start airport does not exist.
//   - ErrOptionViolation      for invalid option values.
//   - ErrNoPath               from Result.PathTo for unreached targets.
//   - ctx.Err()               when the context is cancelled.
package bfs
