// Package mst builds minimum spanning forests of the flight network.
//
// What & Why
//
//   - A disconnected graph has no single spanning tree. The builder runs
//     independently on every connected component and returns a spanning
//     forest: one minimum spanning tree per component, plus the grand total
//     weight across all of them.
//
//   - The cheapest set of routes that keeps every reachable airport
//     reachable is the MST of its component.
//
// Algorithms Provided
//
//   - Kruskal (default, MethodKruskal)
//     Collect every undirected edge of the component once (From < To), sort
//     ascending, then greedily accept each edge whose endpoints lie in
//     different unionfind sets. A fresh DisjointSet is created per
//     component and discarded afterwards.
//     Time O(E log E + E·α(V)), Space O(V + E).
//
//   - Prim (MethodPrim)
//     Grow a tree from the smallest vertex ID of the component with a
//     min-heap of candidate edges. Kept as an independent cross-check.
//     Time O(E log E), Space O(V + E).
//
// Determinism
//
//	Edges are totally ordered by (Weight, From, To) with From < To
//	lexicographically. Ties in weight are therefore broken by endpoint IDs,
//	the MST under this order is unique, and Kruskal and Prim return the same
//	edge set. Tree edges are reported in that order; trees are ordered by
//	their smallest vertex ID.
//
// Error Conditions
//
//	- ErrNilGraph      : graph is nil.
//	- ErrUnknownMethod : WithMethod received an unsupported name.
//	- ErrDisconnected  : a component supplied through WithComponents is not
//	                     connected in the graph.
//	- core.ErrVertexNotFound : a supplied component names an absent vertex.
package mst
