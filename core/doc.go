// Package core provides the in-memory Graph Store of the flight network:
// airports as vertices, routes as undirected edges weighted by distance.
//
// The Graph G = (V,E) is stored as a symmetric adjacency map:
//
//	adjacency[u][v] = w  ⇔  adjacency[v][u] = w
//
// Policies:
//
//   - Undirected only. Every AddEdge mirrors the weight on both endpoints.
//   - Non-negative, finite weights. Negative, NaN and ±Inf weights are
//     rejected with ErrInvalidWeight; the store never substitutes a default.
//   - Duplicate routes. Adding (u,v) again overwrites the weight: the last
//     edge processed wins.
//   - Self-loops. AddEdge(v, v, w) registers v and skips the loop; a loop
//     never shortens a path and never belongs to a spanning tree.
//   - Opaque attributes. Vertex.Attributes is carried through untouched.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, attrs map[string]any) error // O(1), idempotent upsert
//	HasVertex(id string) bool                        // O(1)
//	Vertex(id string) (*Vertex, error)               // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, w float64) error            // O(1)
//	Weight(u, v string) (float64, bool)              // O(1)
//
//	// Query
//	Neighbors(id string) (map[string]float64, error) // O(d), defensive copy
//	NeighborIDs(id string) ([]string, error)         // O(d·log d), sorted
//	Vertices() []string                              // O(V·log V), sorted
//	Edges() []Edge                                   // O(E·log E), canonical From<To
//	Stats() GraphStats                               // O(V+E)
//
// Errors:
//
//	ErrInvalidVertex  – empty vertex ID.
//	ErrVertexNotFound – query references an absent vertex.
//	ErrInvalidWeight  – negative or non-finite edge weight.
//
// Concurrency: the Graph guards its maps with a sync.RWMutex so that a
// loader may build it while readers wait; algorithms treat it as a
// read-only snapshot for the duration of a query.
package core
