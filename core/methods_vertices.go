// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog and adjacency protected by mu.
package core

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// AddVertex inserts a vertex, or updates the attributes of an existing one.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrInvalidVertex).
//   - Stage 2: Under the write lock, insert the vertex and its empty
//     adjacency bucket if missing; otherwise replace Attributes when
//     attrs is non-nil.
//
// Behavior highlights:
//   - Idempotent upsert: calling twice with the same arguments leaves the
//     graph unchanged.
//   - A nil attrs never erases attributes set earlier, so AddEdge can
//     auto-insert endpoints without clobbering loaded payloads.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, attrs map[string]any) error {
	if id == "" {
		return ErrInvalidVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.upsertVertex(id, attrs)

	return nil
}

// upsertVertex performs the insertion under an already held write lock.
func (g *Graph) upsertVertex(id string, attrs map[string]any) {
	v, ok := g.vertices[id]
	if !ok {
		if attrs == nil {
			attrs = make(map[string]any)
		}
		g.vertices[id] = &Vertex{ID: id, Attributes: attrs}
		g.adjacency[id] = make(map[string]float64)

		return
	}
	if attrs != nil {
		v.Attributes = attrs
	}
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID.
// The returned value is read-only by convention.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrInvalidVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "vertex %q", id)
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Neighbors returns a copy of the adjacency of id: neighbor ID → weight.
//
// Errors:
//   - ErrInvalidVertex if id is empty.
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) (map[string]float64, error) {
	if id == "" {
		return nil, ErrInvalidVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "vertex %q", id)
	}
	out := make(map[string]float64, len(adj))
	for v, w := range adj {
		out[v] = w
	}

	return out, nil
}

// NeighborIDs returns the neighbor IDs of id sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	adj, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(adj))
	for v := range adj {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}
