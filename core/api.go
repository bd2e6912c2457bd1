// File: api.go
// Role: Read-only summary facade on top of the core types.
// Policy:
//   - No algorithms or hidden state here.

package core

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count vertices, isolated vertices and sum each undirected
//     edge weight once (u < v).
//
// Returns:
//   - GraphStats: value snapshot; later mutations do not affect it.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
	}
	for u, adj := range g.adjacency {
		if len(adj) == 0 {
			stats.IsolatedCount++
		}
		for v, w := range adj {
			if u < v {
				stats.TotalWeight += w
			}
		}
	}

	return stats
}
