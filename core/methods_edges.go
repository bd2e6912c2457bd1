// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns canonical edges (From < To) sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// AddEdge stores the undirected route u-v with weight w.
//
// Steps:
//  1. Validate IDs (ErrInvalidVertex) and weight (ErrInvalidWeight).
//  2. Auto-insert u and v as bare vertices when absent.
//  3. Self-loop (u == v): stop here, the loop is skipped.
//  4. Write adjacency[u][v] and the mirror adjacency[v][u]; an existing
//     pair is overwritten (last write wins) without changing EdgeCount.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrInvalidVertex
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return errors.Wrapf(ErrInvalidWeight, "edge %s-%s weight=%v", u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.upsertVertex(u, nil)
	g.upsertVertex(v, nil)
	if u == v {
		return nil
	}

	if _, exists := g.adjacency[u][v]; !exists {
		g.edgeCount++
	}
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w

	return nil
}

// Weight returns the weight of the edge u-v and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[u][v]

	return w, ok
}

// HasEdge reports whether u-v exists (in either orientation).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Edges returns every undirected edge exactly once, in canonical form
// (From < To), sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u, adj := range g.adjacency {
		for v, w := range adj {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
