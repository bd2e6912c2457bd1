// Package mst provides an implementation of Kruskal's Minimum Spanning Tree
// algorithm for a single connected component.
package mst

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/unionfind"
)

// Kruskal computes the minimum spanning tree of the subgraph of g induced by
// the vertex set comp.
//
// Steps:
//  1. Sort the component's vertices; a single vertex yields an empty tree.
//  2. Collect each undirected edge of the induced subgraph exactly once by
//     emitting (u,v) only when u < v and v is in comp.
//  3. Sort edges by (Weight, From, To).
//  4. Create a fresh DisjointSet over the component.
//  5. Accept every edge whose Union succeeds; stop at |V|-1 edges.
//  6. Fewer than |V|-1 accepted edges means comp was not connected →
//     ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph, comp []string) (Tree, error) {
	vertices, members, err := prepare(g, comp)
	if err != nil {
		return Tree{}, err
	}
	tree := Tree{Vertices: vertices, Edges: make([]core.Edge, 0, len(vertices))}
	if len(vertices) <= 1 {
		return tree, nil
	}

	// 2. Each undirected edge once: only u < v.
	edges := make([]core.Edge, 0, len(vertices))
	for _, u := range vertices {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return Tree{}, err
		}
		for v, w := range nbrs {
			if u < v && members[v] {
				edges = append(edges, core.Edge{From: u, To: v, Weight: w})
			}
		}
	}

	// 3. Deterministic total order.
	sort.Slice(edges, func(i, j int) bool { return lessEdge(edges[i], edges[j]) })

	// 4–5. Greedy acceptance.
	ds := unionfind.New(vertices...)
	for _, e := range edges {
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			return Tree{}, err
		}
		if !merged {
			continue
		}
		tree.Edges = append(tree.Edges, e)
		tree.Weight += e.Weight
		if len(tree.Edges) == len(vertices)-1 {
			break
		}
	}

	// 6.
	if len(tree.Edges) < len(vertices)-1 {
		return Tree{}, errors.Wrapf(ErrDisconnected, "%d vertices, %d tree edges", len(vertices), len(tree.Edges))
	}

	return tree, nil
}

// prepare validates comp against g and returns its sorted vertices and a
// membership index.
func prepare(g *core.Graph, comp []string) ([]string, map[string]bool, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	members := make(map[string]bool, len(comp))
	vertices := make([]string, 0, len(comp))
	for _, id := range comp {
		if members[id] {
			continue
		}
		if !g.HasVertex(id) {
			return nil, nil, errors.Wrapf(core.ErrVertexNotFound, "vertex %q", id)
		}
		members[id] = true
		vertices = append(vertices, id)
	}
	sort.Strings(vertices)

	return vertices, members, nil
}
