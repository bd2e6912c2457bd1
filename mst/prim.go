// Package mst provides an implementation of Prim's Minimum Spanning Tree
// algorithm for a single connected component.
package mst

import (
	"container/heap"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/core"
)

// Prim computes the minimum spanning tree of the subgraph of g induced by
// comp, growing it from the smallest vertex ID with a min-heap.
//
// Steps:
//  1. Sort the component; a single vertex yields an empty tree.
//  2. Mark the root visited and push its edges into the heap.
//  3. While the heap is non-empty and the tree has < |V|-1 edges:
//     a. Pop the smallest edge under (Weight, From, To).
//     b. Skip it if its far endpoint is already visited.
//     c. Otherwise accept it and push the new vertex's edges.
//  4. Fewer than |V|-1 edges → ErrDisconnected.
//  5. Report the edges in (Weight, From, To) order, matching Kruskal.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, comp []string) (Tree, error) {
	vertices, members, err := prepare(g, comp)
	if err != nil {
		return Tree{}, err
	}
	tree := Tree{Vertices: vertices, Edges: make([]core.Edge, 0, len(vertices))}
	if len(vertices) <= 1 {
		return tree, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	pq := &edgePQ{}
	heap.Init(pq)

	// push enqueues every edge from u to an unvisited member.
	push := func(u string) error {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for v, w := range nbrs {
			if members[v] && !visited[v] {
				heap.Push(pq, candidate{Edge: core.Edge{From: u, To: v, Weight: w}.Canonical(), next: v})
			}
		}

		return nil
	}

	root := vertices[0]
	visited[root] = true
	if err := push(root); err != nil {
		return Tree{}, err
	}

	for pq.Len() > 0 && len(tree.Edges) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.next] {
			continue
		}
		visited[c.next] = true
		tree.Edges = append(tree.Edges, c.Edge)
		tree.Weight += c.Weight
		if err := push(c.next); err != nil {
			return Tree{}, err
		}
	}

	if len(tree.Edges) < n-1 {
		return Tree{}, errors.Wrapf(ErrDisconnected, "%d vertices, %d tree edges", n, len(tree.Edges))
	}
	sort.Slice(tree.Edges, func(i, j int) bool { return lessEdge(tree.Edges[i], tree.Edges[j]) })

	return tree, nil
}

// candidate is a heap entry: a canonical edge plus the endpoint it would
// add to the tree.
type candidate struct {
	core.Edge
	next string
}

// edgePQ implements heap.Interface for a min-heap of candidates, ordered by
// (Weight, From, To).
type edgePQ []candidate

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by the package-wide edge order.
func (pq edgePQ) Less(i, j int) bool { return lessEdge(pq[i].Edge, pq[j].Edge) }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
