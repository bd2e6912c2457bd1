// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Vertices are processed in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/core"
)

// ShortestPaths computes shortest distances from source to all other
// vertices in g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (core.ErrVertexNotFound).
//
// Weights are guaranteed finite and non-negative by core.Graph.AddEdge, so
// no pre-scan is needed.
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph
	if !g.HasVertex(source) {
		return nil, errors.Wrapf(core.ErrVertexNotFound, "source %q", source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices, source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64 // vertex → best known distance
	prev    map[string]string  // vertex → predecessor on a shortest path
	visited map[string]bool    // finalized vertices
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init(vertices []string, source string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process is the core loop. It stops when the heap empties or the closest
// pending vertex lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of the settled
// vertex u. Only a strictly shorter distance replaces the current one.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return errors.Wrapf(err, "dijkstra: neighbors of %q", u)
	}

	for v, w := range neighbors {
		if r.visited[v] || w > r.options.MaxLeg {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
