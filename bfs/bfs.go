package bfs

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/core"
)

// walker holds queue and bookkeeping. One walker may run several times;
// vertices visited by an earlier run are never revisited.
type walker struct {
	g       *core.Graph
	opts    Options
	queue   []string
	head    int
	visited map[string]bool
	order   []string
	hops    map[string]int
	parent  map[string]string
}

func newWalker(g *core.Graph, opts Options) *walker {
	n := g.VertexCount()

	return &walker{
		g:       g,
		opts:    opts,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
		hops:    make(map[string]int, n),
		parent:  make(map[string]string, n),
	}
}

// BFS searches from start and reports leg counts to every reached airport.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "%q", start)
	}

	w := newWalker(g, o)
	if err := w.run(start); err != nil {
		return nil, err
	}

	return &Result{Start: start, Order: w.order, Hops: w.hops, Parent: w.parent}, nil
}

// Sweep partitions g by reachability. Each element is the visit order of
// one component, starting at its smallest ID; components are ordered by
// that ID. A nil graph yields nil.
func Sweep(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	w := newWalker(g, DefaultOptions())
	var comps [][]string
	for _, id := range g.Vertices() {
		if w.visited[id] {
			continue
		}
		from := len(w.order)
		// A background context never fires and core never removes a
		// vertex, so neighbor lookups of listed IDs always succeed.
		if err := w.run(id); err != nil {
			panic(err)
		}
		comps = append(comps, w.order[from:len(w.order):len(w.order)])
	}

	return comps
}

// run drains the queue from start, skipping anything already visited.
func (w *walker) run(start string) error {
	w.reach(start, 0, "")
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		id := w.queue[w.head]
		w.head++
		if err := w.expand(id); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) reach(id string, hops int, parent string) {
	w.visited[id] = true
	w.hops[id] = hops
	if parent != "" {
		w.parent[id] = parent
	}
	w.order = append(w.order, id)
	w.queue = append(w.queue, id)
}

// expand enqueues the unvisited neighbors of id reachable by an allowed leg.
func (w *walker) expand(id string) error {
	next := w.hops[id] + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return nil
	}
	legs, err := w.g.Neighbors(id)
	if err != nil {
		return errors.Wrapf(ErrNeighbors, "%q: %v", id, err)
	}
	nbrs := make([]string, 0, len(legs))
	for v, km := range legs {
		if !w.visited[v] && km <= w.opts.MaxLeg {
			nbrs = append(nbrs, v)
		}
	}
	sort.Strings(nbrs)
	for _, v := range nbrs {
		w.reach(v, next, id)
	}

	return nil
}
