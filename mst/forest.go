package mst

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/flightnet/connectivity"
	"github.com/katalvlaran/flightnet/core"
)

// MinimumSpanningForest computes, independently for every connected
// component of g, its minimum spanning tree, and the grand total weight.
//
//	– Components come from WithComponents, or connectivity.Components(g).
//	– Each component runs the selected Method on its induced subgraph.
//	– Trees are returned ordered by smallest vertex ID.
//
// An empty graph yields an empty forest with total weight 0.
func MinimumSpanningForest(g *core.Graph, opts ...Option) (*Forest, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var build func(*core.Graph, []string) (Tree, error)
	switch cfg.Method {
	case MethodKruskal:
		build = Kruskal
	case MethodPrim:
		build = Prim
	default:
		return nil, ErrUnknownMethod
	}

	comps := cfg.Components
	if comps == nil {
		comps = connectivity.Components(g)
	}

	forest := &Forest{Trees: make([]Tree, 0, len(comps))}
	for _, comp := range comps {
		tree, err := build(g, memberIDs(comp))
		if err != nil {
			return nil, err
		}
		forest.Trees = append(forest.Trees, tree)
		forest.TotalWeight += tree.Weight
	}
	sort.Slice(forest.Trees, func(i, j int) bool {
		return first(forest.Trees[i]) < first(forest.Trees[j])
	})

	return forest, nil
}

func memberIDs(comp mapset.Set[string]) []string {
	if comp == nil {
		return nil
	}

	return comp.ToSlice()
}

func first(t Tree) string {
	if len(t.Vertices) == 0 {
		return ""
	}

	return t.Vertices[0]
}
