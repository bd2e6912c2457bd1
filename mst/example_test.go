package mst_test

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/mst"
)

// ExampleMinimumSpanningForest connects two separate airport clusters with
// the cheapest set of legs.
func ExampleMinimumSpanningForest() {
	g := core.NewGraph()
	_ = g.AddEdge("LIM", "BOG", 1880)
	_ = g.AddEdge("BOG", "MIA", 2430)
	_ = g.AddEdge("LIM", "MIA", 4200)
	_ = g.AddEdge("NRT", "HND", 60)

	f, err := mst.MinimumSpanningForest(g, mst.WithMethod(mst.MethodPrim))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, tree := range f.Trees {
		fmt.Println(tree.Vertices, tree.Weight)
	}
	fmt.Println("total:", f.TotalWeight)
	// Output:
	// [BOG LIM MIA] 4310
	// [HND NRT] 60
	// total: 4370
}
