package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dijkstra"
)

// ExampleShortestPath picks the connection through BOG over the longer
// direct leg.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("LIM", "BOG", 1880)
	_ = g.AddEdge("BOG", "MIA", 2430)
	_ = g.AddEdge("LIM", "MIA", 4500)

	p, err := dijkstra.ShortestPath(g, "LIM", "MIA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Vertices, p.Distance)
	// Output:
	// [LIM BOG MIA] 4310
}

// ExampleKFarthest lists the most distant airports reachable from LIM.
func ExampleKFarthest() {
	g := core.NewGraph()
	_ = g.AddEdge("LIM", "BOG", 1880)
	_ = g.AddEdge("BOG", "MAD", 8030)
	_ = g.AddEdge("LIM", "SCL", 2460)

	top, err := dijkstra.KFarthest(g, "LIM", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range top {
		fmt.Printf("%s %.0f\n", r.ID, r.Distance)
	}
	// Output:
	// MAD 9910
	// SCL 2460
}
