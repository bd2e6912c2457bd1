// Package flightnet analyzes an air-route network loaded from a CSV of
// airport pairs.
//
// The graph is undirected and weighted by great-circle distance in
// kilometres. Subpackages:
//
//	core/         - thread-safe Graph store: vertices with attributes, mirrored edges
//	unionfind/    - generic disjoint-set forest with path compression and union by rank
//	bfs/          - fewest-leg search with range and hop limits; component sweep
//	connectivity/ - connected components and connectivity checks
//	mst/          - minimum spanning forest (Kruskal or Prim per component)
//	dijkstra/     - single-source shortest paths, path rebuild and k-farthest
//	airports/     - CSV loader, Haversine distance and CEL airport filters
//	geojson/      - GeoJSON rendering of airports and routes
//	cmd/flightnet - command-line interface
//
// Quick start:
//
//	g, err := airports.Load(afero.NewOsFs(), "flights_final.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	forest, _ := mst.MinimumSpanningForest(g)
//	fmt.Printf("%.2f km\n", forest.TotalWeight)
package flightnet
