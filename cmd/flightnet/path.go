package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/flightnet/airports"
	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dijkstra"
	"github.com/katalvlaran/flightnet/geojson"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewPathCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "path FROM TO"
	cmd.Aliases = []string{"route"}
	cmd.Short = "Show the shortest route between two airports"
	cmd.Args = cobra.ExactArgs(2)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runPath(cmd, v, fs, args[0], args[1])
	}

	cmd.Flags().Bool("fewest-hops", false, "Minimize the number of legs instead of the distance")
	cmd.Flags().Float64("max-leg", 0, "Skip legs longer than this many `km` (0 = no limit)")
	cmd.Flags().Int("max-hops", 0, "With --fewest-hops, give up beyond this many legs (0 = no limit)")
	cmd.Flags().String("geojson", "", "Also write the route as GeoJSON to this `file`")
	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|simple}")

	return cmd
}

func runPath(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, from, to string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	g, err := loadGraph(v, fs)
	if err != nil {
		return err
	}
	from, to = airports.NormalizeCode(from), airports.NormalizeCode(to)

	var route []string
	if v.GetBool("fewest-hops") {
		route, err = fewestHops(cmd.Context(), g, from, to, hopOptions(v)...)
	} else {
		var p dijkstra.Path
		p, err = dijkstra.ShortestPath(g, from, to, routeOptions(v)...)
		route = p.Vertices
	}
	if err != nil {
		return err
	}

	if err := printPath(cmd.OutOrStdout(), g, route, format); err != nil {
		return err
	}
	if out := v.GetString("geojson"); out != "" {
		if err := writeRoute(fs, out, g, route); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Route map saved as %s\n", out)
	}
	return nil
}

// hopOptions maps the path flags onto bfs options.
func hopOptions(v *viper.Viper) []bfs.Option {
	var opts []bfs.Option
	if leg := v.GetFloat64("max-leg"); leg != 0 {
		opts = append(opts, bfs.WithMaxLeg(leg))
	}
	if hops := v.GetInt("max-hops"); hops != 0 {
		opts = append(opts, bfs.WithMaxHops(hops))
	}
	return opts
}

// fewestHops finds a route with the least number of legs.
func fewestHops(ctx context.Context, g *core.Graph, from, to string, opts ...bfs.Option) ([]string, error) {
	if !g.HasVertex(to) {
		return nil, errors.Wrapf(core.ErrVertexNotFound, "target %q", to)
	}
	res, err := bfs.BFS(g, from, append(opts, bfs.WithContext(ctx))...)
	if err != nil {
		if errors.Is(err, bfs.ErrStartVertexNotFound) {
			return nil, errors.Wrapf(core.ErrVertexNotFound, "source %q", from)
		}
		return nil, err
	}
	return res.PathTo(to)
}

func printPath(w io.Writer, g *core.Graph, route []string, format string) error {
	if len(route) == 0 {
		return nil
	}
	fmt.Fprintln(w, title(fmt.Sprintf("Shortest route from %s to %s:", route[0], route[len(route)-1])))

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "code", "name", "city", "country", "latitude", "longitude", "leg", "total"})
	total := 0.0
	for i, code := range route {
		a, err := airports.Lookup(g, code)
		if err != nil {
			return err
		}
		leg := 0.0
		if i > 0 {
			leg, _ = g.Weight(route[i-1], code)
		}
		total += leg
		t.AppendRow(table.Row{i, a.Code, a.Name, a.City, a.Country, a.Latitude, a.Longitude, km(leg), km(total)})
	}
	render(t, format)
	return nil
}

func writeRoute(fs afero.Fs, name string, g *core.Graph, route []string) error {
	fc, err := geojson.Route(g, route)
	if err != nil {
		return err
	}
	return writeGeoJSON(fs, name, fc)
}
