package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/flightnet/airports"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dijkstra"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewFarthestCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "farthest CODE"
	cmd.Short = "List the airports with the longest shortest route from CODE"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runFarthest(cmd, v, fs, args[0]) }

	cmd.Flags().IntP("limit", "n", 10, "The number of airports to list")
	cmd.Flags().String("filter", "", "A CEL `expression` over code, name, city, country, latitude, longitude")
	cmd.Flags().Float64("max-leg", 0, "Skip legs longer than this many `km` (0 = no limit)")
	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|simple}")

	return cmd
}

func runFarthest(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, code string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	limit := v.GetInt("limit")
	if limit < 0 {
		return errors.Newf("invalid limit: %d", limit)
	}
	filter, err := airports.NewFilter(v.GetString("filter"))
	if err != nil {
		return err
	}
	g, err := loadGraph(v, fs)
	if err != nil {
		return err
	}
	return printFarthest(cmd.OutOrStdout(), g, airports.NormalizeCode(code), limit, filter, routeOptions(v), format)
}

// routeOptions translates shared route flags into dijkstra options.
func routeOptions(v *viper.Viper) []dijkstra.Option {
	var opts []dijkstra.Option
	if leg := v.GetFloat64("max-leg"); leg != 0 {
		opts = append(opts, dijkstra.WithMaxLeg(leg))
	}
	return opts
}

func printFarthest(w io.Writer, g *core.Graph, code string, limit int, filter *airports.Filter, opts []dijkstra.Option, format string) error {
	res, err := dijkstra.ShortestPaths(g, code, opts...)
	if err != nil {
		return err
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "code", "name", "city", "country", "distance"})
	n := 0
	for _, r := range res.Farthest(len(res.Dist)) {
		if n == limit {
			break
		}
		if r.ID == code {
			continue
		}
		a, err := airports.Lookup(g, r.ID)
		if err != nil {
			return err
		}
		ok, err := filter.Match(a)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		n++
		t.AppendRow(table.Row{n, a.Code, a.Name, a.City, a.Country, km(r.Distance)})
	}
	render(t, format)
	return nil
}
