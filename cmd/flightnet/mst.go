package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/flightnet/connectivity"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/mst"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewMSTCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "mst"
	cmd.Aliases = []string{"spanning-tree"}
	cmd.Short = "Compute the minimum spanning tree of every component"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runMST(cmd, v, fs) }

	cmd.Flags().String("method", mst.MethodKruskal, "The algorithm {"+strings.Join(mst.Methods, "|")+"}")
	cmd.Flags().Bool("edges", false, "Print the edges of every tree")
	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|simple}")

	return cmd
}

func runMST(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	method := v.GetString("method")
	format := v.GetString("format")
	if !slices.Contains(mst.Methods, method) {
		return errors.Newf("unknown method: %s", method)
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	g, err := loadGraph(v, fs)
	if err != nil {
		return err
	}
	return printMST(cmd.OutOrStdout(), g, method, v.GetBool("edges"), format)
}

func printMST(w io.Writer, g *core.Graph, method string, edges bool, format string) error {
	forest, err := mst.MinimumSpanningForest(g,
		mst.WithMethod(method),
		mst.WithComponents(connectivity.Components(g)),
	)
	if err != nil {
		return err
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "airports", "edges", "weight"})
	for i, tree := range forest.Trees {
		t.AppendRow(table.Row{i + 1, len(tree.Vertices), len(tree.Edges), km(tree.Weight)})
	}
	t.AppendFooter(table.Row{"", "", "total", km(forest.TotalWeight)})
	render(t, format)

	if !edges {
		return nil
	}
	for i, tree := range forest.Trees {
		if len(tree.Edges) == 0 {
			continue
		}
		fmt.Fprintln(w, title(fmt.Sprintf("Component %d", i+1)))
		et := newTable(w)
		et.AppendHeader(table.Row{"from", "to", "distance"})
		for _, e := range tree.Edges {
			et.AppendRow(table.Row{e.From, e.To, km(e.Weight)})
		}
		render(et, format)
	}
	return nil
}
