package main

import (
	"fmt"
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/flightnet/connectivity"
	"github.com/katalvlaran/flightnet/core"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewConnectivityCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "connectivity"
	cmd.Aliases = []string{"components"}
	cmd.Short = "Check whether every airport is reachable from every other"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runConnectivity(cmd, v, fs) }

	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|simple}")

	return cmd
}

func runConnectivity(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	g, err := loadGraph(v, fs)
	if err != nil {
		return err
	}
	return printConnectivity(cmd.OutOrStdout(), g, format)
}

// sampleSize bounds how many airport codes are listed per component.
const sampleSize = 5

func printConnectivity(w io.Writer, g *core.Graph, format string) error {
	comps := connectivity.Components(g)
	if len(comps) <= 1 {
		fmt.Fprintln(w, title("The graph is connected."))
		return nil
	}
	fmt.Fprintln(w, title(fmt.Sprintf("The graph is not connected. It has %d components:", len(comps))))

	sizes := connectivity.Sizes(comps)
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "airports", "sample"})
	for i, c := range comps {
		t.AppendRow(table.Row{i + 1, sizes[i], sample(c)})
	}
	render(t, format)
	fmt.Fprintf(w, "Largest component: %d airports\n", connectivity.Largest(comps).Cardinality())
	return nil
}

func sample(c mapset.Set[string]) string {
	codes := mapset.Sorted(c)
	if len(codes) > sampleSize {
		return strings.Join(codes[:sampleSize], " ") + " …"
	}
	return strings.Join(codes, " ")
}
