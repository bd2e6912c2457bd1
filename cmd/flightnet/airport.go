package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/flightnet/airports"
	"github.com/katalvlaran/flightnet/core"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewAirportCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "airport CODE"
	cmd.Aliases = []string{"info"}
	cmd.Short = "Show the details of one airport"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runAirport(cmd, v, fs, args[0]) }

	return cmd
}

func runAirport(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, code string) error {
	g, err := loadGraph(v, fs)
	if err != nil {
		return err
	}
	return printAirport(cmd.OutOrStdout(), g, airports.NormalizeCode(code))
}

func printAirport(w io.Writer, g *core.Graph, code string) error {
	a, err := airports.Lookup(g, code)
	if err != nil {
		return err
	}
	degree := 0
	if nbrs, err := g.NeighborIDs(code); err == nil {
		degree = len(nbrs)
	}

	fmt.Fprintf(w, "%s %s\n", title(a.Code), a.Name)
	fmt.Fprintf(w, "  %s   : %s\n", key("city"), a.City)
	fmt.Fprintf(w, "  %s: %s\n", key("country"), a.Country)
	fmt.Fprintf(w, "  %s    : %.4f\n", key("lat"), a.Latitude)
	fmt.Fprintf(w, "  %s    : %.4f\n", key("lon"), a.Longitude)
	fmt.Fprintf(w, "  %s : %d\n", key("routes"), degree)
	return nil
}
