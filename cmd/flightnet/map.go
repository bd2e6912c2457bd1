package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/airports"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/geojson"
	orbjson "github.com/paulmach/orb/geojson"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewMapCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "map"
	cmd.Short = "Write every airport as a GeoJSON map"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runMap(cmd, v, fs) }

	cmd.Flags().StringP("output", "o", "mapa_aeropuertos.geojson", "The GeoJSON `file` to write")
	cmd.Flags().String("filter", "", "A CEL `expression` over code, name, city, country, latitude, longitude")

	return cmd
}

func runMap(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	filter, err := airports.NewFilter(v.GetString("filter"))
	if err != nil {
		return err
	}
	g, err := loadGraph(v, fs)
	if err != nil {
		return err
	}
	out := v.GetString("output")
	n, err := writeMap(fs, out, g, filter)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Map with %d airports saved as %s\n", n, out)
	return nil
}

func writeMap(fs afero.Fs, name string, g *core.Graph, filter *airports.Filter) (int, error) {
	codes, err := filter.Select(g)
	if err != nil {
		return 0, err
	}
	fc, err := geojson.Airports(g, codes)
	if err != nil {
		return 0, err
	}
	return len(fc.Features), writeGeoJSON(fs, name, fc)
}

func writeGeoJSON(fs afero.Fs, name string, fc *orbjson.FeatureCollection) error {
	f, err := fs.Create(name)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	if err := geojson.Write(f, fc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
