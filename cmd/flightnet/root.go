package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "flightnet"
	cmd.Short = "flightnet analyzes an air-route network: connectivity, spanning trees and shortest routes"
	cmd.Version = cobrax.VersionFunc()
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cobrax.RootPersistentPreRunE(cmd, v, fs, args)
	}
	cmd.PersistentFlags().StringP("file", "f", "flights_final.csv", "The route `CSV` file to load")
	cmd.PersistentFlags().Bool("skip-invalid", false, "Skip malformed rows instead of failing")
	_ = cmd.MarkPersistentFlagFilename("file", "csv")

	cmd.AddCommand(NewConnectivityCommand(v, fs))
	cmd.AddCommand(NewMSTCommand(v, fs))
	cmd.AddCommand(NewAirportCommand(v, fs))
	cmd.AddCommand(NewFarthestCommand(v, fs))
	cmd.AddCommand(NewPathCommand(v, fs))
	cmd.AddCommand(NewMapCommand(v, fs))
	cmd.AddCommand(NewMenuCommand(v, fs))
	cmd.AddCommand(NewGenConfCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
