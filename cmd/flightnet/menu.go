package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/flightnet/airports"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dijkstra"
	"github.com/katalvlaran/flightnet/mst"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	menuMapFile   = "mapa_aeropuertos.geojson"
	menuRouteFile = "mapa_camino_aeropuertos.geojson"
	menuFarthest  = 10
)

const menuText = `
Options:
1. Check whether the graph is connected
2. Compute the minimum spanning tree
3. Show airport details
4. Show the 10 farthest airports from an airport
5. Show the shortest route between two airports
6. Write the airport map
7. Exit`

func NewMenuCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "menu"
	cmd.Aliases = []string{"interactive"}
	cmd.Short = "Run the interactive menu over stdin"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runMenu(cmd, v, fs) }

	return cmd
}

func runMenu(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	g, err := loadGraph(v, fs)
	if err != nil {
		return err
	}
	m := &menu{g: g, fs: fs, in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout()}
	return m.loop()
}

type menu struct {
	g   *core.Graph
	fs  afero.Fs
	in  *bufio.Scanner
	out io.Writer
}

// ask prints prompt and returns the next input line; ok is false at EOF.
func (m *menu) ask(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) loop() error {
	for {
		fmt.Fprintln(m.out, menuText)
		choice, ok := m.ask("Select an option (1-7): ")
		if !ok {
			return m.in.Err()
		}
		if choice == "7" {
			fmt.Fprintln(m.out, "Bye.")
			return nil
		}
		if err := m.dispatch(choice); err != nil {
			fmt.Fprintln(m.out, color.RedString("error: %v", err))
		}
	}
}

func (m *menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return printConnectivity(m.out, m.g, "table")
	case "2":
		return printMST(m.out, m.g, mst.MethodKruskal, false, "table")
	case "3":
		code, ok := m.ask("Airport code: ")
		if !ok {
			return nil
		}
		return printAirport(m.out, m.g, airports.NormalizeCode(code))
	case "4":
		code, ok := m.ask("Airport code: ")
		if !ok {
			return nil
		}
		return printFarthest(m.out, m.g, airports.NormalizeCode(code), menuFarthest, nil, nil, "table")
	case "5":
		from, ok := m.ask("Origin airport code: ")
		if !ok {
			return nil
		}
		to, ok := m.ask("Destination airport code: ")
		if !ok {
			return nil
		}
		p, err := dijkstra.ShortestPath(m.g, airports.NormalizeCode(from), airports.NormalizeCode(to))
		if err != nil {
			return err
		}
		if err := printPath(m.out, m.g, p.Vertices, "table"); err != nil {
			return err
		}
		if err := writeRoute(m.fs, menuRouteFile, m.g, p.Vertices); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Route map saved as %s\n", menuRouteFile)
		return nil
	case "6":
		n, err := writeMap(m.fs, menuMapFile, m.g, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Map with %d airports saved as %s\n", n, menuMapFile)
		return nil
	default:
		fmt.Fprintln(m.out, "Invalid option. Choose a number from 1 to 7.")
		return nil
	}
}
