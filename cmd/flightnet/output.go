package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/flightnet/airports"
	"github.com/katalvlaran/flightnet/core"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var formats = []string{"table", "md", "csv", "tsv", "simple"}

func checkFormat(format string) error {
	if !slices.Contains(formats, format) {
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	return t
}

func render(t table.Writer, format string) {
	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.MiddleVertical = " "
		t.Render()
	}
}

var (
	title = color.CyanString
	key   = color.MagentaString
)

func km(d float64) string { return fmt.Sprintf("%.2f km", d) }

// loadGraph reads the route file named by the "file" setting.
func loadGraph(v *viper.Viper, fs afero.Fs) (*core.Graph, error) {
	opts := []airports.LoadOption{airports.WithLogger(slog.Default())}
	if v.GetBool("skip-invalid") {
		opts = append(opts, airports.WithSkipInvalid())
	}
	return airports.Load(fs, v.GetString("file"), opts...)
}

