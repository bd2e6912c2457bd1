package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/dijkstra"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runConnectivity(t *testing.T) {
	cmd, buf, v, fs := setup(t)

	require.NoError(t, runConnectivity(cmd, v, fs))
	out := buf.String()
	assert.Contains(t, out, "It has 2 components")
	assert.Contains(t, out, "BOG CUZ LIM MAD")
	assert.Contains(t, out, "HND NRT")
	assert.Contains(t, out, "Largest component: 4 airports")
}

func Test_runConnectivity_badFormat(t *testing.T) {
	cmd, _, v, fs := setup(t)
	v.Set("format", "xml")

	assert.EqualError(t, runConnectivity(cmd, v, fs), "unknown format: xml")
}

func Test_runMST(t *testing.T) {
	for _, method := range []string{"kruskal", "prim"} {
		t.Run(method, func(t *testing.T) {
			cmd, buf, v, fs := setup(t)
			v.Set("method", method)
			v.Set("edges", true)
			v.Set("format", "csv")

			require.NoError(t, runMST(cmd, v, fs))
			out := buf.String()
			assert.Contains(t, out, "Component 2")
			assert.Contains(t, out, "BOG,LIM")
			assert.Contains(t, out, "BOG,MAD")
			assert.Contains(t, out, "HND,NRT")
			assert.NotContains(t, out, "LIM,MAD", "heaviest leg of the LIM-BOG-MAD triangle")
		})
	}
}

func Test_runMST_unknownMethod(t *testing.T) {
	cmd, _, v, fs := setup(t)
	v.Set("method", "boruvka")

	assert.EqualError(t, runMST(cmd, v, fs), "unknown method: boruvka")
}

func Test_runAirport(t *testing.T) {
	cmd, buf, v, fs := setup(t)

	require.NoError(t, runAirport(cmd, v, fs, " cuz "))
	out := buf.String()
	assert.Contains(t, out, "Velasco Astete")
	assert.Contains(t, out, "Cusco")
	assert.Contains(t, out, "-13.5357")

	assert.ErrorIs(t, runAirport(cmd, v, fs, "XXX"), core.ErrVertexNotFound)
}

func Test_runFarthest(t *testing.T) {
	cmd, buf, v, fs := setup(t)
	v.Set("limit", 2)
	v.Set("format", "csv")

	require.NoError(t, runFarthest(cmd, v, fs, "cuz"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1,MAD,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2,BOG,"), lines[2])
}

func Test_runFarthest_filter(t *testing.T) {
	cmd, buf, v, fs := setup(t)
	v.Set("limit", 10)
	v.Set("filter", `country == "Peru"`)
	v.Set("format", "csv")

	require.NoError(t, runFarthest(cmd, v, fs, "MAD"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1,CUZ,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2,LIM,"), lines[2])

	v.Set("filter", "country ==")
	assert.Error(t, runFarthest(cmd, v, fs, "MAD"))
}

func Test_runFarthest_badMaxLeg(t *testing.T) {
	cmd, _, v, fs := setup(t)
	v.Set("limit", 10)
	v.Set("max-leg", -5.0)

	assert.ErrorIs(t, runFarthest(cmd, v, fs, "LIM"), dijkstra.ErrOptionViolation)
}

func Test_runPath(t *testing.T) {
	cmd, buf, v, fs := setup(t)
	v.Set("format", "csv")
	v.Set("geojson", "route.geojson")

	require.NoError(t, runPath(cmd, v, fs, "cuz", "mad"))
	out := buf.String()
	assert.Contains(t, out, "Shortest route from CUZ to MAD")
	assert.Contains(t, out, "0,CUZ,")
	assert.Contains(t, out, "1,LIM,")
	assert.Contains(t, out, "2,MAD,")
	assert.Contains(t, out, "Route map saved as route.geojson")

	b, err := afero.ReadFile(fs, "route.geojson")
	require.NoError(t, err)
	assert.Contains(t, string(b), `"LineString"`)
}

func Test_runPath_fewestHops(t *testing.T) {
	cmd, buf, v, fs := setup(t)
	v.Set("format", "csv")
	v.Set("fewest-hops", true)
	// LIM-MAD is about 9500 km; BOG-MAD about 8000 km.
	v.Set("max-leg", 9000.0)

	require.NoError(t, runPath(cmd, v, fs, "LIM", "MAD"))
	out := buf.String()
	assert.Contains(t, out, "1,BOG,")
	assert.Contains(t, out, "2,MAD,")
}

func Test_runPath_maxHops(t *testing.T) {
	cmd, buf, v, fs := setup(t)
	v.Set("format", "csv")
	v.Set("fewest-hops", true)
	v.Set("max-leg", 9000.0)

	// Without the LIM-MAD leg the route needs two legs.
	v.Set("max-hops", 1)
	assert.ErrorIs(t, runPath(cmd, v, fs, "LIM", "MAD"), bfs.ErrNoPath)

	v.Set("max-hops", 2)
	require.NoError(t, runPath(cmd, v, fs, "LIM", "MAD"))
	assert.Contains(t, buf.String(), "2,MAD,")

	v.Set("max-hops", -1)
	assert.ErrorIs(t, runPath(cmd, v, fs, "LIM", "MAD"), bfs.ErrOptionViolation)

	v.Set("max-hops", 0)
	v.Set("max-leg", -5.0)
	assert.ErrorIs(t, runPath(cmd, v, fs, "LIM", "MAD"), bfs.ErrOptionViolation)
}

func Test_runPath_noPath(t *testing.T) {
	cmd, _, v, fs := setup(t)

	assert.ErrorIs(t, runPath(cmd, v, fs, "LIM", "NRT"), dijkstra.ErrNoPath)
	assert.ErrorIs(t, runPath(cmd, v, fs, "LIM", "XXX"), core.ErrVertexNotFound)

	v.Set("fewest-hops", true)
	assert.ErrorIs(t, runPath(cmd, v, fs, "XXX", "LIM"), core.ErrVertexNotFound)
}

func Test_runMap(t *testing.T) {
	cmd, buf, v, fs := setup(t)
	v.Set("output", "airports.geojson")
	v.Set("filter", `country == "Japan"`)

	require.NoError(t, runMap(cmd, v, fs))
	assert.Contains(t, buf.String(), "Map with 2 airports saved as airports.geojson")

	b, err := afero.ReadFile(fs, "airports.geojson")
	require.NoError(t, err)
	assert.Contains(t, string(b), `"NRT"`)
	assert.NotContains(t, string(b), `"LIM"`)
}

func Test_runMenu(t *testing.T) {
	cmd, buf, v, fs := setup(t)
	cmd.SetIn(bytes.NewBufferString("1\n3\nlim\n4\nxxx\n5\ncuz\nmad\n6\n9\n7\n"))

	require.NoError(t, runMenu(cmd, v, fs))
	out := buf.String()
	assert.Contains(t, out, "It has 2 components")
	assert.Contains(t, out, "Jorge Chavez")
	assert.Contains(t, out, "error:")
	assert.Contains(t, out, "Route map saved as mapa_camino_aeropuertos.geojson")
	assert.Contains(t, out, "Map with 6 airports saved as mapa_aeropuertos.geojson")
	assert.Contains(t, out, "Invalid option")
	assert.Contains(t, out, "Bye.")

	ok, err := afero.Exists(fs, "mapa_aeropuertos.geojson")
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_runMenu_eof(t *testing.T) {
	cmd, _, v, fs := setup(t)
	cmd.SetIn(strings.NewReader("2\n"))

	assert.NoError(t, runMenu(cmd, v, fs))
}
