package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/flightnet/bfs"
	"github.com/katalvlaran/flightnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// network is LIM-BOG-MAD plus the long LIM-MAD leg, MAD-CDG, and an
// isolated NRT-HND pair.
func network(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("LIM", "BOG", 1880))
	require.NoError(t, g.AddEdge("BOG", "MAD", 8030))
	require.NoError(t, g.AddEdge("LIM", "MAD", 9500))
	require.NoError(t, g.AddEdge("MAD", "CDG", 1060))
	require.NoError(t, g.AddEdge("NRT", "HND", 60))

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A", nil))
	for _, opt := range []bfs.Option{bfs.WithMaxHops(-1), bfs.WithMaxLeg(0), bfs.WithMaxLeg(-5)} {
		_, err = bfs.BFS(g, "A", opt)
		assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	}
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", nil))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0}, res.Hops)
	assert.Empty(t, res.Parent)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestBFS_CycleHops(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "A", 100))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Hops)
	assert.Equal(t, "B", res.Parent["C"])
}

func TestBFS_StaysInComponent(t *testing.T) {
	res, err := bfs.BFS(network(t), "NRT")
	require.NoError(t, err)
	assert.Equal(t, []string{"NRT", "HND"}, res.Order)
	assert.False(t, res.Reached("LIM"))

	_, err = res.PathTo("LIM")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_OrderIsSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"Z", "B", "M"} {
		require.NoError(t, g.AddEdge("HUB", id, 1))
	}

	res, err := bfs.BFS(g, "HUB")
	require.NoError(t, err)
	assert.Equal(t, []string{"HUB", "B", "M", "Z"}, res.Order)
}

func TestBFS_MaxHops(t *testing.T) {
	g := network(t)
	cases := []struct {
		hops int
		want []string
	}{
		{0, []string{"LIM", "BOG", "MAD", "CDG"}},
		{1, []string{"LIM", "BOG", "MAD"}},
		{2, []string{"LIM", "BOG", "MAD", "CDG"}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS(g, "LIM", bfs.WithMaxHops(tc.hops))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "hops=%d", tc.hops)
	}
}

func TestBFS_MaxLeg(t *testing.T) {
	g := network(t)

	res, err := bfs.BFS(g, "LIM")
	require.NoError(t, err)
	direct, err := res.PathTo("CDG")
	require.NoError(t, err)
	assert.Equal(t, []string{"LIM", "MAD", "CDG"}, direct)

	res, err = bfs.BFS(g, "LIM", bfs.WithMaxLeg(9000))
	require.NoError(t, err)
	viaBOG, err := res.PathTo("CDG")
	require.NoError(t, err)
	assert.Equal(t, []string{"LIM", "BOG", "MAD", "CDG"}, viaBOG)
	assert.Equal(t, 3, res.Hops["CDG"])

	// A leg equal to the limit is allowed.
	res, err = bfs.BFS(g, "LIM", bfs.WithMaxLeg(1880))
	require.NoError(t, err)
	assert.Equal(t, []string{"LIM", "BOG"}, res.Order)

	res, err = bfs.BFS(g, "LIM", bfs.WithMaxLeg(1000))
	require.NoError(t, err)
	assert.Equal(t, []string{"LIM"}, res.Order)
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(network(t), "LIM", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	//nolint:staticcheck // nil context falls back to the default.
	res, err := bfs.BFS(network(t), "LIM", bfs.WithContext(nil))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
}

func TestSweep(t *testing.T) {
	assert.Nil(t, bfs.Sweep(nil))
	assert.Empty(t, bfs.Sweep(core.NewGraph()))

	g := network(t)
	require.NoError(t, g.AddVertex("ZZZ", nil))

	comps := bfs.Sweep(g)
	assert.Equal(t, [][]string{
		{"BOG", "LIM", "MAD", "CDG"},
		{"HND", "NRT"},
		{"ZZZ"},
	}, comps)
}

// TestSweep_Partition checks that every airport lands in exactly one
// component and that each component matches a single-start search.
func TestSweep_Partition(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 30; i++ {
		u := string(rune('A' + i%26))
		v := string(rune('A' + (i*7+3)%26))
		require.NoError(t, g.AddEdge(u+"1", v+"1", float64(i+1)))
	}

	seen := map[string]int{}
	for _, comp := range bfs.Sweep(g) {
		res, err := bfs.BFS(g, comp[0])
		require.NoError(t, err)
		assert.ElementsMatch(t, res.Order, comp)
		for _, id := range comp {
			seen[id]++
		}
	}
	assert.Len(t, seen, g.VertexCount())
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

// TestSweep_DoesNotAlias makes sure appending to one component cannot
// overwrite the next.
func TestSweep_DoesNotAlias(t *testing.T) {
	comps := bfs.Sweep(network(t))
	require.Len(t, comps, 2)
	_ = append(comps[0], "XXX")
	assert.Equal(t, []string{"HND", "NRT"}, comps[1])
}
