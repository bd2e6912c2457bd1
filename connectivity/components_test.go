package connectivity_test

import (
	"fmt"
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/flightnet/connectivity"
	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 10))

	return g
}

// containsSet reports whether want is one of comps (set equality).
func containsSet(comps []mapset.Set[string], want mapset.Set[string]) bool {
	for _, c := range comps {
		if c.Equal(want) {
			return true
		}
	}

	return false
}

func TestComponents_Triangle(t *testing.T) {
	g := triangle(t)
	comps := connectivity.Components(g)
	require.Len(t, comps, 1)
	assert.True(t, comps[0].Equal(mapset.NewSet("A", "B", "C")))
	assert.True(t, connectivity.IsConnected(g))
}

func TestComponents_IsolatedVertex(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddVertex("D", nil))

	comps := connectivity.Components(g)
	require.Len(t, comps, 2)
	assert.True(t, containsSet(comps, mapset.NewSet("A", "B", "C")))
	assert.True(t, containsSet(comps, mapset.NewSet("D")))
	assert.False(t, connectivity.IsConnected(g))
	assert.ElementsMatch(t, []int{3, 1}, connectivity.Sizes(comps))
	assert.True(t, connectivity.Largest(comps).Equal(mapset.NewSet("A", "B", "C")))
}

func TestComponents_Empty(t *testing.T) {
	g := core.NewGraph()
	assert.Empty(t, connectivity.Components(g))
	assert.True(t, connectivity.IsConnected(g))
	assert.Nil(t, connectivity.Components(nil))
	assert.Nil(t, connectivity.Largest(nil))
}

func TestComponentOf(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddEdge("X", "Y", 3))

	c, err := connectivity.ComponentOf(g, "Y")
	require.NoError(t, err)
	assert.True(t, c.Equal(mapset.NewSet("X", "Y")))

	_, err = connectivity.ComponentOf(g, "nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestComponents_PartitionProperty checks on random graphs that components
// partition the vertex set and agree with union-find reachability.
func TestComponents_PartitionProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		n := 1 + r.Intn(30)
		g := core.NewGraph()
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("V%02d", i)
			require.NoError(t, g.AddVertex(ids[i], nil))
		}
		uf := unionfind.New(ids...)
		for e := r.Intn(n + 1); e > 0; e-- {
			u, v := ids[r.Intn(n)], ids[r.Intn(n)]
			require.NoError(t, g.AddEdge(u, v, r.Float64()*100))
			_, err := uf.Union(u, v)
			require.NoError(t, err)
		}

		comps := connectivity.Components(g)
		assert.Len(t, comps, uf.Count())

		seen := mapset.NewSet[string]()
		for _, c := range comps {
			assert.True(t, seen.Intersect(c).IsEmpty(), "components overlap")
			seen = seen.Union(c)
			members := c.ToSlice()
			for _, m := range members {
				same, err := uf.Connected(members[0], m)
				require.NoError(t, err)
				assert.True(t, same)
			}
		}
		assert.True(t, seen.Equal(mapset.NewSet(ids...)))
	}
}

func TestComponents_Idempotent(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddEdge("P", "Q", 1))

	first := connectivity.Components(g)
	second := connectivity.Components(g)
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

// TestComponents_OrderedBySmallestID checks that components follow the
// sweep order and that isolated airports each get their own set.
func TestComponents_OrderedBySmallestID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("NRT", "HND", 60))
	require.NoError(t, g.AddEdge("LIM", "BOG", 1880))
	require.NoError(t, g.AddVertex("AAA", nil))
	require.NoError(t, g.AddVertex("ZZZ", nil))

	comps := connectivity.Components(g)
	require.Len(t, comps, 4)
	assert.True(t, comps[0].Equal(mapset.NewSet("AAA")))
	assert.True(t, comps[1].Equal(mapset.NewSet("BOG", "LIM")))
	assert.True(t, comps[2].Equal(mapset.NewSet("HND", "NRT")))
	assert.True(t, comps[3].Equal(mapset.NewSet("ZZZ")))
	assert.Equal(t, []int{1, 2, 2, 1}, connectivity.Sizes(comps))
	assert.True(t, connectivity.Largest(comps).Equal(comps[1]))
}
