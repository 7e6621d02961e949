package rcm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/rcm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphOf(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: i}))
	}
	for _, e := range edges {
		_, err := g.AddEdge(core.Edge{Source: e[0], Target: e[1]})
		require.NoError(t, err)
	}
	return g
}

func TestOrder_Empty(t *testing.T) {
	assert.Empty(t, rcm.Order(core.NewGraph()))
	assert.Empty(t, rcm.Order(nil))
}

func TestOrder_Star(t *testing.T) {
	// centre 0, leaves 1..3: CM starts at leaf 1 (degree 1, smallest id),
	// visits 0, then 2 and 3; reversed.
	g := graphOf(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	assert.Equal(t, core.Ordering{3, 2, 0, 1}, rcm.Order(g))
}

func TestOrder_ScrambledPathHasUnitBandwidth(t *testing.T) {
	// path 0-3-1-4-2 laid out with scrambled ids
	g := graphOf(t, 5, [][2]int{{0, 3}, {3, 1}, {1, 4}, {4, 2}})
	ord := rcm.Order(g)

	require.True(t, ord.IsPermutationOf(g))
	assert.Equal(t, 1, rcm.Bandwidth(g, ord))
	assert.Equal(t, 3, rcm.Bandwidth(g, core.Ordering{0, 1, 2, 3, 4}))
}

func TestOrder_ComponentsAndIsolated(t *testing.T) {
	// components {0,4}, {1}, {2,3}
	g := graphOf(t, 5, [][2]int{{0, 4}, {2, 3}})
	// CM: [0 4] [1] [2 3] -> reversed
	assert.Equal(t, core.Ordering{3, 2, 1, 4, 0}, rcm.Order(g))
}

func TestOrder_PermutationOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(40)
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddNode(core.Node{ID: i * 2}))
		}
		for k := 0; k < n*2; k++ {
			u, v := rng.Intn(n)*2, rng.Intn(n)*2
			if u == v || g.HasEdge(u, v) {
				continue
			}
			_, err := g.AddEdge(core.Edge{Source: u, Target: v})
			require.NoError(t, err)
		}
		ord := rcm.Order(g)
		assert.Len(t, ord, n)
		assert.True(t, ord.IsPermutationOf(g), "trial %d", trial)
		assert.Equal(t, ord, rcm.Order(g), "deterministic")
	}
}
