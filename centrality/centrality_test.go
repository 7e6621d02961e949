package centrality_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/netquiz/centrality"
	"github.com/katalvlaran/netquiz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphWithDegree builds nodes 0..n-1 carrying "degree" plus a stray attribute.
func graphWithDegree(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	deg := make([]int, n)
	for _, e := range edges {
		deg[e[0]]++
		deg[e[1]]++
	}
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.Node{
			ID:         i,
			Attributes: map[string]float64{"degree": float64(deg[i]), "Attribute 1": 0.4},
		}))
	}
	for _, e := range edges {
		_, err := g.AddEdge(core.Edge{Source: e[0], Target: e[1]})
		require.NoError(t, err)
	}
	return g
}

func TestEnrich_PathOfThree(t *testing.T) {
	g := graphWithDegree(t, 3, [][2]int{{0, 1}, {1, 2}})

	out, err := centrality.Enrich(context.Background(), g)
	require.NoError(t, err)

	attr := func(id int) map[string]float64 {
		n, ok := out.Node(id)
		require.True(t, ok)
		return n.Attributes
	}
	for id := 0; id < 3; id++ {
		assert.Len(t, attr(id), 4)
		assert.NotContains(t, attr(id), "Attribute 1")
	}

	assert.Greater(t, attr(1)[centrality.AttrCloseness], attr(0)[centrality.AttrCloseness])
	assert.Greater(t, attr(1)[centrality.AttrCloseness], attr(2)[centrality.AttrCloseness])
	assert.InDelta(t, 1.0, attr(1)[centrality.AttrCloseness], 1e-12)
	assert.InDelta(t, 2.0/3.0, attr(0)[centrality.AttrCloseness], 1e-12)

	assert.Equal(t, 1.0, attr(1)[centrality.AttrBetweenness])
	assert.Equal(t, 0.0, attr(0)[centrality.AttrBetweenness])
	assert.Equal(t, 0.0, attr(2)[centrality.AttrBetweenness])

	assert.Equal(t, 2.0, attr(1)[centrality.AttrDegree])
	assert.Greater(t, attr(1)[centrality.AttrEigenvector], attr(0)[centrality.AttrEigenvector])
	assert.InDelta(t, attr(0)[centrality.AttrEigenvector], attr(2)[centrality.AttrEigenvector], 1e-9)

	orig, _ := g.Node(0)
	assert.Contains(t, orig.Attributes, "Attribute 1", "input must stay untouched")
}

func TestEnrich_Idempotent(t *testing.T) {
	g := graphWithDegree(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})

	a, err := centrality.Enrich(context.Background(), g)
	require.NoError(t, err)
	b, err := centrality.Enrich(context.Background(), a)
	require.NoError(t, err)
	for _, na := range a.Nodes() {
		nb, _ := b.Node(na.ID)
		assert.Equal(t, na.Attributes, nb.Attributes)
	}
}

func TestEnrich_MissingDegree(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: 0}))
	require.NoError(t, g.AddNode(core.Node{ID: 1}))
	_, err := g.AddEdge(core.Edge{Source: 0, Target: 1})
	require.NoError(t, err)

	_, err = centrality.Enrich(context.Background(), g)
	var ake *core.AttributeKeyError
	require.ErrorAs(t, err, &ake)
	assert.Equal(t, "degree", ake.Key)
	assert.Equal(t, 0, ake.Source)

	out, err := centrality.Enrich(context.Background(), g, centrality.WithStructuralDegree())
	require.NoError(t, err)
	n, _ := out.Node(1)
	assert.Equal(t, 1.0, n.Attributes[centrality.AttrDegree])
}

func TestEnrich_ConvergenceFailure(t *testing.T) {
	g := graphWithDegree(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	_, err := centrality.Enrich(context.Background(), g, centrality.WithMaxIterations(1))
	var ce *core.ConvergenceError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Iterations)
	assert.ErrorIs(t, err, core.ErrConvergence)
}

func TestEnrich_DisconnectedAndEmpty(t *testing.T) {
	g := graphWithDegree(t, 4, [][2]int{{0, 1}})
	out, err := centrality.Enrich(context.Background(), g)
	require.NoError(t, err)
	n, _ := out.Node(3)
	assert.Equal(t, 0.0, n.Attributes[centrality.AttrCloseness])
	n, _ = out.Node(0)
	// r=2 reachable of n=4: (1/1)·(1/3)
	assert.InDelta(t, 1.0/3.0, n.Attributes[centrality.AttrCloseness], 1e-12)

	out, err = centrality.Enrich(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, out.NodeCount())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = centrality.Enrich(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCloseness_Path(t *testing.T) {
	g := graphWithDegree(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	c, err := centrality.Closeness(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 3.0/6.0, c[0], 1e-12)
	assert.InDelta(t, 3.0/4.0, c[1], 1e-12)
	assert.InDelta(t, c[0], c[3], 1e-12)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = centrality.Closeness(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBetweenness_Star(t *testing.T) {
	g := graphWithDegree(t, 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	b := centrality.Betweenness(g)
	assert.InDelta(t, 1.0, b[0], 1e-12)
	for id := 1; id < 5; id++ {
		assert.Equal(t, 0.0, b[id])
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { centrality.WithTolerance(0) })
	assert.Panics(t, func() { centrality.WithMaxIterations(0) })
}
