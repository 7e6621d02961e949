package layout_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/netquiz/builder"
	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertUnitAxes(t *testing.T, g *core.Graph, pick func(*core.Node) core.Point) {
	t.Helper()
	for axis := 0; axis < 2; axis++ {
		sawZero, sawOne, allHalf := false, false, true
		for _, n := range g.Nodes() {
			v := pick(n)[axis]
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			sawZero = sawZero || v == 0
			sawOne = sawOne || v == 1
			allHalf = allHalf && v == 0.5
		}
		assert.True(t, allHalf || (sawZero && sawOne), "axis %d", axis)
	}
}

func TestNativeProvider_UnitRangeAndPermutation(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(4)}, builder.SocialNetwork(20, 0.1))
	require.NoError(t, err)

	out, err := layout.Extract(context.Background(), g, layout.NewNativeProvider())
	require.NoError(t, err)

	ranks := map[int]bool{}
	for _, n := range out.Nodes() {
		require.NotNil(t, n.Gansner)
		require.NotNil(t, n.Hierarchy)
		require.NotNil(t, n.Radial)
		ranks[*n.Gansner] = true
	}
	for r := 0; r < out.NodeCount(); r++ {
		assert.True(t, ranks[r], "rank %d missing", r)
	}
	assertUnitAxes(t, out, func(n *core.Node) core.Point { return *n.Hierarchy })
	assertUnitAxes(t, out, func(n *core.Node) core.Point { return *n.Radial })
}

func TestNativeProvider_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(8)}, builder.Plain(15, 0.1))
	require.NoError(t, err)

	p := layout.NewNativeProvider()
	a, err := layout.Extract(context.Background(), g, p)
	require.NoError(t, err)
	b, err := layout.Extract(context.Background(), a, p)
	require.NoError(t, err)

	for _, na := range a.Nodes() {
		nb, _ := b.Node(na.ID)
		assert.Equal(t, *na.Gansner, *nb.Gansner)
		assert.Equal(t, *na.Hierarchy, *nb.Hierarchy)
		assert.Equal(t, *na.Radial, *nb.Radial)
	}
}

func TestNativeProvider_LayersFollowBFSDepth(t *testing.T) {
	g := pathGraph(t, 4)
	pos, err := layout.NewNativeProvider().Layout(context.Background(), g, layout.Request{Engine: layout.Hierarchical})
	require.NoError(t, err)
	for id := 0; id < 4; id++ {
		assert.Equal(t, -float64(id), pos[id][1])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = layout.NewNativeProvider().Layout(ctx, g, layout.Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
