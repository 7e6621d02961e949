package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/netquiz/bfs"
	"github.com/katalvlaran/netquiz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGraph creates nodes 0..n-1 and the given undirected edges.
func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
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

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := buildGraph(t, 1, nil)
	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestBFS_Depths(t *testing.T) {
	// 0-1-2-3 with a chord 0-2
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 2}})

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2}, res.Depth)
}

func TestBFS_NeighborOrder(t *testing.T) {
	// star centred on 0 with leaves 1,2,3; leaf 1 has an extra neighbor 4
	g := buildGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}})

	byDegree := func(a, b int) bool { return g.Degree(a) < g.Degree(b) }
	res, err := bfs.BFS(g, 0, bfs.WithNeighborOrder(byDegree))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1, 4}, res.Order)
}

func TestBFS_DescendingNeighborOrder(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	res, err := bfs.BFS(g, 0, bfs.WithNeighborOrder(func(a, b int) bool { return a > b }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2, 1}, res.Order)
}

func TestBFS_HooksAndCancel(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})

	var visited, depths []int
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, depth int) error {
		visited = append(visited, id)
		depths = append(depths, depth)
		if id == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, visited)
	assert.Equal(t, []int{0, 1}, depths)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{{4, 5}, {0, 2}, {2, 3}})
	assert.Equal(t, [][]int{{0, 2, 3}, {1}, {4, 5}}, bfs.Components(g))
	assert.Nil(t, bfs.Components(nil))
}
