// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph lifecycle, query and validation contracts.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/netquiz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleWithTail builds 0-1, 1-2, 0-2, 2-3.
func triangleWithTail(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(core.Node{ID: i, Name: name}))
	}
	for _, p := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}} {
		added, err := g.AddEdge(core.Edge{Source: p[0], Target: p[1]})
		require.NoError(t, err)
		require.True(t, added)
	}
	return g
}

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: 3, Name: "D"}))
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(4))

	n, ok := g.Node(3)
	require.True(t, ok)
	assert.NotNil(t, n.Attributes, "nil attribute map must be replaced")

	err := g.AddNode(core.Node{ID: 3, Name: "again"})
	var mie *core.MalformedInputError
	require.ErrorAs(t, err, &mie)
	assert.Equal(t, []int{3}, mie.IDs)
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	assert.ErrorIs(t, g.AddNode(core.Node{ID: -1}), core.ErrMalformedInput)
}

func TestGraph_AddEdgeFiltersUnknownEndpoints(t *testing.T) {
	g := triangleWithTail(t)

	added, err := g.AddEdge(core.Edge{Source: 0, Target: 42})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestGraph_AddEdgeRejectsDuplicatesAndLoops(t *testing.T) {
	g := triangleWithTail(t)

	tests := []struct {
		name string
		edge core.Edge
	}{
		{"same orientation", core.Edge{Source: 0, Target: 1}},
		{"reverse orientation", core.Edge{Source: 1, Target: 0}},
		{"self-loop", core.Edge{Source: 2, Target: 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			added, err := g.AddEdge(tc.edge)
			assert.False(t, added)
			assert.ErrorIs(t, err, core.ErrMalformedInput)
		})
	}
	assert.Equal(t, 4, g.EdgeCount())
}

func TestGraph_Queries(t *testing.T) {
	g := triangleWithTail(t)

	assert.Equal(t, []int{0, 1, 3}, g.Neighbors(2))
	assert.Nil(t, g.Neighbors(99))
	assert.Equal(t, 3, g.Degree(2))
	assert.True(t, g.HasEdge(2, 0))
	assert.Equal(t, []int{0, 1, 2, 3}, g.NodeIDs())

	inc := g.IncidentEdges(2)
	require.Len(t, inc, 3)
	assert.Equal(t, 1, inc[0].Other(2))
	assert.Equal(t, 0, inc[1].Other(2))
	assert.Equal(t, 3, inc[2].Other(2))
}

func TestGraph_ValidateOrdering(t *testing.T) {
	g := triangleWithTail(t)
	require.NoError(t, g.Validate())

	g.RCM = core.Ordering{3, 2, 1, 0}
	require.NoError(t, g.Validate())
	assert.True(t, g.RCM.IsPermutationOf(g))

	g.RCM = core.Ordering{3, 2, 1, 1}
	err := g.Validate()
	assert.ErrorIs(t, err, core.ErrMalformedInput)
	assert.False(t, g.RCM.IsPermutationOf(g))

	g.RCM = core.Ordering{0, 1, 2}
	assert.ErrorIs(t, g.Validate(), core.ErrMalformedInput)
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := triangleWithTail(t)
	n, _ := g.Node(0)
	n.Attributes["degree"] = 2
	rank := 1
	n.Gansner = &rank
	n.Hierarchy = &core.Point{0.5, 1}
	e, _ := g.Edge(0, 1)
	e.Attributes["Distance"] = 0.4
	g.RCM = core.Ordering{0, 1, 2, 3}

	c := g.Clone()
	cn, _ := c.Node(0)
	cn.Attributes["degree"] = 7
	*cn.Gansner = 9
	cn.Hierarchy[0] = 0
	ce, _ := c.Edge(1, 0)
	ce.Attributes["Distance"] = 1
	c.RCM[0] = 3

	assert.Equal(t, 2.0, n.Attributes["degree"])
	assert.Equal(t, 1, *n.Gansner)
	assert.Equal(t, 0.5, n.Hierarchy[0])
	assert.Equal(t, 0.4, e.Attributes["Distance"])
	assert.Equal(t, 0, g.RCM[0])
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.Equal(t, g.Neighbors(2), c.Neighbors(2))
}

func TestErrors_Unwrap(t *testing.T) {
	cause := errors.New("exit status 1")
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"degenerate", &core.DegenerateGraphError{Op: "Plain", Reason: "too dense"}, core.ErrDegenerateGraph},
		{"layout", &core.LayoutEngineError{Engine: "dot", Err: cause}, core.ErrLayoutEngine},
		{"layout cause", &core.LayoutEngineError{Engine: "dot", Err: cause}, cause},
		{"convergence", &core.ConvergenceError{Method: "eigenvector", Iterations: 200}, core.ErrConvergence},
		{"attribute", &core.AttributeKeyError{Key: "Distance", Source: 0, Target: 1}, core.ErrAttributeKey},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.target)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
	assert.Contains(t, (&core.AttributeKeyError{Key: "degree", Source: 4, Target: -1}).Error(), "node 4")
}
