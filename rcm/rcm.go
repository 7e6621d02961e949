// SPDX-License-Identifier: MIT
// Package: netquiz/rcm
//
// rcm.go - reverse Cuthill-McKee ordering and bandwidth measurement.

package rcm

import (
	"github.com/katalvlaran/netquiz/bfs"
	"github.com/katalvlaran/netquiz/core"
)

// Order returns the reverse Cuthill-McKee ordering of g.
// A nil or empty graph yields an empty (non-nil) ordering.
func Order(g *core.Graph) core.Ordering {
	if g == nil {
		return core.Ordering{}
	}
	n := g.NodeCount()
	out := make(core.Ordering, 0, n)

	degree := make(map[int]int, n)
	for _, id := range g.NodeIDs() {
		degree[id] = g.Degree(id)
	}
	byDegree := func(a, b int) bool {
		if degree[a] != degree[b] {
			return degree[a] < degree[b]
		}
		return a < b
	}

	for _, comp := range bfs.Components(g) {
		start := comp[0]
		for _, id := range comp[1:] {
			if byDegree(id, start) {
				start = id
			}
		}
		// start comes from the node set, so BFS cannot fail here.
		res, _ := bfs.BFS(g, start, bfs.WithNeighborOrder(byDegree))
		out = append(out, res.Order...)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Bandwidth returns max |pos(u) - pos(v)| over all edges {u,v}, where pos is
// the index of a node in ord. Edges with an endpoint missing from ord are
// ignored; an edgeless graph has bandwidth 0.
func Bandwidth(g *core.Graph, ord core.Ordering) int {
	if g == nil {
		return 0
	}
	pos := make(map[int]int, len(ord))
	for i, id := range ord {
		pos[id] = i
	}
	bw := 0
	for _, e := range g.Edges() {
		pu, okU := pos[e.Source]
		pv, okV := pos[e.Target]
		if !okU || !okV {
			continue
		}
		d := pu - pv
		if d < 0 {
			d = -d
		}
		if d > bw {
			bw = d
		}
	}
	return bw
}
