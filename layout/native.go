// SPDX-License-Identifier: MIT
// Package: netquiz/layout
//
// native.go - pure-Go Provider.
//
// Hierarchical, unconstrained:
//   - Layer = BFS depth from the smallest id of each component.
//   - Order within each layer refined by barycenter sweeps (down, then up).
//   - x = centred slot index, y = -layer.
//
// Hierarchical, same rank:
//   - One rank holding every node, seeded with the RCM ordering and refined by
//     barycenter sweeps over all neighbors. y = 0.
//
// Radial:
//   - Nodes on the unit circle in RCM order, starting at angle 0.
//
// All three are deterministic.

package layout

import (
	"context"
	"math"
	"sort"

	"github.com/katalvlaran/netquiz/bfs"
	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/rcm"
)

// DefaultSweeps is the number of barycenter refinement passes.
const DefaultSweeps = 4

// NativeProvider is an in-process layout oracle.
type NativeProvider struct {
	Sweeps int
}

// NewNativeProvider returns a provider with DefaultSweeps.
func NewNativeProvider() *NativeProvider {
	return &NativeProvider{Sweeps: DefaultSweeps}
}

// Layout implements Provider.
func (p *NativeProvider) Layout(ctx context.Context, g *core.Graph, req Request) (Positions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch {
	case req.Engine == Radial:
		return circle(g), nil
	case req.SameRank:
		return p.singleRank(ctx, g)
	default:
		return p.layered(ctx, g)
	}
}

func circle(g *core.Graph) Positions {
	ord := rcm.Order(g)
	pos := make(Positions, len(ord))
	n := float64(len(ord))
	for i, id := range ord {
		theta := 2 * math.Pi * float64(i) / n
		pos[id] = core.Point{math.Cos(theta), math.Sin(theta)}
	}
	return pos
}

func (p *NativeProvider) singleRank(ctx context.Context, g *core.Graph) (Positions, error) {
	row := []int(rcm.Order(g))
	for s := 0; s < p.Sweeps; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slot := slots(row)
		sortByBarycenter(row, slot, func(id int) []int { return g.Neighbors(id) })
	}
	pos := make(Positions, len(row))
	for i, id := range row {
		pos[id] = core.Point{float64(i), 0}
	}
	return pos, nil
}

func (p *NativeProvider) layered(ctx context.Context, g *core.Graph) (Positions, error) {
	depth := make(map[int]int, g.NodeCount())
	var layers [][]int
	for _, comp := range bfs.Components(g) {
		res, err := bfs.BFS(g, comp[0], bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			d := res.Depth[id]
			depth[id] = d
			for len(layers) <= d {
				layers = append(layers, nil)
			}
			layers[d] = append(layers[d], id)
		}
	}

	adjacent := func(delta int) func(id int) []int {
		return func(id int) []int {
			var out []int
			for _, nb := range g.Neighbors(id) {
				if depth[nb] == depth[id]+delta {
					out = append(out, nb)
				}
			}
			return out
		}
	}
	for s := 0; s < p.Sweeps; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for l := 1; l < len(layers); l++ {
			sortByBarycenter(layers[l], slots(layers[l-1]), adjacent(-1))
		}
		for l := len(layers) - 2; l >= 0; l-- {
			sortByBarycenter(layers[l], slots(layers[l+1]), adjacent(+1))
		}
	}

	pos := make(Positions, g.NodeCount())
	for l, layer := range layers {
		offset := float64(len(layer)-1) / 2
		for i, id := range layer {
			pos[id] = core.Point{float64(i) - offset, -float64(l)}
		}
	}
	return pos, nil
}

// slots maps each id of row to its index.
func slots(row []int) map[int]float64 {
	m := make(map[int]float64, len(row))
	for i, id := range row {
		m[id] = float64(i)
	}
	return m
}

// sortByBarycenter stably reorders row by the mean slot of each node's
// reference neighbors; nodes without any keep their current slot as key.
func sortByBarycenter(row []int, ref map[int]float64, neighbors func(int) []int) {
	key := make(map[int]float64, len(row))
	for i, id := range row {
		sum, cnt := 0.0, 0
		for _, nb := range neighbors(id) {
			if s, ok := ref[nb]; ok {
				sum += s
				cnt++
			}
		}
		if cnt == 0 {
			key[id] = float64(i)
			continue
		}
		key[id] = sum / float64(cnt)
	}
	sort.SliceStable(row, func(i, j int) bool { return key[row[i]] < key[row[j]] })
}
