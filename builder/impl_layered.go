// SPDX-License-Identifier: MIT
// Package: netquiz/builder
//
// impl_layered.go - implementation of Layered(n, d, L).
//
// Model:
//   - n nodes split into L contiguous layers; the first n mod L layers get one
//     extra node.
//   - Between each pair of adjacent layers (i, i+1), m = floor(n(n-1)d) edges
//     are drawn from the pair's bipartite product. m is the whole-graph target,
//     reused for every pair and not rescaled to the pair size.
//   - Attributes "Attribute j" with integer values in [1,20].
//   - Node.Layer records the layer index.
//
// Contract: n ≥ 1, 1 ≤ L ≤ n, 0 ≤ d ≤ 1, m ≤ |layer_i|·|layer_{i+1}| for every
// adjacent pair, cfg.rng != nil; otherwise DegenerateGraphError.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netquiz/core"
)

// Layered returns a Constructor for an L-layer graph with edges only between
// adjacent layers.
func Layered(n int, d float64, layers int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateNodes(MethodLayered, n); err != nil {
			return err
		}
		if layers < 1 || layers > n {
			return degenerate(MethodLayered, "layer count must be in [1,%d], got %d", n, layers)
		}
		if err := validateDensity(MethodLayered, d); err != nil {
			return err
		}
		m := edgeTarget(n, d)
		sizes := LayerSizes(n, layers)
		for i := 0; i+1 < len(sizes); i++ {
			scope := fmt.Sprintf("layers %d-%d", i, i+1)
			if err := validateEdgeBudget(MethodLayered, m, sizes[i]*sizes[i+1], scope); err != nil {
				return err
			}
		}
		if err := validateRand(MethodLayered, cfg.rng); err != nil {
			return err
		}

		base := nextID(g)
		names := cfg.nameScheme(base + n - 1)
		groups := make([][]int, len(sizes))
		next := base
		for li, size := range sizes {
			ids, err := addNodes(MethodLayered, g, cfg, next, size, names, AttributeKeyFormat, IntegerValueFn)
			if err != nil {
				return err
			}
			for _, id := range ids {
				node, _ := g.Node(id)
				layer := li
				node.Layer = &layer
			}
			groups[li] = ids
			next += size
		}

		for li := 0; li+1 < len(groups); li++ {
			upper, lower := groups[li], groups[li+1]
			for _, k := range sampleIndices(cfg.rng, len(upper)*len(lower), m) {
				u, v := upper[k/len(lower)], lower[k%len(lower)]
				if err := addEdge(MethodLayered, g, cfg, u, v, AttributeKeyFormat, IntegerValueFn); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// LayerSizes splits n into L contiguous near-equal sizes; the first n mod L
// layers receive one extra node. Returns nil for L < 1.
func LayerSizes(n, layers int) []int {
	if layers < 1 {
		return nil
	}
	full, extra := n/layers, n%layers
	sizes := make([]int, layers)
	for i := range sizes {
		sizes[i] = full
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}
