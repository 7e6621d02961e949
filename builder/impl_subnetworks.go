// SPDX-License-Identifier: MIT
// Package: netquiz/builder
//
// impl_subnetworks.go - implementation of Subnetworks(sizes, densities).
//
// Model:
//   - K disjoint groups of the given sizes, ids contiguous per group.
//   - Group i receives m_i = floor(n_i(n_i-1)d_i) edges drawn uniformly from
//     its internal pairs only; there are no inter-group edges.
//   - Attributes "attrj" with integer values in [1,20].
//
// Contract: len(sizes) == len(densities) ≥ 1, each n_i ≥ 1, each d_i in [0,1],
// each m_i ≤ C(n_i,2), cfg.rng != nil; otherwise DegenerateGraphError.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netquiz/core"
)

// Subnetworks returns a Constructor for disjoint, internally random groups.
func Subnetworks(sizes []int, densities []float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return degenerate(MethodSubnetworks, "at least one group is required")
		}
		if len(sizes) != len(densities) {
			return degenerate(MethodSubnetworks, "%d sizes but %d densities", len(sizes), len(densities))
		}
		total := 0
		targets := make([]int, len(sizes))
		for i, n := range sizes {
			if err := validateNodes(MethodSubnetworks, n); err != nil {
				return err
			}
			if err := validateDensity(MethodSubnetworks, densities[i]); err != nil {
				return err
			}
			targets[i] = edgeTarget(n, densities[i])
			if err := validateEdgeBudget(MethodSubnetworks, targets[i], pairCount(n), fmt.Sprintf("group %d", i)); err != nil {
				return err
			}
			total += n
		}
		if err := validateRand(MethodSubnetworks, cfg.rng); err != nil {
			return err
		}

		base := nextID(g)
		names := cfg.nameScheme(base + total - 1)
		groups := make([][]int, len(sizes))
		next := base
		for i, n := range sizes {
			ids, err := addNodes(MethodSubnetworks, g, cfg, next, n, names, SubnetworkKeyFormat, IntegerValueFn)
			if err != nil {
				return err
			}
			groups[i] = ids
			next += n
		}
		for i, ids := range groups {
			for _, k := range sampleIndices(cfg.rng, pairCount(len(ids)), targets[i]) {
				a, b := unrankPair(len(ids), k)
				if err := addEdge(MethodSubnetworks, g, cfg, ids[a], ids[b], SubnetworkKeyFormat, IntegerValueFn); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
