// SPDX-License-Identifier: MIT
// Package: netquiz/builder
//
// impl_plain.go - implementation of Plain(n, d).
//
// Model: G(n, m) with m = floor(n(n-1)d). Every one of the C(n,2) pairs is
// equally likely; exactly m distinct pairs are drawn without replacement.
//
// Contract:
//   - n ≥ 1, 0 ≤ d ≤ 1, m ≤ C(n,2), cfg.rng != nil; otherwise DegenerateGraphError.
//   - Names: cfg.nameFn, else letters A..Z'''' while they last, else decimal ids.
//   - Attributes "Attribute j" drawn from FractionalValues().
//   - Stores the reverse Cuthill-McKee ordering in g.RCM.
//
// Complexity: O(n²) time and memory for the pair index.

package builder

import (
	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/rcm"
)

// Plain returns a Constructor that samples a uniformly random simple graph
// with n nodes and exactly floor(n(n-1)d) edges.
func Plain(n int, d float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := samplePlain(MethodPlain, g, cfg, n, d, nil); err != nil {
			return err
		}
		g.RCM = rcm.Order(g)
		return nil
	}
}

// samplePlain validates (n, d), adds n nodes and m uniformly drawn edges.
// names overrides the configured scheme when non-nil.
func samplePlain(method string, g *core.Graph, cfg builderConfig, n int, d float64, names IDFn) error {
	if err := validateNodes(method, n); err != nil {
		return err
	}
	if err := validateDensity(method, d); err != nil {
		return err
	}
	m := edgeTarget(n, d)
	if err := validateEdgeBudget(method, m, pairCount(n), "the graph"); err != nil {
		return err
	}
	if err := validateRand(method, cfg.rng); err != nil {
		return err
	}

	base := nextID(g)
	if names == nil {
		names = cfg.nameScheme(base + n - 1)
	}
	ids, err := addNodes(method, g, cfg, base, n, names, AttributeKeyFormat, FractionalValueFn)
	if err != nil {
		return err
	}
	for _, k := range sampleIndices(cfg.rng, pairCount(n), m) {
		i, j := unrankPair(n, k)
		if err = addEdge(method, g, cfg, ids[i], ids[j], AttributeKeyFormat, FractionalValueFn); err != nil {
			return err
		}
	}
	return nil
}
