// SPDX-License-Identifier: MIT
// Package: netquiz/builder
//
// impl_social.go - implementation of SocialNetwork(n, d).
//
// Model:
//   - Plain G(n, m) topology with m = floor(n(n-1)d).
//   - Nodes are named by distinct first names of at most MaxSocialNameLength
//     letters, drawn at random from cfg.namePool; node attribute maps are empty.
//   - Every edge carries all FriendshipAttributes with values from
//     FractionalValues(); generation attribute options are ignored.
//   - Stores the reverse Cuthill-McKee ordering in g.RCM.
//
// Contract: as Plain, plus the pool must offer at least n eligible names.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/rcm"
)

// SocialNetwork returns a Constructor for a friendship graph as used by the
// study tasks.
func SocialNetwork(n int, d float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateNodes(MethodSocialNetwork, n); err != nil {
			return err
		}
		if err := validateRand(MethodSocialNetwork, cfg.rng); err != nil {
			return err
		}
		pool := eligibleNames(cfg.namePool)
		if len(pool) < n {
			return degenerate(MethodSocialNetwork, "name pool offers %d distinct names of ≤%d letters, need %d",
				len(pool), MaxSocialNameLength, n)
		}
		picked := pickNames(cfg.rng, pool, n)
		base := nextID(g)
		names := func(id int) string { return picked[id-base] }

		// Topology only; friendship attributes are drawn per edge afterwards.
		topo := cfg
		topo.nodeAttrs = attrPolicy{}
		topo.edgeAttrs = attrPolicy{}
		if err := samplePlain(MethodSocialNetwork, g, topo, n, d, names); err != nil {
			return err
		}
		for _, e := range g.Edges() {
			if e.Source < base && e.Target < base {
				continue
			}
			for _, key := range FriendshipAttributes {
				e.Attributes[key] = FractionalValueFn(cfg.rng)
			}
		}
		g.RCM = rcm.Order(g)
		return nil
	}
}

// eligibleNames returns the distinct pool entries of at most
// MaxSocialNameLength runes, preserving first-seen order.
func eligibleNames(pool []string) []string {
	seen := make(map[string]struct{}, len(pool))
	out := make([]string, 0, len(pool))
	for _, name := range pool {
		if name == "" || len([]rune(name)) > MaxSocialNameLength {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// pickNames draws n distinct names uniformly without replacement.
func pickNames(rng *rand.Rand, pool []string, n int) []string {
	out := make([]string, n)
	for i, k := range sampleIndices(rng, len(pool), n) {
		out[i] = pool[k]
	}
	return out
}
