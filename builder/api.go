// SPDX-License-Identifier: MIT
// Package: netquiz/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Generators are declared as Constructor factories in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; unsatisfiable requests return *core.DegenerateGraphError.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/rcm"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return errors (no panics).
//   - Assign fresh ids via nextID so they compose with earlier constructors.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// If any constructor attached an RCM ordering it is recomputed once all
// constructors ran, so the stored ordering always covers the final node set.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w",
				MethodBuildGraph, i, &core.DegenerateGraphError{Op: MethodBuildGraph, Reason: "nil constructor"})
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}
	if g.RCM != nil && len(cons) > 1 {
		g.RCM = rcm.Order(g)
	}

	cfg.logger.Debug().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Bool("rcm", g.RCM != nil).
		Msg("graph built")

	return g, nil
}

// nextID returns the first id not yet used by g (0 for an empty graph).
func nextID(g *core.Graph) int {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return 0
	}
	return ids[len(ids)-1] + 1
}

// addNodes inserts n nodes with ids base..base+n-1, named by names and given
// attributes drawn under cfg.nodeAttrs. It returns the new ids.
func addNodes(method string, g *core.Graph, cfg builderConfig, base, n int, names IDFn, keyFormat string, value ValueFn) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		id := base + i
		node := core.Node{
			ID:         id,
			Name:       names(id),
			Attributes: drawAttributes(cfg.rng, cfg.nodeAttrs, keyFormat, value),
		}
		if err := g.AddNode(node); err != nil {
			return nil, builderErrorf(method, fmt.Sprintf("AddNode(%d)", id), err)
		}
		ids[i] = id
	}
	return ids, nil
}

// addEdge inserts {u,v} with attributes drawn under cfg.edgeAttrs.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int, keyFormat string, value ValueFn) error {
	e := core.Edge{
		Source:     u,
		Target:     v,
		Attributes: drawAttributes(cfg.rng, cfg.edgeAttrs, keyFormat, value),
	}
	if _, err := g.AddEdge(e); err != nil {
		return builderErrorf(method, fmt.Sprintf("AddEdge(%d,%d)", u, v), err)
	}
	return nil
}
