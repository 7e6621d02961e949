// SPDX-License-Identifier: MIT
// Package: netquiz/layout
//
// types.go - provider contract and request/response types.

package layout

import (
	"context"

	"github.com/katalvlaran/netquiz/core"
)

// Engine selects the layout family of one oracle invocation.
type Engine int

const (
	// Hierarchical is a layered (dot-style) layout.
	Hierarchical Engine = iota
	// Radial is a circular (circo-style) layout.
	Radial
)

// String returns the Graphviz program name of the engine.
func (e Engine) String() string {
	switch e {
	case Hierarchical:
		return "dot"
	case Radial:
		return "circo"
	default:
		return "unknown"
	}
}

// Request describes one oracle invocation.
type Request struct {
	Engine Engine
	// SameRank declares all nodes as one alignment group.
	SameRank bool
}

// Positions maps node id to its raw layout coordinate.
type Positions map[int]core.Point

// Provider is the 2D layout oracle. Implementations must honour ctx and must
// not mutate g.
type Provider interface {
	Layout(ctx context.Context, g *core.Graph, req Request) (Positions, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, g *core.Graph, req Request) (Positions, error)

// Layout calls f.
func (f ProviderFunc) Layout(ctx context.Context, g *core.Graph, req Request) (Positions, error) {
	return f(ctx, g, req)
}
