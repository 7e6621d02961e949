// SPDX-License-Identifier: MIT
// Package: netquiz/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNodeAttributes gives every node k generation attributes.
// all=false includes each attribute independently with probability 0.5.
// Panics if k < 0.
func WithNodeAttributes(k int, all bool) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithNodeAttributes(k=%d)", k))
	}
	return func(c *builderConfig) {
		c.nodeAttrs = attrPolicy{count: k, all: all}
	}
}

// WithEdgeAttributes gives every edge k generation attributes, same policy
// as WithNodeAttributes. Panics if k < 0.
func WithEdgeAttributes(k int, all bool) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithEdgeAttributes(k=%d)", k))
	}
	return func(c *builderConfig) {
		c.edgeAttrs = attrPolicy{count: k, all: all}
	}
}

// WithNameScheme sets the node name generator: id -> name.
// Panics on nil.
func WithNameScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithNamePool replaces the first-name pool used by SocialNetwork.
// Panics on an empty pool.
func WithNamePool(names []string) BuilderOption {
	if len(names) == 0 {
		panic("builder: WithNamePool(empty)")
	}
	pool := append([]string(nil), names...)
	return func(c *builderConfig) {
		c.namePool = pool
	}
}

// WithLogger routes construction diagnostics to l.
func WithLogger(l zerolog.Logger) BuilderOption {
	return func(c *builderConfig) {
		c.logger = l
	}
}
