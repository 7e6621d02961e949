// SPDX-License-Identifier: MIT
// Package: netquiz/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil            (stochastic generators then fail fast)
//   • nameFn     = nil            (letters, or decimal ids past 130 nodes)
//   • namePool   = FirstNames()   (SocialNetwork only)
//   • node/edge attributes = none
//   • logger     = zerolog.Nop()

package builder

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// attrPolicy describes how many generation attributes an element receives
// and whether each is always present or present with probability 0.5.
type attrPolicy struct {
	count int
	all   bool
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
	// Node name strategy; nil selects the default letter/decimal rule.
	nameFn IDFn
	// Candidate first names for SocialNetwork.
	namePool []string

	nodeAttrs attrPolicy
	edgeAttrs attrPolicy

	logger zerolog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		namePool: FirstNames(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// nameScheme resolves the name function for a graph whose largest id will be
// maxID. Without an explicit scheme, letter names are used while they last.
func (c builderConfig) nameScheme(maxID int) IDFn {
	if c.nameFn != nil {
		return c.nameFn
	}
	if maxID < MaxLetterNames {
		return LetterIDFn
	}
	return DefaultIDFn
}
