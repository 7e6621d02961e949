// SPDX-License-Identifier: MIT
// Package: netquiz/task
//
// synthesizer.go - bounded rejection sampling over the rooted task forms.

package task

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/netquiz/core"
	"github.com/rs/zerolog"
)

const methodGenerate = "Generate"

// Synthesizer samples tasks from a frozen graph. It holds configuration only
// and is safe for concurrent use as long as each goroutine passes its own rng.
type Synthesizer struct {
	attrs       []string
	maxAttempts int
	logger      zerolog.Logger
}

// NewSynthesizer returns a Synthesizer with DefaultAttributes and
// DefaultMaxAttempts unless overridden.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		attrs:       DefaultAttributes(),
		maxAttempts: DefaultMaxAttempts,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attributes returns the candidate attribute list.
func (s *Synthesizer) Attributes() []string {
	return append([]string(nil), s.attrs...)
}

// Generate samples one task of kind from g using rng.
//
// Each attempt draws a root uniformly from the nodes (and, for kinds one and
// two, the attribute choice) and rejects it when the rooted form reports a
// degenerate candidate.
//
// Errors:
//   - *core.DegenerateGraphError after WithMaxAttempts rejections, or when g
//     has no nodes, rng is nil or kind two has fewer than two attributes.
//   - *core.AttributeKeyError if an incident edge lacks a sampled attribute.
//   - ErrUnknownKind for an unsupported kind.
func (s *Synthesizer) Generate(g *core.Graph, kind Kind, rng *rand.Rand) (*Task, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if g == nil {
		return nil, &core.MalformedInputError{Reason: "nil graph"}
	}
	if rng == nil {
		return nil, &core.DegenerateGraphError{Op: methodGenerate, Reason: "rng is required"}
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, &core.DegenerateGraphError{Op: methodGenerate, Reason: "graph has no nodes"}
	}
	if kind == KindTwo && len(s.attrs) < 2 {
		return nil, &core.DegenerateGraphError{Op: methodGenerate,
			Reason: fmt.Sprintf("kind two needs two attributes, have %d", len(s.attrs))}
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		root := nodes[rng.Intn(len(nodes))].ID
		t, err := s.try(g, kind, root, rng)
		if err == nil {
			tasksGenerated.WithLabelValues(string(kind)).Inc()
			s.logger.Debug().
				Str("kind", string(kind)).
				Int("root", root).
				Int("attempts", attempt).
				Int("solution", len(t.Solution)).
				Msg("task synthesized")
			return t, nil
		}
		if !errors.Is(err, core.ErrDegenerateGraph) {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		taskRejections.WithLabelValues(string(kind)).Inc()
	}

	s.logger.Warn().Str("kind", string(kind)).Int("attempts", s.maxAttempts).Msg("task sampling exhausted")
	return nil, &core.DegenerateGraphError{Op: methodGenerate,
		Reason: fmt.Sprintf("no valid %s task after %d attempts", kind, s.maxAttempts)}
}

// try draws the attribute choice for kind and evaluates the rooted form.
func (s *Synthesizer) try(g *core.Graph, kind Kind, root int, rng *rand.Rand) (*Task, error) {
	switch kind {
	case KindOne:
		return SecondHighest(g, root, s.attrs[rng.Intn(len(s.attrs))])
	case KindTwo:
		i := rng.Intn(len(s.attrs))
		j := rng.Intn(len(s.attrs) - 1)
		if j >= i {
			j++
		}
		return Comparison(g, root, s.attrs[i], s.attrs[j])
	default:
		return Plain(g, root)
	}
}
