// SPDX-License-Identifier: MIT
// Package: netquiz/layout
//
// extract.go - the three oracle invocations, validation and normalisation.

package layout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/netquiz/core"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const methodExtract = "Extract"

var (
	errMissingPosition = errors.New("layout: node position missing")
	errUnknownNode     = errors.New("layout: position for unknown node")
	errNonFinite       = errors.New("layout: non-finite coordinate")
	errNilProvider     = errors.New("layout: provider is nil")
)

// Extract returns a clone of g whose nodes carry Gansner, Hierarchy and
// Radial, computed from three invocations of p.
//
// Errors: *core.LayoutEngineError for provider failure, timeout, a missing
// position, a position for an id not in g or a non-finite coordinate. g is never modified.
func Extract(ctx context.Context, g *core.Graph, p Provider, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, &core.MalformedInputError{Reason: "nil graph"}
	}
	if p == nil {
		return nil, &core.LayoutEngineError{Engine: "provider", Err: errNilProvider}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := g.Clone()
	if out.NodeCount() == 0 {
		return out, nil
	}

	constrained, err := invoke(ctx, p, out, Request{Engine: Hierarchical, SameRank: true}, o)
	if err != nil {
		return nil, fmt.Errorf("%s: gansner: %w", methodExtract, err)
	}
	hier, err := invoke(ctx, p, out, Request{Engine: Hierarchical}, o)
	if err != nil {
		return nil, fmt.Errorf("%s: hierarchy: %w", methodExtract, err)
	}
	radial, err := invoke(ctx, p, out, Request{Engine: Radial}, o)
	if err != nil {
		return nil, fmt.Errorf("%s: radial: %w", methodExtract, err)
	}

	ranks := Ranks(constrained)
	hierN := Normalize(hier, degenerateHook(o.logger, Hierarchical))
	radialN := Normalize(radial, degenerateHook(o.logger, Radial))

	for _, n := range out.Nodes() {
		rank := ranks[n.ID]
		h := hierN[n.ID]
		r := radialN[n.ID]
		n.Gansner = &rank
		n.Hierarchy = &h
		n.Radial = &r
	}
	return out, nil
}

// invoke runs one provider call under the configured deadline and validates
// the returned positions against the node set of g.
func invoke(ctx context.Context, p Provider, g *core.Graph, req Request, o options) (Positions, error) {
	engine := req.Engine.String()
	ctx, span := tracer.Start(ctx, "layout.Provider.Layout")
	span.SetAttributes(
		attribute.String("engine", engine),
		attribute.Bool("same_rank", req.SameRank),
		attribute.Int("node_count", g.NodeCount()),
		attribute.Int("edge_count", g.EdgeCount()),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type result struct {
		pos Positions
		err error
	}
	ch := make(chan result, 1)
	go func() {
		pos, err := p.Layout(ctx, g, req)
		ch <- result{pos: pos, err: err}
	}()

	var r result
	select {
	case <-ctx.Done():
		r.err = ctx.Err()
	case r = <-ch:
	}
	if r.err == nil {
		r.err = validate(g, r.pos)
	}
	if r.err != nil {
		span.RecordError(r.err)
		span.SetStatus(codes.Error, r.err.Error())
		layoutCalls.WithLabelValues(engine, "error").Inc()
		o.logger.Warn().Err(r.err).Str("engine", engine).Bool("same_rank", req.SameRank).Msg("layout invocation failed")
		return nil, &core.LayoutEngineError{Engine: engine, Err: r.err}
	}
	layoutCalls.WithLabelValues(engine, "ok").Inc()
	return r.pos, nil
}

// validate requires a finite position for every node of g and nothing else.
func validate(g *core.Graph, pos Positions) error {
	for id := range pos {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: node %d", errUnknownNode, id)
		}
	}
	for _, id := range g.NodeIDs() {
		pt, ok := pos[id]
		if !ok {
			return fmt.Errorf("%w: node %d", errMissingPosition, id)
		}
		for _, v := range pt {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: node %d at (%g,%g)", errNonFinite, id, pt[0], pt[1])
			}
		}
	}
	return nil
}

// Ranks orders ids by ascending x coordinate, ties by ascending id, and
// returns the 0-based rank of each id.
func Ranks(pos Positions) map[int]int {
	ids := make([]int, 0, len(pos))
	for id := range pos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		xi, xj := pos[ids[i]][0], pos[ids[j]][0]
		if xi != xj {
			return xi < xj
		}
		return ids[i] < ids[j]
	})
	ranks := make(map[int]int, len(ids))
	for r, id := range ids {
		ranks[id] = r
	}
	return ranks
}

// Normalize maps each axis of pos independently onto [0,1] via
// (v-min)/(max-min). An axis with max == min maps every node to 0.5 and
// reports the axis index to onDegenerate (which may be nil).
func Normalize(pos Positions, onDegenerate func(axis int)) Positions {
	out := make(Positions, len(pos))
	if len(pos) == 0 {
		return out
	}
	var lo, hi [2]float64
	first := true
	for _, pt := range pos {
		for a := 0; a < 2; a++ {
			if first || pt[a] < lo[a] {
				lo[a] = pt[a]
			}
			if first || pt[a] > hi[a] {
				hi[a] = pt[a]
			}
		}
		first = false
	}
	degenerate := [2]bool{hi[0] == lo[0], hi[1] == lo[1]}
	for a := 0; a < 2; a++ {
		if degenerate[a] && onDegenerate != nil {
			onDegenerate(a)
		}
	}
	for id, pt := range pos {
		var q core.Point
		for a := 0; a < 2; a++ {
			if degenerate[a] {
				q[a] = 0.5
				continue
			}
			q[a] = (pt[a] - lo[a]) / (hi[a] - lo[a])
		}
		out[id] = q
	}
	return out
}

func degenerateHook(l zerolog.Logger, e Engine) func(axis int) {
	return func(axis int) {
		name := [2]string{"x", "y"}[axis]
		degenerateAxes.WithLabelValues(e.String(), name).Inc()
		l.Warn().Str("engine", e.String()).Str("axis", name).Msg("zero-extent layout axis normalised to 0.5")
	}
}
