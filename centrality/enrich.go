package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netquiz/bfs"
	"github.com/katalvlaran/netquiz/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const methodEnrich = "Enrich"

var tracer = otel.Tracer("netquiz.centrality")

// Enrich returns a clone of g whose node attributes are exactly
// {degree, closeness, betweenness, eigenvector}. g is not modified.
//
// Errors:
//   - *core.AttributeKeyError if a node lacks "degree" (unless WithStructuralDegree).
//   - *core.ConvergenceError if the eigenvector iteration does not converge.
//   - ctx.Err() if ctx is done before or during the closeness traversals.
func Enrich(ctx context.Context, g *core.Graph, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, &core.MalformedInputError{Reason: "nil graph"}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	_, span := tracer.Start(ctx, "centrality.Enrich")
	defer span.End()
	span.SetAttributes(
		attribute.Int("node_count", g.NodeCount()),
		attribute.Int("edge_count", g.EdgeCount()),
		attribute.Bool("structural_degree", o.structuralDegree),
	)
	fail := func(err error) (*core.Graph, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s: %w", methodEnrich, err)
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	out := g.Clone()
	nodes := out.Nodes()
	degree := make(map[int]float64, len(nodes))
	for _, n := range nodes {
		if o.structuralDegree {
			degree[n.ID] = float64(out.Degree(n.ID))
			continue
		}
		d, ok := n.Attributes[AttrDegree]
		if !ok {
			return fail(&core.AttributeKeyError{Key: AttrDegree, Source: n.ID, Target: -1})
		}
		degree[n.ID] = d
	}
	if len(nodes) == 0 {
		return out, nil
	}
	if comps := bfs.Components(out); len(comps) > 1 {
		o.logger.Warn().Int("components", len(comps)).Msg("centrality on a disconnected graph")
		span.AddEvent("disconnected", trace.WithAttributes(attribute.Int("components", len(comps))))
	}

	eig, err := Eigenvector(out, o.tol, o.maxIter)
	if err != nil {
		return fail(err)
	}
	clo, err := Closeness(ctx, out)
	if err != nil {
		return fail(err)
	}
	btw := Betweenness(out)

	for _, n := range nodes {
		n.Attributes = map[string]float64{
			AttrDegree:      degree[n.ID],
			AttrCloseness:   clo[n.ID],
			AttrBetweenness: btw[n.ID],
			AttrEigenvector: eig[n.ID],
		}
	}
	o.logger.Debug().Int("nodes", len(nodes)).Msg("centrality enriched")
	return out, nil
}
